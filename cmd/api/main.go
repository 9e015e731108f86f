package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/db"
	opsauth "storefront/pkg/auth"
	pkgdb "storefront/pkg/db"
	"storefront/pkg/logger"
)

type config struct {
	Port       string
	MongoURI   string
	MongoName  string
	AppSecret  string
	AdminEmail string
	AdminPass  string
	APIToken   string
	CacheTTL   time.Duration
}

func loadConfig() (config, error) {
	cfg := config{
		Port:       envDefault("API_PORT", envDefault("PORT", "8080")),
		MongoURI:   envDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoName:  envDefault("MONGO_DB", "storefront"),
		AppSecret:  os.Getenv("APP_SECRET"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		AdminPass:  os.Getenv("ADMIN_PASSWORD"),
		APIToken:   os.Getenv("API_TOKEN"),
		CacheTTL:   time.Duration(envDefaultInt("CATALOG_CACHE_TTL_MINUTES", 5)) * time.Minute,
	}
	if cfg.AppSecret == "" {
		return cfg, fmt.Errorf("APP_SECRET is required")
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load()
	log := logger.New()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	// One connection attempt window at startup decides the serving mode for
	// the life of the process.
	database := connectDatabase(log, cfg)
	if database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := db.EnsureIndexes(ctx, database); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("ensure indexes")
		}
		if cfg.AdminEmail != "" && cfg.AdminPass != "" {
			if err := db.EnsureAdmin(ctx, database, cfg.AdminEmail, cfg.AdminPass); err != nil {
				cancel()
				log.Fatal().Err(err).Msg("ensure admin")
			}
		}
		cancel()
	}

	cache := catalog.NewCache(catalog.StaticProducts, cfg.CacheTTL, nil)
	var productCol *mongo.Collection
	if database != nil {
		productCol = database.Collection(db.ColProducts)
	}
	catalogSvc := catalog.NewService(productCol, cache)
	authSvc := auth.NewService(cfg.AppSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	r.Get("/health", handleHealth(catalogSvc))

	r.Post("/auth/register", handleRegister(database, authSvc))
	r.Post("/auth/login", handleLogin(database, authSvc))
	r.Post("/auth/refresh", handleRefresh(authSvc))
	r.Route("/auth/me", func(r chi.Router) {
		r.Use(authSvc.RequireAuth)
		r.Get("/", handleProfile(database))
		r.Put("/", handleUpdateProfile(database))
	})
	r.With(authSvc.RequireAuth).Post("/auth/change-password", handleChangePassword(database))

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", handleListProducts(catalogSvc))
		r.Get("/featured", handleFeatured(catalogSvc))
		r.Get("/categories", handleCategories())
		r.Get("/{id}", handleGetProduct(catalogSvc))
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Use(authSvc.RequireAuth)
		r.Get("/", handleGetCart(database))
		r.Post("/items", handleAddCartItem(database, catalogSvc))
		r.Put("/items/{productID}", handleSetCartItem(database))
		r.Delete("/items/{productID}", handleRemoveCartItem(database))
		r.Delete("/", handleClearCart(database))
	})

	r.Route("/api/wishlist", func(r chi.Router) {
		r.Use(authSvc.RequireAuth)
		r.Get("/", handleGetWishlist(database, catalogSvc))
		r.Post("/", handleAddWishlistItem(database, catalogSvc))
		r.Delete("/{productID}", handleRemoveWishlistItem(database))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authSvc.RequireAuth)
		r.Post("/", handlePlaceOrder(database))
		r.Get("/", handleListOrders(database))
		r.Get("/{id}", handleGetOrder(database))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Use(authSvc.RequireRole("admin"))
			r.Get("/", handleListAllOrders(database))
			r.Put("/{id}/status", handleOrderStatus(database))
		})
		r.With(opsauth.TokenMiddleware(cfg.APIToken)).Post("/seed", handleSeed(database))
	})

	mode := "live"
	if catalogSvc.DemoMode() {
		mode = "demo"
	}
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("mode", mode).Msg("api listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func connectDatabase(log zerolog.Logger, cfg config) *mongo.Database {
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := pkgdb.Connect(ctx, cfg.MongoURI)
		cancel()
		if err == nil {
			return client.Database(cfg.MongoName)
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("mongo connect failed")
		time.Sleep(2 * time.Second)
	}
	log.Warn().Msg("database unreachable, serving catalog in demo mode")
	return nil
}

func envDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}

func envDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return out
		}
	}
	return def
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < http.StatusBadRequest,
		"data":    payload,
	})
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

// requireLive guards handlers that need the document store. Returns false
// after writing a 503 when the process runs in demo mode.
func requireLive(w http.ResponseWriter, database *mongo.Database) bool {
	if database == nil {
		errorJSON(w, http.StatusServiceUnavailable, "unavailable in demo mode")
		return false
	}
	return true
}

func handleHealth(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := "live"
		if svc.DemoMode() {
			mode = "demo"
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "mode": mode})
	}
}

func handleRegister(database *mongo.Database, authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		var req struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if req.Email == "" || len(req.Password) < 8 {
			errorJSON(w, http.StatusBadRequest, "email and password (min 8 chars) required")
			return
		}
		user, err := db.CreateUser(r.Context(), database, req.Email, req.Name, req.Password, "user")
		if errors.Is(err, db.ErrEmailTaken) {
			errorJSON(w, http.StatusConflict, "email already registered")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		access, refresh, err := authSvc.GenerateTokens(user.ID, user.Email, user.Role)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, "token error")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"user":          user,
			"access_token":  access,
			"refresh_token": refresh,
		})
	}
}

func handleLogin(database *mongo.Database, authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		user, err := db.Authenticate(r.Context(), database, req.Email, req.Password)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		access, refresh, err := authSvc.GenerateTokens(user.ID, user.Email, user.Role)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, "token error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"user":          user,
			"access_token":  access,
			"refresh_token": refresh,
		})
	}
}

func handleRefresh(authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		access, refresh, err := authSvc.Refresh(req.RefreshToken)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "invalid token")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token":  access,
			"refresh_token": refresh,
		})
	}
}

func handleProfile(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		user, err := db.GetUserByID(r.Context(), database, claims.UserID)
		if errors.Is(err, db.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "user not found")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func handleUpdateProfile(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			errorJSON(w, http.StatusBadRequest, "name required")
			return
		}
		if err := db.UpdateProfile(r.Context(), database, claims.UserID, req.Name); err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func handleChangePassword(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		var req struct {
			Old string `json:"old_password"`
			New string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if len(req.New) < 8 {
			errorJSON(w, http.StatusBadRequest, "new password too short")
			return
		}
		err := db.ChangePassword(r.Context(), database, claims.UserID, req.Old, req.New)
		if errors.Is(err, db.ErrInvalidCredentials) {
			errorJSON(w, http.StatusBadRequest, "invalid password")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
	}
}

func handleListProducts(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := catalog.ParamsFromQuery(r.URL.Query())
		result, err := svc.List(r.Context(), params)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleFeatured(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
			limit = v
		}
		items, err := svc.Featured(r.Context(), limit)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"products": items})
	}
}

func handleCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"categories": catalog.Categories()})
	}
}

func handleGetProduct(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		product, err := svc.Get(r.Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "not found")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func handleGetCart(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		cart, err := db.GetCart(r.Context(), database, claims.UserID)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeCart(w, cart)
	}
}

func handleAddCartItem(database *mongo.Database, svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		var req struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if req.ProductID == "" {
			errorJSON(w, http.StatusBadRequest, "productId required")
			return
		}
		product, err := svc.Get(r.Context(), req.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "product not found")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		cart, err := db.AddCartItem(r.Context(), database, claims.UserID, db.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  req.Quantity,
		})
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeCart(w, cart)
	}
}

func handleSetCartItem(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		productID := chi.URLParam(r, "productID")
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		cart, err := db.SetCartItemQuantity(r.Context(), database, claims.UserID, productID, req.Quantity)
		if errors.Is(err, db.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "not in cart")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeCart(w, cart)
	}
}

func handleRemoveCartItem(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		cart, err := db.RemoveCartItem(r.Context(), database, claims.UserID, chi.URLParam(r, "productID"))
		if errors.Is(err, db.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "not in cart")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeCart(w, cart)
	}
}

func handleClearCart(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		if err := db.ClearCart(r.Context(), database, claims.UserID); err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

func writeCart(w http.ResponseWriter, cart db.Cart) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":     cart,
		"subtotal": cart.Subtotal(),
	})
}

func handleGetWishlist(database *mongo.Database, svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		wl, err := db.GetWishlist(r.Context(), database, claims.UserID)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		products := make([]catalog.Product, 0, len(wl.ProductIDs))
		for _, id := range wl.ProductIDs {
			p, err := svc.Get(r.Context(), id)
			if err != nil {
				continue
			}
			products = append(products, p)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"wishlist": wl,
			"products": products,
		})
	}
}

func handleAddWishlistItem(database *mongo.Database, svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		var req struct {
			ProductID string `json:"productId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if _, err := svc.Get(r.Context(), req.ProductID); errors.Is(err, catalog.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "product not found")
			return
		} else if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		wl, err := db.AddWishlistItem(r.Context(), database, claims.UserID, req.ProductID)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, wl)
	}
}

func handleRemoveWishlistItem(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		wl, err := db.RemoveWishlistItem(r.Context(), database, claims.UserID, chi.URLParam(r, "productID"))
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, wl)
	}
}

func handlePlaceOrder(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		var req struct {
			Address db.Address `json:"address"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		if req.Address.Line1 == "" || req.Address.City == "" || req.Address.Country == "" {
			errorJSON(w, http.StatusBadRequest, "shipping address required")
			return
		}
		order, err := db.PlaceOrder(r.Context(), database, claims.UserID, req.Address)
		if errors.Is(err, db.ErrEmptyCart) {
			errorJSON(w, http.StatusBadRequest, "cart is empty")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, order)
	}
}

func handleListOrders(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		orders, err := db.ListOrders(r.Context(), database, claims.UserID)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
	}
}

func handleGetOrder(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		claims := auth.ClaimsFromContext(r.Context())
		order, err := db.GetOrder(r.Context(), database, claims.UserID, chi.URLParam(r, "id"))
		if errors.Is(err, db.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "not found")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, order)
	}
}

func handleListAllOrders(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		orders, err := db.ListAllOrders(r.Context(), database)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
	}
}

func handleOrderStatus(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid body")
			return
		}
		err := db.UpdateOrderStatus(r.Context(), database, chi.URLParam(r, "id"), req.Status)
		if errors.Is(err, db.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "not found")
			return
		}
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
	}
}

func handleSeed(database *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireLive(w, database) {
			return
		}
		count, err := db.SeedProducts(r.Context(), database, catalog.StaticProducts())
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "seed completed",
			"count":  count,
		})
	}
}
