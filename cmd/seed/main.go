package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"storefront/internal/catalog"
	"storefront/internal/db"
	pkgdb "storefront/pkg/db"
	"storefront/pkg/logger"
)

// Loads the bundled demo catalog into the live database so a fresh
// deployment has something to sell.
func main() {
	_ = godotenv.Load()
	log := logger.New()

	uri := envDefault("MONGO_URI", "mongodb://localhost:27017")
	name := envDefault("MONGO_DB", "storefront")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := pkgdb.Connect(ctx, uri)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	database := client.Database(name)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}
	count, err := db.SeedProducts(ctx, database, catalog.StaticProducts())
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("count", count).Str("db", name).Msg("catalog seeded")
}

func envDefault(key, val string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return val
}
