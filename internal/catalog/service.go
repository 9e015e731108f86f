package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("product not found")

// Service answers catalog reads from either the live document store or, when
// the store was unreachable at startup, the bundled demo catalog behind the
// TTL cache. The serving mode is fixed at construction; each request decides
// its path exactly once.
type Service struct {
	col   *mongo.Collection
	cache *Cache
}

// NewService builds a catalog service. A nil collection selects demo mode.
func NewService(col *mongo.Collection, cache *Cache) *Service {
	return &Service{col: col, cache: cache}
}

// DemoMode reports whether reads are served from the bundled catalog.
func (s *Service) DemoMode() bool {
	return s.col == nil
}

// List runs the filter/sort/paginate pipeline for one request.
func (s *Service) List(ctx context.Context, p Params) (Result, error) {
	if s.DemoMode() {
		return s.demoList(p), nil
	}
	return s.liveList(ctx, p)
}

// Featured returns up to limit featured products.
func (s *Service) Featured(ctx context.Context, limit int) ([]Product, error) {
	if limit < 1 {
		limit = DefaultLimit
	}
	if s.DemoMode() {
		items := activeOnly(s.cache.Featured())
		if len(items) > limit {
			items = items[:limit]
		}
		return items, nil
	}
	cur, err := s.col.Find(ctx,
		bson.M{"featured": true, "status": StatusActive},
		options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cur)
}

// Get fetches a single product by ID.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	if s.DemoMode() {
		for _, p := range s.cache.All() {
			if p.ID == id && p.Status == StatusActive {
				return p, nil
			}
		}
		return Product{}, ErrNotFound
	}
	var p Product
	err := s.col.FindOne(ctx, bson.M{"_id": id, "status": StatusActive}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) demoList(p Params) Result {
	// Serve from the narrowest precomputed view; the pipeline re-applies the
	// category predicate harmlessly.
	var view []Product
	if ValidCategory(p.Category) {
		view = s.cache.Category(p.Category)
	} else {
		view = s.cache.All()
	}
	return Run(activeOnly(view), p)
}

func (s *Service) liveList(ctx context.Context, p Params) (Result, error) {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filter := buildFilter(p)
	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return Result{}, err
	}
	skip := int64(page-1) * int64(limit)
	cur, err := s.col.Find(ctx, filter, options.Find().
		SetSort(buildSort(p.Sort)).
		SetSkip(skip).
		SetLimit(int64(limit)))
	if err != nil {
		return Result{}, err
	}
	items, err := decodeProducts(ctx, cur)
	if err != nil {
		return Result{}, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return Result{
		Products: items,
		Pagination: Pagination{
			Page:    page,
			Limit:   limit,
			Total:   int(total),
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}, nil
}

func buildFilter(p Params) bson.M {
	filter := bson.M{"status": StatusActive}
	if ValidCategory(p.Category) {
		filter["category"] = p.Category
	}
	if p.Search != "" {
		re := primitive.Regex{Pattern: regexEscape(p.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"short_description": re},
			bson.M{"subcategory": re},
			bson.M{"brand": re},
			bson.M{"tags": re},
		}
	}
	if p.Featured {
		filter["featured"] = true
	}
	price := bson.M{}
	if p.MinPrice != nil {
		price["$gte"] = *p.MinPrice
	}
	if p.MaxPrice != nil {
		price["$lte"] = *p.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if p.Brand != "" {
		filter["brand"] = primitive.Regex{Pattern: regexEscape(p.Brand), Options: "i"}
	}
	return filter
}

func buildSort(key string) bson.D {
	switch key {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case SortNameAsc:
		return bson.D{{Key: "name", Value: 1}}
	case SortNameDesc:
		return bson.D{{Key: "name", Value: -1}}
	case SortRating:
		return bson.D{{Key: "rating.average", Value: -1}}
	default:
		return bson.D{{Key: "featured", Value: -1}, {Key: "name", Value: 1}}
	}
}

func regexEscape(raw string) string {
	escaped := make([]rune, 0, len(raw))
	for _, r := range raw {
		switch r {
		case '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return string(escaped)
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]Product, error) {
	items := make([]Product, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func activeOnly(items []Product) []Product {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if p.Status == StatusActive {
			out = append(out, p)
		}
	}
	return out
}
