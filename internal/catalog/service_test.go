package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

func demoService() *Service {
	cache := NewCache(StaticProducts, time.Minute, nil)
	return NewService(nil, cache)
}

func TestDemoModeListFiltersInactive(t *testing.T) {
	svc := demoService()
	res, err := svc.List(context.Background(), Params{Limit: 100})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, p := range res.Products {
		if p.Status != StatusActive {
			t.Errorf("inactive product %s (%s) in listing", p.ID, p.Status)
		}
	}
	if res.Pagination.Total == 0 {
		t.Fatal("demo catalog listing is empty")
	}
}

func TestDemoModeCategoryUsesView(t *testing.T) {
	svc := demoService()
	res, err := svc.List(context.Background(), Params{Category: CategoryWomen, Limit: 100})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, p := range res.Products {
		if p.Category != CategoryWomen {
			t.Errorf("product %s has category %q", p.ID, p.Category)
		}
	}
}

func TestDemoModeFeaturedLimit(t *testing.T) {
	svc := demoService()
	items, err := svc.Featured(context.Background(), 2)
	if err != nil {
		t.Fatalf("Featured() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("featured = %d items, want 2", len(items))
	}
	for _, p := range items {
		if !p.Featured || p.Status != StatusActive {
			t.Errorf("product %s is not an active featured product", p.ID)
		}
	}
}

func TestDemoModeGet(t *testing.T) {
	svc := demoService()
	p, err := svc.Get(context.Background(), "prod-001")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.ID != "prod-001" {
		t.Errorf("got product %s", p.ID)
	}

	if _, err := svc.Get(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	// Draft products are invisible even by direct ID.
	if _, err := svc.Get(context.Background(), "prod-019"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(draft) error = %v, want ErrNotFound", err)
	}
}

func TestDemoModeReported(t *testing.T) {
	if !demoService().DemoMode() {
		t.Error("service with nil collection should report demo mode")
	}
}

func TestBuildFilterAndSort(t *testing.T) {
	min := 10.0
	p := Params{Category: CategoryMen, Search: "wool", Featured: true, MinPrice: &min, Brand: "atlas"}
	filter := buildFilter(p)
	if filter["status"] != StatusActive {
		t.Error("live filter must pin status to active")
	}
	if filter["category"] != CategoryMen {
		t.Error("live filter missing category")
	}
	if _, ok := filter["$or"]; !ok {
		t.Error("live filter missing search clause")
	}
	if filter["featured"] != true {
		t.Error("live filter missing featured flag")
	}

	unknown := buildFilter(Params{Category: "Unisex"})
	if _, ok := unknown["category"]; ok {
		t.Error("unknown category must be ignored in the live filter too")
	}

	sortDoc := buildSort("")
	if len(sortDoc) != 2 || sortDoc[0].Key != "featured" || sortDoc[1].Key != "name" {
		t.Errorf("default sort = %v, want featured then name", sortDoc)
	}
}

func TestRegexEscape(t *testing.T) {
	if got := regexEscape("a.b*c"); got != `a\.b\*c` {
		t.Errorf("regexEscape = %q", got)
	}
}
