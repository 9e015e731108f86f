package catalog

import (
	"net/url"
	"testing"
)

func prod(id, name, brand, category string, price float64, featured bool) Product {
	return Product{
		ID:       id,
		Name:     name,
		Brand:    brand,
		Category: category,
		Price:    price,
		Featured: featured,
		Status:   StatusActive,
	}
}

func ids(items []Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []Product, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i, p := range got {
		if p.ID != want[i] {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}
}

func TestCategoryFilter(t *testing.T) {
	source := []Product{
		prod("m1", "Oxford Shirt", "Cole Street", CategoryMen, 54, false),
		prod("w1", "Wrap Dress", "Lumen", CategoryWomen, 118, false),
		prod("m2", "Chore Jacket", "Atlas", CategoryMen, 148, false),
	}
	res := Run(source, Params{Category: CategoryMen})
	for _, p := range res.Products {
		if p.Category != CategoryMen {
			t.Errorf("product %s has category %q, want %q", p.ID, p.Category, CategoryMen)
		}
	}
	if res.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", res.Pagination.Total)
	}
}

func TestUnknownCategoryIgnored(t *testing.T) {
	source := []Product{
		prod("m1", "Oxford Shirt", "Cole Street", CategoryMen, 54, false),
		prod("w1", "Wrap Dress", "Lumen", CategoryWomen, 118, false),
	}
	unfiltered := Run(source, Params{})
	unknown := Run(source, Params{Category: "Unisex"})
	if unknown.Pagination.Total != unfiltered.Pagination.Total {
		t.Fatalf("unknown category total = %d, want %d (same as unfiltered)",
			unknown.Pagination.Total, unfiltered.Pagination.Total)
	}
	assertIDs(t, unknown.Products, ids(unfiltered.Products)...)
}

func TestSearchOrSemantics(t *testing.T) {
	// The term matches only the brand field; the product must still be found.
	source := []Product{
		prod("p1", "Crew Sweater", "Northwind", CategoryMen, 96, false),
		prod("p2", "Wrap Dress", "Lumen", CategoryWomen, 118, false),
	}
	res := Run(source, Params{Search: "northwind"})
	assertIDs(t, res.Products, "p1")
}

func TestSearchMatchesTags(t *testing.T) {
	p := prod("p1", "Crew Sweater", "Northwind", CategoryMen, 96, false)
	p.Tags = []string{"merino", "winter"}
	other := prod("p2", "Tank Top", "Cole Street", CategoryWomen, 24, false)
	res := Run([]Product{p, other}, Params{Search: "MERINO"})
	assertIDs(t, res.Products, "p1")
}

func TestFeaturedAppliesOnTopOfOtherFilters(t *testing.T) {
	source := []Product{
		prod("m1", "Oxford Shirt", "Cole Street", CategoryMen, 54, true),
		prod("m2", "Chore Jacket", "Atlas", CategoryMen, 148, false),
		prod("w1", "Wrap Dress", "Lumen", CategoryWomen, 118, true),
	}
	res := Run(source, Params{Category: CategoryMen, Featured: true})
	assertIDs(t, res.Products, "m1")
}

func TestPriceRange(t *testing.T) {
	source := []Product{
		prod("p1", "Tee", "Cole Street", CategoryMen, 28, false),
		prod("p2", "Jeans", "Meridian", CategoryMen, 128, false),
		prod("p3", "Overcoat", "Atlas", CategoryMen, 289, false),
	}
	min, max := 30.0, 200.0
	res := Run(source, Params{MinPrice: &min, MaxPrice: &max, Sort: SortPriceAsc})
	assertIDs(t, res.Products, "p2")

	// Bounds are inclusive.
	min = 28
	res = Run(source, Params{MinPrice: &min, MaxPrice: &max})
	if res.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", res.Pagination.Total)
	}
}

func TestBrandSubstringCaseInsensitive(t *testing.T) {
	source := []Product{
		prod("p1", "Jeans", "Meridian Denim", CategoryMen, 128, false),
		prod("p2", "Tee", "Cole Street", CategoryMen, 28, false),
	}
	res := Run(source, Params{Brand: "meridian"})
	assertIDs(t, res.Products, "p1")
}

func TestSortStabilityOnEqualPrice(t *testing.T) {
	source := []Product{
		prod("first", "Zeta Tee", "A", CategoryMen, 40, false),
		prod("second", "Alpha Tee", "B", CategoryMen, 40, false),
		prod("cheap", "Basic Tee", "C", CategoryMen, 10, false),
	}
	res := Run(source, Params{Sort: SortPriceAsc})
	// Equal-price products keep their pre-sort relative order.
	assertIDs(t, res.Products, "cheap", "first", "second")
}

func TestSortVariants(t *testing.T) {
	a := prod("a", "Anorak", "X", CategoryMen, 30, false)
	a.Rating = Rating{Average: 4.8, Count: 10}
	b := prod("b", "Beanie", "X", CategoryMen, 10, false)
	// b has no rating; it must sort as rating 0.
	c := prod("c", "Cardigan", "X", CategoryMen, 20, false)
	c.Rating = Rating{Average: 3.1, Count: 4}
	source := []Product{a, b, c}

	cases := []struct {
		sort string
		want []string
	}{
		{SortPriceAsc, []string{"b", "c", "a"}},
		{SortPriceDesc, []string{"a", "c", "b"}},
		{SortNameAsc, []string{"a", "b", "c"}},
		{SortNameDesc, []string{"c", "b", "a"}},
		{SortRating, []string{"a", "c", "b"}},
	}
	for _, tc := range cases {
		res := Run(source, Params{Sort: tc.sort})
		assertIDs(t, res.Products, tc.want...)
	}
}

func TestDefaultSortFeaturedFirst(t *testing.T) {
	a := prod("a", "Banana Shirt", "X", CategoryMen, 20, false)
	b := prod("b", "Apple Shirt", "X", CategoryMen, 30, true)
	res := Run([]Product{a, b}, Params{})
	// Featured wins regardless of name order.
	assertIDs(t, res.Products, "b", "a")

	// Within a group, name ascending.
	c := prod("c", "Cap", "X", CategoryMen, 10, true)
	res = Run([]Product{a, b, c}, Params{})
	assertIDs(t, res.Products, "b", "c", "a")
}

func TestPaginationMath(t *testing.T) {
	source := make([]Product, 0, 25)
	for i := 0; i < 25; i++ {
		source = append(source, prod(
			string(rune('a'+i)), "Item", "X", CategoryMen, float64(i), false))
	}
	res := Run(source, Params{Page: 3, Limit: 12})
	pg := res.Pagination
	if len(res.Products) != 1 {
		t.Errorf("page 3 items = %d, want 1", len(res.Products))
	}
	if pg.Total != 25 || pg.Pages != 3 {
		t.Errorf("total/pages = %d/%d, want 25/3", pg.Total, pg.Pages)
	}
	if pg.HasNext {
		t.Error("hasNext = true on last page")
	}
	if !pg.HasPrev {
		t.Error("hasPrev = false on page 3")
	}
}

func TestPagePastEndIsEmptyNotError(t *testing.T) {
	source := make([]Product, 0, 25)
	for i := 0; i < 25; i++ {
		source = append(source, prod(
			string(rune('a'+i)), "Item", "X", CategoryMen, float64(i), false))
	}
	res := Run(source, Params{Page: 9, Limit: 12})
	if len(res.Products) != 0 {
		t.Errorf("items = %d, want 0", len(res.Products))
	}
	if res.Pagination.Total != 25 || res.Pagination.Pages != 3 {
		t.Errorf("metadata = %+v, want total 25 pages 3", res.Pagination)
	}
	if res.Pagination.HasNext {
		t.Error("hasNext = true past the end")
	}
}

func TestEmptySource(t *testing.T) {
	res := Run(nil, Params{Search: "anything", Page: 4})
	if len(res.Products) != 0 || res.Pagination.Total != 0 || res.Pagination.Pages != 0 {
		t.Errorf("empty source result = %+v", res)
	}
}

func TestEndToEndScenario(t *testing.T) {
	// 12 products, 6 in Men, 3 of those featured.
	source := make([]Product, 0, 12)
	for i := 0; i < 6; i++ {
		p := prod("m"+string(rune('0'+i)), "Men Item", "X", CategoryMen, float64(100-i*10), i < 3)
		source = append(source, p)
	}
	for i := 0; i < 6; i++ {
		source = append(source, prod("w"+string(rune('0'+i)), "Women Item", "X", CategoryWomen, 50, i == 0))
	}
	params := ParamsFromQuery(url.Values{
		"category": {"Men"},
		"featured": {"true"},
		"sort":     {"price_asc"},
		"page":     {"1"},
		"limit":    {"12"},
	})
	res := Run(source, params)
	if len(res.Products) != 3 {
		t.Fatalf("items = %d, want 3", len(res.Products))
	}
	if res.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", res.Pagination.Total)
	}
	for i := 1; i < len(res.Products); i++ {
		if res.Products[i-1].Price > res.Products[i].Price {
			t.Errorf("prices not ascending: %v then %v",
				res.Products[i-1].Price, res.Products[i].Price)
		}
	}
}

func TestParamsFromQueryCoercion(t *testing.T) {
	q := url.Values{
		"page":     {"not-a-number"},
		"limit":    {"-5"},
		"minPrice": {"abc"},
		"maxPrice": {"99.5"},
		"featured": {"TRUE"},
		"category": {" Men "},
	}
	p := ParamsFromQuery(q)
	if p.Page != DefaultPage {
		t.Errorf("page = %d, want %d", p.Page, DefaultPage)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if p.MinPrice != nil {
		t.Error("minPrice should be dropped")
	}
	if p.MaxPrice == nil || *p.MaxPrice != 99.5 {
		t.Errorf("maxPrice = %v, want 99.5", p.MaxPrice)
	}
	if !p.Featured {
		t.Error("featured should coerce from TRUE")
	}
	if p.Category != "Men" {
		t.Errorf("category = %q, want trimmed Men", p.Category)
	}
}

func TestRunDoesNotMutateSource(t *testing.T) {
	source := []Product{
		prod("b", "Beanie", "X", CategoryMen, 10, false),
		prod("a", "Anorak", "X", CategoryMen, 30, false),
	}
	_ = Run(source, Params{Sort: SortNameAsc})
	assertIDs(t, source, "b", "a")
}
