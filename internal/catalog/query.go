package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// Sort keys accepted by the pipeline. Anything else falls back to the
// default two-key order: featured first, then name ascending.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortRating    = "rating"
)

// Params carries one request's catalog query. All fields are optional;
// zero values mean "not supplied".
type Params struct {
	Category string
	Search   string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Featured bool
	Sort     string
	Page     int
	Limit    int
}

type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type Result struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ParamsFromQuery coerces raw query-string values into Params. Malformed
// values are dropped or defaulted, never rejected; a catalog browse does not
// fail on bad input.
func ParamsFromQuery(q url.Values) Params {
	p := Params{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
		Brand:    strings.TrimSpace(q.Get("brand")),
		Sort:     strings.TrimSpace(q.Get("sort")),
		Page:     atoiDefault(q.Get("page"), DefaultPage),
		Limit:    atoiDefault(q.Get("limit"), DefaultLimit),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		p.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		p.MaxPrice = &v
	}
	switch strings.ToLower(q.Get("featured")) {
	case "1", "true", "yes":
		p.Featured = true
	}
	return p
}

func atoiDefault(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// Run applies filter, sort and paginate to source, in that fixed order, and
// returns the page plus pagination metadata. It never errors: out-of-range
// pages yield an empty item list with true totals.
func Run(source []Product, p Params) Result {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := filterProducts(source, p)
	sortProducts(filtered, p.Sort)

	total := len(filtered)
	pages := (total + limit - 1) / limit
	skip := (page - 1) * limit

	items := []Product{}
	if skip < total {
		end := skip + limit
		if end > total {
			end = total
		}
		items = filtered[skip:end]
	}

	return Result{
		Products: items,
		Pagination: Pagination{
			Page:    page,
			Limit:   limit,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}
}

func filterProducts(source []Product, p Params) []Product {
	out := make([]Product, 0, len(source))
	out = append(out, source...)

	// Unrecognized categories are ignored, not matched to nothing.
	if ValidCategory(p.Category) {
		out = keep(out, func(pr Product) bool { return pr.Category == p.Category })
	}
	if p.Search != "" {
		term := strings.ToLower(p.Search)
		out = keep(out, func(pr Product) bool { return matchesSearch(pr, term) })
	}
	if p.Featured {
		out = keep(out, func(pr Product) bool { return pr.Featured })
	}
	if p.MinPrice != nil {
		min := *p.MinPrice
		out = keep(out, func(pr Product) bool { return pr.Price >= min })
	}
	if p.MaxPrice != nil {
		max := *p.MaxPrice
		out = keep(out, func(pr Product) bool { return pr.Price <= max })
	}
	if p.Brand != "" {
		brand := strings.ToLower(p.Brand)
		out = keep(out, func(pr Product) bool {
			return strings.Contains(strings.ToLower(pr.Brand), brand)
		})
	}
	return out
}

func keep(items []Product, pred func(Product) bool) []Product {
	out := items[:0]
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// matchesSearch reports whether any searchable field contains term.
// The match is an OR across fields, not an AND.
func matchesSearch(p Product, term string) bool {
	fields := []string{p.Name, p.Description, p.ShortDescription, p.Subcategory, p.Brand}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(items []Product, key string) {
	// Collators reuse internal buffers, so build one per call rather than
	// sharing across requests.
	coll := collate.New(language.English, collate.Loose)
	byName := func(i, j int) int {
		return coll.CompareString(items[i].Name, items[j].Name)
	}
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortNameAsc:
		sort.SliceStable(items, func(i, j int) bool { return byName(i, j) < 0 })
	case SortNameDesc:
		sort.SliceStable(items, func(i, j int) bool { return byName(i, j) > 0 })
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating.Average > items[j].Rating.Average
		})
	default:
		// Featured products lead; within each group, name ascending.
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Featured != items[j].Featured {
				return items[i].Featured
			}
			return byName(i, j) < 0
		})
	}
}
