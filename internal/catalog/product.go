package catalog

import "time"

// Categories the storefront sells. Filters only honor values from this set;
// anything else is ignored rather than matching nothing.
const (
	CategoryMen   = "Men"
	CategoryWomen = "Women"
)

// Product statuses. Only active products are user visible; callers filter by
// status themselves, the pipeline does not.
const (
	StatusActive   = "active"
	StatusDraft    = "draft"
	StatusArchived = "archived"
)

type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type Product struct {
	ID               string    `bson:"_id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Description      string    `bson:"description" json:"description"`
	ShortDescription string    `bson:"short_description" json:"shortDescription,omitempty"`
	Brand            string    `bson:"brand" json:"brand"`
	Category         string    `bson:"category" json:"category"`
	Subcategory      string    `bson:"subcategory" json:"subcategory,omitempty"`
	Tags             []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Features         []string  `bson:"features,omitempty" json:"features,omitempty"`
	Price            float64   `bson:"price" json:"price"`
	ComparePrice     float64   `bson:"compare_price,omitempty" json:"comparePrice,omitempty"`
	Featured         bool      `bson:"featured" json:"featured"`
	Status           string    `bson:"status" json:"status"`
	Rating           Rating    `bson:"rating" json:"rating"`
	Stock            int       `bson:"stock" json:"stock"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// ValidCategory reports whether raw is a member of the fixed category set.
func ValidCategory(raw string) bool {
	return raw == CategoryMen || raw == CategoryWomen
}

// Categories returns the fixed category enumeration.
func Categories() []string {
	return []string{CategoryMen, CategoryWomen}
}
