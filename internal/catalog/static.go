package catalog

import "time"

// StaticProducts returns the bundled demo catalog, served whenever the live
// database is unreachable. The top-level slice is copied on every call so
// reordering or overwriting records never leaks into the bundled data.
func StaticProducts() []Product {
	launched := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	out := make([]Product, len(staticProducts))
	copy(out, staticProducts)
	for i := range out {
		out[i].CreatedAt = launched.AddDate(0, 0, i)
	}
	return out
}

var staticProducts = []Product{
	{
		ID:               "prod-001",
		Name:             "Classic Oxford Shirt",
		Description:      "A crisp cotton oxford cut for everyday wear, with a button-down collar and reinforced seams.",
		ShortDescription: "Crisp everyday oxford",
		Brand:            "Cole Street",
		Category:         CategoryMen,
		Subcategory:      "Shirts",
		Tags:             []string{"cotton", "office", "classic"},
		Features:         []string{"100% combed cotton", "Button-down collar", "Machine washable"},
		Price:            54.00,
		ComparePrice:     68.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.6, Count: 212},
		Stock:            140,
	},
	{
		ID:               "prod-002",
		Name:             "Slim Selvedge Jeans",
		Description:      "Japanese selvedge denim with a slim taper, raw finish and chain-stitched hems.",
		ShortDescription: "Raw selvedge denim",
		Brand:            "Meridian Denim",
		Category:         CategoryMen,
		Subcategory:      "Jeans",
		Tags:             []string{"denim", "selvedge", "slim"},
		Features:         []string{"14oz Japanese denim", "Slim taper fit", "Chain-stitched hems"},
		Price:            128.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.8, Count: 97},
		Stock:            60,
	},
	{
		ID:               "prod-003",
		Name:             "Merino Crew Sweater",
		Description:      "Fine-gauge merino knit in a classic crew neck, soft enough for bare skin and warm without bulk.",
		ShortDescription: "Fine-gauge merino crew",
		Brand:            "Northwind",
		Category:         CategoryMen,
		Subcategory:      "Knitwear",
		Tags:             []string{"merino", "wool", "winter"},
		Features:         []string{"Extra-fine merino wool", "Fully fashioned knit", "Hand wash"},
		Price:            96.00,
		ComparePrice:     120.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.7, Count: 154},
		Stock:            85,
	},
	{
		ID:               "prod-004",
		Name:             "Field Chore Jacket",
		Description:      "A workwear-inspired chore jacket in washed canvas with triple-needle stitching and four patch pockets.",
		ShortDescription: "Washed canvas chore jacket",
		Brand:            "Atlas & Co",
		Category:         CategoryMen,
		Subcategory:      "Outerwear",
		Tags:             []string{"canvas", "workwear", "jacket"},
		Features:         []string{"Washed cotton canvas", "Corozo buttons", "Four patch pockets"},
		Price:            148.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.5, Count: 73},
		Stock:            40,
	},
	{
		ID:               "prod-005",
		Name:             "Everyday Crew Tee",
		Description:      "Heavyweight jersey tee with a ribbed collar that keeps its shape wash after wash.",
		ShortDescription: "Heavyweight jersey tee",
		Brand:            "Cole Street",
		Category:         CategoryMen,
		Subcategory:      "T-Shirts",
		Tags:             []string{"cotton", "basics"},
		Features:         []string{"220gsm jersey", "Ribbed collar", "Pre-shrunk"},
		Price:            28.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.3, Count: 301},
		Stock:            320,
	},
	{
		ID:               "prod-006",
		Name:             "Trail Runner Shorts",
		Description:      "Lightweight four-way stretch shorts with a zip pocket and reflective trims for early runs.",
		ShortDescription: "Lightweight running shorts",
		Brand:            "Ridgeline",
		Category:         CategoryMen,
		Subcategory:      "Activewear",
		Tags:             []string{"running", "stretch", "summer"},
		Features:         []string{"Four-way stretch", "Zip pocket", "Reflective trims"},
		Price:            42.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.4, Count: 88},
		Stock:            110,
	},
	{
		ID:               "prod-007",
		Name:             "Wool Overcoat",
		Description:      "A single-breasted overcoat in a wool-cashmere blend, fully lined with an interior chest pocket.",
		ShortDescription: "Wool-cashmere overcoat",
		Brand:            "Atlas & Co",
		Category:         CategoryMen,
		Subcategory:      "Outerwear",
		Tags:             []string{"wool", "winter", "formal"},
		Features:         []string{"Wool-cashmere blend", "Full lining", "Interior chest pocket"},
		Price:            289.00,
		ComparePrice:     340.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.9, Count: 41},
		Stock:            25,
	},
	{
		ID:               "prod-008",
		Name:             "Canvas High-Top Sneakers",
		Description:      "Vulcanized high-tops in duck canvas with a cushioned insole and gum rubber outsole.",
		ShortDescription: "Vulcanized canvas high-tops",
		Brand:            "Harbor Supply",
		Category:         CategoryMen,
		Subcategory:      "Footwear",
		Tags:             []string{"sneakers", "canvas", "casual"},
		Features:         []string{"Duck canvas upper", "Cushioned insole", "Gum rubber outsole"},
		Price:            64.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{},
		Stock:            95,
	},
	{
		ID:               "prod-009",
		Name:             "Wrap Midi Dress",
		Description:      "A fluid crepe wrap dress with a self-tie waist and a flattering midi hem.",
		ShortDescription: "Crepe wrap midi dress",
		Brand:            "Lumen Atelier",
		Category:         CategoryWomen,
		Subcategory:      "Dresses",
		Tags:             []string{"crepe", "occasion", "midi"},
		Features:         []string{"Fluid crepe fabric", "Self-tie waist", "Midi length"},
		Price:            118.00,
		ComparePrice:     145.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.7, Count: 186},
		Stock:            70,
	},
	{
		ID:               "prod-010",
		Name:             "High-Rise Straight Jeans",
		Description:      "Rigid denim with a high rise and straight leg, cut to sit at the natural waist.",
		ShortDescription: "High-rise rigid denim",
		Brand:            "Meridian Denim",
		Category:         CategoryWomen,
		Subcategory:      "Jeans",
		Tags:             []string{"denim", "high-rise"},
		Features:         []string{"Rigid 12oz denim", "High rise", "Straight leg"},
		Price:            112.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.6, Count: 240},
		Stock:            130,
	},
	{
		ID:               "prod-011",
		Name:             "Cashmere V-Neck",
		Description:      "Two-ply cashmere knit with a deep V-neck and slightly relaxed body.",
		ShortDescription: "Two-ply cashmere V-neck",
		Brand:            "Northwind",
		Category:         CategoryWomen,
		Subcategory:      "Knitwear",
		Tags:             []string{"cashmere", "winter", "luxury"},
		Features:         []string{"Two-ply cashmere", "Relaxed fit", "Dry clean"},
		Price:            189.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.9, Count: 64},
		Stock:            35,
	},
	{
		ID:               "prod-012",
		Name:             "Pleated Midi Skirt",
		Description:      "Knife-pleated skirt in a satin-back crepe that moves with every step.",
		ShortDescription: "Knife-pleated satin skirt",
		Brand:            "Lumen Atelier",
		Category:         CategoryWomen,
		Subcategory:      "Skirts",
		Tags:             []string{"pleated", "satin", "office"},
		Features:         []string{"Knife pleats", "Satin-back crepe", "Side zip"},
		Price:            86.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.4, Count: 119},
		Stock:            90,
	},
	{
		ID:               "prod-013",
		Name:             "Ribbed Tank Top",
		Description:      "A close-fitting ribbed tank in stretch cotton, made to layer or wear alone.",
		ShortDescription: "Stretch cotton ribbed tank",
		Brand:            "Cole Street",
		Category:         CategoryWomen,
		Subcategory:      "Tops",
		Tags:             []string{"cotton", "basics", "summer"},
		Features:         []string{"Stretch rib knit", "Double-layered front"},
		Price:            24.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.2, Count: 278},
		Stock:            400,
	},
	{
		ID:               "prod-014",
		Name:             "Quilted Liner Jacket",
		Description:      "A lightweight quilted liner with a stand collar, packable into its own pocket.",
		ShortDescription: "Packable quilted liner",
		Brand:            "Ridgeline",
		Category:         CategoryWomen,
		Subcategory:      "Outerwear",
		Tags:             []string{"quilted", "packable", "layering"},
		Features:         []string{"Recycled fill", "Stand collar", "Packs into pocket"},
		Price:            98.00,
		ComparePrice:     125.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.5, Count: 142},
		Stock:            75,
	},
	{
		ID:               "prod-015",
		Name:             "Leather Ballet Flats",
		Description:      "Soft nappa leather flats with a cushioned footbed and a bow-trimmed round toe.",
		ShortDescription: "Nappa leather flats",
		Brand:            "Harbor Supply",
		Category:         CategoryWomen,
		Subcategory:      "Footwear",
		Tags:             []string{"leather", "flats", "classic"},
		Features:         []string{"Nappa leather upper", "Cushioned footbed", "Rubber sole"},
		Price:            76.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.3, Count: 93},
		Stock:            55,
	},
	{
		ID:               "prod-016",
		Name:             "Linen Camp Shirt",
		Description:      "A breezy camp-collar shirt in washed European linen, boxy through the body.",
		ShortDescription: "Washed linen camp shirt",
		Brand:            "Lumen Atelier",
		Category:         CategoryWomen,
		Subcategory:      "Tops",
		Tags:             []string{"linen", "summer", "vacation"},
		Features:         []string{"European linen", "Camp collar", "Boxy fit"},
		Price:            68.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{},
		Stock:            65,
	},
	{
		ID:               "prod-017",
		Name:             "Performance Leggings",
		Description:      "High-waisted leggings in a sculpting knit with a hidden waistband pocket.",
		ShortDescription: "Sculpting high-waist leggings",
		Brand:            "Ridgeline",
		Category:         CategoryWomen,
		Subcategory:      "Activewear",
		Tags:             []string{"stretch", "gym", "running"},
		Features:         []string{"Sculpting knit", "Hidden waistband pocket", "Squat-proof"},
		Price:            58.00,
		Featured:         true,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.6, Count: 331},
		Stock:            210,
	},
	{
		ID:               "prod-018",
		Name:             "Suede Chelsea Boots",
		Description:      "Classic Chelsea boots in oiled suede with elastic gussets and a stacked heel.",
		ShortDescription: "Oiled suede Chelseas",
		Brand:            "Harbor Supply",
		Category:         CategoryMen,
		Subcategory:      "Footwear",
		Tags:             []string{"suede", "boots", "classic"},
		Features:         []string{"Oiled suede upper", "Elastic gussets", "Stacked heel"},
		Price:            158.00,
		ComparePrice:     185.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.7, Count: 58},
		Stock:            30,
	},
	{
		ID:               "prod-019",
		Name:             "Silk Scarf",
		Description:      "A hand-rolled silk twill scarf in an archive botanical print.",
		ShortDescription: "Hand-rolled silk twill",
		Brand:            "Lumen Atelier",
		Category:         CategoryWomen,
		Subcategory:      "Accessories",
		Tags:             []string{"silk", "print", "gift"},
		Features:         []string{"Silk twill", "Hand-rolled edges"},
		Price:            52.00,
		Featured:         false,
		Status:           StatusDraft,
		Rating:           Rating{},
		Stock:            0,
	},
	{
		ID:               "prod-020",
		Name:             "Waxed Canvas Tote",
		Description:      "A structured tote in waxed canvas with leather handles and an interior zip pocket.",
		ShortDescription: "Waxed canvas carryall",
		Brand:            "Atlas & Co",
		Category:         CategoryWomen,
		Subcategory:      "Accessories",
		Tags:             []string{"canvas", "bag", "everyday"},
		Features:         []string{"Waxed canvas body", "Leather handles", "Interior zip pocket"},
		Price:            88.00,
		Featured:         false,
		Status:           StatusActive,
		Rating:           Rating{Average: 4.5, Count: 47},
		Stock:            48,
	},
}
