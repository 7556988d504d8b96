package domain

// ProductCategory is a catalog category; ParentCategory is nil for roots.
type ProductCategory struct {
	ID             int    `json:"id"`
	CategoryName   string `json:"category_name"`
	ParentCategory *int   `json:"parent_category"`
}
