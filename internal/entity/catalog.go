package entity

// Category is a fixed group of products shown by the catalog pages.
type Category struct {
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
