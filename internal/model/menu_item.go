package model

// MenuItem is a dish on the menu. Price is a display string ("22€").
type MenuItem struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Price       string `json:"price" bson:"price"`
	Category    string `json:"category" bson:"category"`
	Available   bool   `json:"available" bson:"available"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// MenuItemInput is used both to create an item and to replace every field
// of an existing one. A nil Available means true.
type MenuItemInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Available   *bool  `json:"available"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// IsAvailable resolves the default for Available.
func (in MenuItemInput) IsAvailable() bool {
	return in.Available == nil || *in.Available
}
