package requests

type CreateMenuItem struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Category    string  `json:"category" validate:"required,max=50"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
}

type UpdateMenuItem struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image       *string  `json:"image,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

type ListMenu struct {
	OnlyAvailable bool
	Category      string
}
