package models

type MenuItem struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Category    string  `json:"category" bson:"category"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"imageUrl" bson:"imageUrl"`
	Available   bool    `json:"available" bson:"available"`
	TimeModel   `bson:",inline"`
}
