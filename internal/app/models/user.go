package models

type User struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	FullName    string      `json:"fullName" bson:"fullName"`
	Email       string      `json:"email" bson:"email"`
	Password    string      `json:"-" bson:"password"`
	Role        string      `json:"role" bson:"role"`
	HostelBlock HostelBlock `json:"hostelBlock" bson:"hostelBlock"`
	RoomNumber  string      `json:"roomNumber" bson:"roomNumber"`
	TimeModel   `bson:",inline"`
}
