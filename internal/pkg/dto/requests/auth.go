package requests

type RegisterStudent struct {
	FullName       string `json:"full_name" validate:"required,min=3,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password"`
	HostelBlock    string `json:"hostel_block" validate:"required"`
	RoomNumber     string `json:"room_number" validate:"required,room_number"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
