package responses

type UserProfile struct {
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	HostelBlock string `json:"hostel_block"`
	RoomNumber  string `json:"room_number"`
}
