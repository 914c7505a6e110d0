package requests

// UpdateProfile carries the fields a student may change after registration.
// Absent fields keep their stored value.
type UpdateProfile struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	HostelBlock *string `json:"hostel_block,omitempty" validate:"omitempty"`
	RoomNumber  *string `json:"room_number,omitempty" validate:"omitempty,room_number"`
}
