package models

import "time"

type Session struct {
	SessionID   string      `json:"sessionId"`
	UserID      string      `json:"userId"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	HostelBlock HostelBlock `json:"hostelBlock"`
	RoomNumber  string      `json:"roomNumber"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}
