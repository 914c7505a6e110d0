package responses

type RegisterStudent struct {
	UserID string `json:"user_id"`
}

type Login struct {
	Token string `json:"token"`
}
