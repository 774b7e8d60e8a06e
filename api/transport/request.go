package transport

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
