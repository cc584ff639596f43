package auth

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Redirect string `json:"redirect"`
}

// Credentials is the single configured admin account.
type Credentials struct {
	Username     string
	PasswordHash string // argon2id PHC string
}
