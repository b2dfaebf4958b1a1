package model

// Scope is the per-request identity extracted from the auth token.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
