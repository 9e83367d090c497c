package domain

// User is the authenticated profile cached per session. An absent user
// means the session is not authenticated.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
