package domain

// UserID uniquely identifies a user within the system.
type UserID int64

// User is the owner of scan tasks. Only the fields the runner reads are modeled.
type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
	// Notification is an index into the ordered notification channel registry.
	Notification int `json:"notification"`
}
