package domain

// User is a collaborator of the cabinet allowed to invoke mutations.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`  // Unique, stored lowercase
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // "admin" for the bootstrap user, "user" otherwise
	Timestamps
}
