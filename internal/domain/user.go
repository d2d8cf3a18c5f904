package domain

import "context"

// DemoUserID owns the shared collections every user can see.
const DemoUserID = "demo-user-id"

// User represents an authenticated caller.
type User struct {
	ID       string `json:"id"`
	GoogleID string `json:"googleId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture,omitempty"`
}

// NewDemoUser returns the guest identity used with the demo token.
func NewDemoUser() *User {
	return &User{
		ID:       DemoUserID,
		GoogleID: "demo-google-id",
		Email:    "guest@docquiz.demo",
		Name:     "Guest User",
		Picture:  "https://ui-avatars.com/api/?name=Guest+User",
	}
}

// UserRepository defines the interface for user persistence.
// GetByID and GetByGoogleID return (nil, nil) when no user matches.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
}
