package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	DesignerID int    `json:"designer_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// DesignerAuthProvider links a designer to an account at an OAuth provider.
type DesignerAuthProvider struct {
	ID             int       `json:"id"`
	DesignerID     int       `json:"designer_id"`
	Provider       string    `json:"provider"`
	ProviderUserID string    `json:"provider_user_id"`
	ProviderEmail  *string   `json:"provider_email"`
	CreatedAt      time.Time `json:"created_at"`
}
