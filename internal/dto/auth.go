package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the custom claims for learner JWTs.
type AuthClaims struct {
	LearnerID string `json:"learner_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
