package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"looncamp-backend/models"
	"looncamp-backend/utils"

	"gorm.io/gorm"
)

// AdminIdentity is the decoded admin behind a valid token.
type AdminIdentity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`

	tokenID   string
	expiresAt time.Time
}

type LoginResult struct {
	Token string        `json:"token"`
	Admin AdminIdentity `json:"admin"`
}

type AuthService struct {
	DB          *gorm.DB
	Tokens      *utils.TokenManager
	Revocations RevocationStore // nil disables server-side logout
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager, revocations RevocationStore) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Revocations: revocations}
}

// Login never tells an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, invalid("Email and password are required.")
	}

	var admin models.Admin
	err := s.DB.WithContext(ctx).Where("LOWER(email) = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("find admin: %w", err)
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, _, err := s.Tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{Token: token, Admin: AdminIdentity{ID: admin.ID, Email: admin.Email}}, nil
}

// Authenticate verifies signature, expiry and revocation.
func (s *AuthService) Authenticate(ctx context.Context, token string) (AdminIdentity, error) {
	claims, err := s.Tokens.Validate(token)
	if err != nil {
		return AdminIdentity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if s.Revocations != nil && claims.ID != "" {
		revoked, err := s.Revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Printf("⚠️ revocation lookup failed, accepting token: %v", err)
		} else if revoked {
			return AdminIdentity{}, fmt.Errorf("%w: token revoked", ErrUnauthorized)
		}
	}

	identity := AdminIdentity{ID: claims.AdminID, Email: claims.Email, tokenID: claims.ID}
	if claims.ExpiresAt != nil {
		identity.expiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// Logout denies the token until its expiry when a revocation store is
// configured. Invalid or missing tokens are ignored; logout always succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.Revocations == nil || token == "" {
		return nil
	}
	identity, err := s.Authenticate(ctx, token)
	if err != nil || identity.tokenID == "" {
		return nil
	}
	return s.Revocations.Revoke(ctx, identity.tokenID, time.Until(identity.expiresAt))
}
