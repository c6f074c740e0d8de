package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"cms/internal/models"
	"cms/internal/repositories"
	"cms/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is used when no explicit token lifetime is configured.
const DefaultTokenTTL = 30 * time.Minute

// AuthService handles accounts and the authentication core: password
// hashing, bearer-token issuance/validation, and resolving tokens back
// to live users.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	mqClient  *rabbitmq.Client
}

// NewAuthService creates a new AuthService. A non-positive tokenTTL
// falls back to DefaultTokenTTL. mqClient may be nil.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, mqClient *rabbitmq.Client) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		mqClient:  mqClient,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	// A concurrent registration can slip past the pre-check; the unique
	// index on email reports it the same way.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.publishEvent("account.created", map[string]interface{}{
		"userID": user.ID,
		"email":  user.Email,
	})
	return user, nil
}

// Login verifies the email/password pair and returns a signed bearer
// token. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.IssueToken(user.ID)
}

// IssueToken signs a token carrying the user id as subject, expiring
// after the configured lifetime.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   userID,
		ExpiresAt: now.Add(s.tokenTTL).Unix(),
		IssuedAt:  now.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature, structure and expiry of a token
// and returns its subject. Every failure mode (tampered signature,
// malformed token, expired, missing subject) yields the same
// ErrUnauthenticated so callers cannot tell which check rejected it.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrUnauthenticated
	}
	return claims.Subject, nil
}

// ResolveUser turns a bearer token into the live user entity. Invalid
// tokens and tokens for deleted accounts fail identically.
func (s *AuthService) ResolveUser(tokenString string) (*models.User, error) {
	subject, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// UpdateAccount replaces the mutable account fields: name, email and
// password (rehashed). Nothing else is client-writable.
func (s *AuthService) UpdateAccount(user *models.User, name, email, password string) (*models.User, error) {
	if email != user.Email {
		existing, err := s.userRepo.GetByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Name = name
	user.Email = email
	user.Password = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own.
func (s *AuthService) DeleteAccount(user *models.User) error {
	if err := s.userRepo.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (s *AuthService) publishEvent(event string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(event, data); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
