package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/auth"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
)

// AuthService handles registration, login and bearer token verification.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		now:      time.Now,
	}
}

// AuthResult is what register, login and password change hand back to the client.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// RegisterInput represents the information supplied on sign-up.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Name         string
	Age          int
	Birthday     *time.Time
	Phone        string
	Address      string
	Organization string
	Committee    string
}

// Register creates an unapproved member and signs them in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if username == "" || email == "" || input.Password == "" || name == "" {
		return nil, invalid("Please provide username, email, password and name")
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, invalid("Password must be at least %d characters", auth.MinPasswordLength)
	}

	if err := checkAvailable(ctx, s.userRepo, primitive.NilObjectID, username, email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &models.User{
		ID:               primitive.NewObjectID(),
		Username:         username,
		Email:            email,
		PasswordHash:     hash,
		Name:             name,
		Age:              input.Age,
		Birthday:         input.Birthday,
		Phone:            strings.TrimSpace(input.Phone),
		Address:          strings.TrimSpace(input.Address),
		Organization:     strings.TrimSpace(input.Organization),
		Committee:        strings.TrimSpace(input.Committee),
		Role:             models.RoleMember,
		IsApproved:       false,
		RegisteredEvents: []primitive.ObjectID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := models.Validate(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.signIn(user)
}

// Login verifies credentials. Unknown usernames and wrong passwords are indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(user)
}

// Authenticate resolves a bearer token to the live user record. The user is read
// on every call so deletions and role changes apply immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserGone
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdatePassword checks the current password, stores the new hash and issues a fresh token.
func (s *AuthService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, current, next string) (*AuthResult, error) {
	if current == "" || next == "" {
		return nil, invalid("Please provide your current and new password")
	}
	if err := auth.ValidatePassword(next); err != nil {
		return nil, invalid("Password must be at least %d characters", auth.MinPasswordLength)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if err := auth.CheckPassword(current, user.PasswordHash); err != nil {
		return nil, ErrWrongPassword
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return s.signIn(user)
}

func (s *AuthService) signIn(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// checkAvailable rejects a username or email held by someone other than self.
func checkAvailable(ctx context.Context, users repository.UserRepository, self primitive.ObjectID, username, email string) error {
	if username != "" {
		existing, err := users.FindByUsername(ctx, username)
		if err == nil && existing.ID != self {
			return ErrDuplicateUser
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to check username: %w", err)
		}
	}
	if email != "" {
		existing, err := users.FindByEmail(ctx, email)
		if err == nil && existing.ID != self {
			return ErrDuplicateUser
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}
	}
	return nil
}
