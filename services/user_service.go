package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
)

// ApprovalNotifier tells a member their account was approved.
type ApprovalNotifier interface {
	NotifyApproval(ctx context.Context, user *models.User) error
}

// UserService handles profile reads and writes and the admin approval workflow.
type UserService struct {
	userRepo repository.UserRepository
	notifier ApprovalNotifier
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, notifier ApprovalNotifier) *UserService {
	return &UserService{
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// ProfileInput is a partial profile patch; nil fields are left unchanged.
type ProfileInput struct {
	Username     *string
	Email        *string
	Name         *string
	Age          *int
	Birthday     *time.Time
	Phone        *string
	Address      *string
	Organization *string
	Committee    *string
}

// AdminUpdateInput extends a profile patch with the fields only admins may set.
type AdminUpdateInput struct {
	ProfileInput
	Role       *string
	IsApproved *bool
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies a member's own patch. Role and approval are not reachable from here.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, input ProfileInput) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) (bool, error) {
		return applyProfile(u, input), nil
	})
}

func (s *UserService) AdminUpdate(ctx context.Context, id primitive.ObjectID, input AdminUpdateInput) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) (bool, error) {
		changed := applyProfile(u, input.ProfileInput)
		if input.Role != nil {
			role, ok := models.ParseRole(*input.Role)
			if !ok {
				return false, invalid("Role must be one of [Member Admin]")
			}
			u.Role = role
			changed = true
		}
		if input.IsApproved != nil {
			u.IsApproved = *input.IsApproved
			changed = true
		}
		return changed, nil
	})
}

// Approve marks the user approved and sends a best-effort notification.
func (s *UserService) Approve(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if user.IsApproved {
		return user, nil
	}

	user.IsApproved = true
	user.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyApproval(ctx, user); err != nil {
			log.Printf("approval email to %s failed: %v", user.Email, err)
		}
	}
	return user, nil
}

// Delete removes the user; the repository also pulls them from every event.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return notFound(err, ErrUserNotFound)
	}
	return nil
}

func (s *UserService) update(ctx context.Context, id primitive.ObjectID, apply func(*models.User) (bool, error)) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	prevUsername, prevEmail := user.Username, user.Email
	changed, err := apply(user)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrNoFieldsToUpdate
	}

	if err := models.Validate(user); err != nil {
		return nil, err
	}

	username, email := "", ""
	if user.Username != prevUsername {
		username = user.Username
	}
	if user.Email != prevEmail {
		email = user.Email
	}
	if err := checkAvailable(ctx, s.userRepo, user.ID, username, email); err != nil {
		return nil, err
	}

	user.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func applyProfile(u *models.User, in ProfileInput) bool {
	changed := false
	setString := func(dst *string, src *string, transform func(string) string) {
		if src == nil {
			return
		}
		*dst = transform(*src)
		changed = true
	}

	setString(&u.Username, in.Username, strings.TrimSpace)
	setString(&u.Email, in.Email, func(v string) string { return strings.ToLower(strings.TrimSpace(v)) })
	setString(&u.Name, in.Name, strings.TrimSpace)
	setString(&u.Phone, in.Phone, strings.TrimSpace)
	setString(&u.Address, in.Address, strings.TrimSpace)
	setString(&u.Organization, in.Organization, strings.TrimSpace)
	setString(&u.Committee, in.Committee, strings.TrimSpace)

	if in.Age != nil {
		u.Age = *in.Age
		changed = true
	}
	if in.Birthday != nil {
		u.Birthday = in.Birthday
		changed = true
	}
	return changed
}
