package services

import (
	"errors"
	"fmt"

	"github.com/phillip/youth-portal/repository"
)

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUserGone             = errors.New("user belonging to this token no longer exists")
	ErrDuplicateUser        = errors.New("email or username already in use")
	ErrWrongPassword        = errors.New("current password is wrong")
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrDonationNotFound     = errors.New("donation not found")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrEventFull            = errors.New("event is at full capacity")
	ErrNotRegistered        = errors.New("not registered for this event")
	ErrRegistrationClosed   = errors.New("event is not open for registration")
	ErrRegistrationTimeout  = errors.New("registration timed out")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
)

// InputError is a request the service rejects before touching storage.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}

func invalid(format string, args ...interface{}) error {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// notFound swaps the repository miss for the resource-specific sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}
