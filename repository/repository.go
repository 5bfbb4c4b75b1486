package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/models"
)

var (
	// ErrNotFound is returned when an id or key does not resolve to a document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
	// ErrRegistrationRejected is returned when the conditional registration update
	// matched nothing: the user is already registered or the event is full.
	ErrRegistrationRejected = errors.New("registration rejected")
	// ErrNotRegistered is returned when unregistering a user who holds no seat.
	ErrNotRegistered = errors.New("user is not registered for this event")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and fills in its ID
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List retrieves users matching the filter, newest first
	List(ctx context.Context, filter UserFilter) ([]models.User, error)

	// Update writes the user's mutable fields; registered events are left alone
	Update(ctx context.Context, user *models.User) error

	// Delete removes the user and pulls them from every event's user sets
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count counts users matching the filter
	Count(ctx context.Context, filter UserFilter) (int64, error)
}

// UserFilter holds filtering options for listing users
type UserFilter struct {
	IDs        []primitive.ObjectID
	Role       *models.Role
	IsApproved *bool
	Committee  string
	Query      string
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	List(ctx context.Context, filter EventFilter) ([]models.Event, error)

	// Update writes the event's descriptive fields; the user sets are left alone
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)

	// Register adds the user to the event and the event to the user in one
	// transaction, guarded by membership and capacity conditions
	Register(ctx context.Context, eventID, userID primitive.ObjectID) error

	// Unregister reverses Register in one transaction
	Unregister(ctx context.Context, eventID, userID primitive.ObjectID) error

	AddInterest(ctx context.Context, eventID, userID primitive.ObjectID) error
	RemoveInterest(ctx context.Context, eventID, userID primitive.ObjectID) error
}

// EventFilter holds filtering options for listing events
type EventFilter struct {
	Status *models.EventStatus
	From   *time.Time
	To     *time.Time
	Query  string
}

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	List(ctx context.Context, filter AnnouncementFilter) ([]models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// AnnouncementFilter holds filtering options for listing announcements
type AnnouncementFilter struct {
	Priority *models.Priority
	// ActiveAt drops announcements whose expiry is at or before this instant
	ActiveAt *time.Time
}

// DonationRepository defines the interface for donation data access
type DonationRepository interface {
	Create(ctx context.Context, d *models.Donation) error

	// InsertMany bulk-inserts imported donations
	InsertMany(ctx context.Context, donations []models.Donation) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error)

	// List returns one page of matching donations, newest first, and the total match count
	List(ctx context.Context, filter DonationFilter, page, limit int) ([]models.Donation, int64, error)

	// ListAll returns every matching donation, newest first
	ListAll(ctx context.Context, filter DonationFilter) ([]models.Donation, error)

	Update(ctx context.Context, d *models.Donation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)

	// StatsByMethod aggregates completed donations grouped by method
	StatsByMethod(ctx context.Context) ([]models.DonationMethodStats, error)
}

// DonationFilter holds filtering options for listing donations
type DonationFilter struct {
	Method *models.DonationMethod
	Status *models.DonationStatus
	Donor  string
	From   *time.Time
	To     *time.Time
}
