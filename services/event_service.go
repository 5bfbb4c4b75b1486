package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/storage"
)

const eventImageFolder = "events"

// EventService handles event CRUD and member RSVPs.
type EventService struct {
	eventRepo           repository.EventRepository
	userRepo            repository.UserRepository
	images              storage.ImageStore
	registrationTimeout time.Duration
	now                 func() time.Time
}

func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, images storage.ImageStore, registrationTimeout time.Duration) *EventService {
	return &EventService{
		eventRepo:           eventRepo,
		userRepo:            userRepo,
		images:              images,
		registrationTimeout: registrationTimeout,
		now:                 time.Now,
	}
}

// EventInput carries create fields and update patches; nil means absent.
type EventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
	Status      *string
}

func (s *EventService) List(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	return event, nil
}

// Create stores a new event owned by createdBy. image may be nil.
func (s *EventService) Create(ctx context.Context, createdBy primitive.ObjectID, input EventInput, image *multipart.FileHeader) (*models.Event, error) {
	now := s.now()
	event := &models.Event{
		ID:              primitive.NewObjectID(),
		Status:          models.EventStatusUpcoming,
		RegisteredUsers: []primitive.ObjectID{},
		InterestedUsers: []primitive.ObjectID{},
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := applyEvent(event, input); err != nil {
		return nil, err
	}
	if err := models.Validate(event); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Save(ctx, eventImageFolder, image)
		if err != nil {
			return nil, err
		}
		event.Image = url
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.discardImage(ctx, event.Image)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// Update patches an event. A new image replaces the old one, which is then removed.
func (s *EventService) Update(ctx context.Context, id primitive.ObjectID, input EventInput, image *multipart.FileHeader) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}

	changed, err := applyEvent(event, input)
	if err != nil {
		return nil, err
	}
	if !changed && image == nil {
		return nil, ErrNoFieldsToUpdate
	}
	if err := models.Validate(event); err != nil {
		return nil, err
	}

	oldImage := event.Image
	if image != nil {
		url, err := s.images.Save(ctx, eventImageFolder, image)
		if err != nil {
			return nil, err
		}
		event.Image = url
	}

	event.UpdatedAt = s.now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if image != nil {
			s.discardImage(ctx, event.Image)
		}
		return nil, notFound(err, ErrEventNotFound)
	}

	if image != nil {
		s.discardImage(ctx, oldImage)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id primitive.ObjectID) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, ErrEventNotFound)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return notFound(err, ErrEventNotFound)
	}
	s.discardImage(ctx, event.Image)
	return nil
}

// Register takes a seat for the user. The event and user documents are updated in
// one transaction, and the whole attempt is bounded by the registration timeout.
func (s *EventService) Register(ctx context.Context, eventID primitive.ObjectID, user *models.User) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.registrationTimeout)
	defer cancel()

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, s.registrationErr(ctx, notFound(err, ErrEventNotFound))
	}
	if event.Status == models.EventStatusCancelled || event.Status == models.EventStatusCompleted {
		return nil, ErrRegistrationClosed
	}
	if event.IsRegistered(user.ID) {
		return nil, ErrAlreadyRegistered
	}
	if event.IsFull() {
		return nil, ErrEventFull
	}

	if err := s.eventRepo.Register(ctx, eventID, user.ID); err != nil {
		if errors.Is(err, repository.ErrRegistrationRejected) {
			return nil, s.classifyRejection(ctx, eventID, user.ID)
		}
		return nil, s.registrationErr(ctx, notFound(err, ErrUserNotFound))
	}

	return s.Get(ctx, eventID)
}

// classifyRejection explains a conditional update that matched nothing because
// another request changed the event after the pre-checks.
func (s *EventService) classifyRejection(ctx context.Context, eventID, userID primitive.ObjectID) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return s.registrationErr(ctx, notFound(err, ErrEventNotFound))
	}
	if event.IsRegistered(userID) {
		return ErrAlreadyRegistered
	}
	return ErrEventFull
}

func (s *EventService) registrationErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrRegistrationTimeout
	}
	return err
}

func (s *EventService) Unregister(ctx context.Context, eventID primitive.ObjectID, user *models.User) (*models.Event, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	if err := s.eventRepo.Unregister(ctx, eventID, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotRegistered) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}
	return s.Get(ctx, eventID)
}

// AddInterest is idempotent.
func (s *EventService) AddInterest(ctx context.Context, eventID primitive.ObjectID, user *models.User) (*models.Event, error) {
	if err := s.eventRepo.AddInterest(ctx, eventID, user.ID); err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	return s.Get(ctx, eventID)
}

func (s *EventService) RemoveInterest(ctx context.Context, eventID primitive.ObjectID, user *models.User) (*models.Event, error) {
	if err := s.eventRepo.RemoveInterest(ctx, eventID, user.ID); err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	return s.Get(ctx, eventID)
}

// Attendees resolves the registrant set of an event to user records.
func (s *EventService) Attendees(ctx context.Context, eventID primitive.ObjectID) ([]models.User, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(event.RegisteredUsers) == 0 {
		return []models.User{}, nil
	}
	return s.userRepo.List(ctx, repository.UserFilter{IDs: event.RegisteredUsers})
}

func (s *EventService) discardImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		log.Printf("failed to delete image %s: %v", url, err)
	}
}

func applyEvent(e *models.Event, in EventInput) (bool, error) {
	changed := false
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
		changed = true
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
		changed = true
	}
	if in.Date != nil {
		e.Date = *in.Date
		changed = true
	}
	if in.Location != nil {
		e.Location = strings.TrimSpace(*in.Location)
		changed = true
	}
	if in.Capacity != nil {
		if *in.Capacity < 0 {
			return false, invalid("Capacity must be 0 (unlimited) or more")
		}
		e.Capacity = *in.Capacity
		changed = true
	}
	if in.Status != nil {
		status, ok := models.ParseEventStatus(*in.Status)
		if !ok {
			return false, invalid("Status must be one of [Upcoming Ongoing Completed Cancelled]")
		}
		e.Status = status
		changed = true
	}
	return changed, nil
}
