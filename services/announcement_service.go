package services

import (
	"context"
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

const announcementImageFolder = "announcements"

type AnnouncementService struct {
	repo   repository.AnnouncementRepository
	images storage.ImageStore
	now    func() time.Time
}

func NewAnnouncementService(repo repository.AnnouncementRepository, images storage.ImageStore) *AnnouncementService {
	return &AnnouncementService{
		repo:   repo,
		images: images,
		now:    time.Now,
	}
}

// AnnouncementInput is a create body or a partial patch. ClearExpiry removes an expiry.
type AnnouncementInput struct {
	Title       *string
	Content     *string
	Priority    *string
	ExpiresAt   *time.Time
	ClearExpiry bool
}

// List returns announcements newest first. activeOnly drops expired ones.
func (s *AnnouncementService) List(ctx context.Context, priority *models.Priority, activeOnly bool) ([]models.Announcement, error) {
	filter := repository.AnnouncementFilter{Priority: priority}
	if activeOnly {
		now := s.now()
		filter.ActiveAt = &now
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return list, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrAnnouncementNotFound)
	}
	return a, nil
}

func (s *AnnouncementService) Create(ctx context.Context, createdBy primitive.ObjectID, input AnnouncementInput, image *multipart.FileHeader) (*models.Announcement, error) {
	now := s.now()
	a := &models.Announcement{
		ID:        primitive.NewObjectID(),
		Priority:  models.PriorityNormal,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := applyAnnouncement(a, input); err != nil {
		return nil, err
	}
	if err := models.Validate(a); err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.images.Save(ctx, announcementImageFolder, image)
		if err != nil {
			return nil, err
		}
		a.Image = url
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.discardImage(ctx, a.Image)
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id primitive.ObjectID, input AnnouncementInput, image *multipart.FileHeader) (*models.Announcement, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrAnnouncementNotFound)
	}

	changed, err := applyAnnouncement(a, input)
	if err != nil {
		return nil, err
	}
	if !changed && image == nil {
		return nil, ErrNoFieldsToUpdate
	}
	if err := models.Validate(a); err != nil {
		return nil, err
	}

	oldImage := a.Image
	if image != nil {
		url, err := s.images.Save(ctx, announcementImageFolder, image)
		if err != nil {
			return nil, err
		}
		a.Image = url
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		if image != nil {
			s.discardImage(ctx, a.Image)
		}
		return nil, notFound(err, ErrAnnouncementNotFound)
	}

	if image != nil {
		s.discardImage(ctx, oldImage)
	}
	return a, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, ErrAnnouncementNotFound)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrAnnouncementNotFound)
	}
	s.discardImage(ctx, a.Image)
	return nil
}

func (s *AnnouncementService) discardImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		log.Printf("failed to delete image %s: %v", url, err)
	}
}

func applyAnnouncement(a *models.Announcement, in AnnouncementInput) (bool, error) {
	changed := false
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
		changed = true
	}
	if in.Content != nil {
		a.Content = strings.TrimSpace(*in.Content)
		changed = true
	}
	if in.Priority != nil {
		p, ok := models.ParsePriority(*in.Priority)
		if !ok {
			return false, invalid("Priority must be one of [Low Normal High Urgent]")
		}
		a.Priority = p
		changed = true
	}
	if in.ExpiresAt != nil {
		a.ExpiresAt = in.ExpiresAt
		changed = true
	} else if in.ClearExpiry {
		a.ExpiresAt = nil
		changed = true
	}
	return changed, nil
}
