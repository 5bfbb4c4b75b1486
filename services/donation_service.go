package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/donationcsv"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
)

// DonationService handles the treasurer's ledger.
type DonationService struct {
	repo repository.DonationRepository
	now  func() time.Time
}

func NewDonationService(repo repository.DonationRepository) *DonationService {
	return &DonationService{
		repo: repo,
		now:  time.Now,
	}
}

// DonationInput is a create body or a partial patch.
type DonationInput struct {
	DonorName       *string
	Amount          *float64
	Method          *string
	Status          *string
	Date            *time.Time
	ReferenceNumber *string
	Notes           *string
}

// DonationPage is one page of a filtered donation listing.
type DonationPage struct {
	Donations   []models.Donation
	Total       int64
	Pages       int
	CurrentPage int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (s *DonationService) List(ctx context.Context, filter repository.DonationFilter, page, limit int) (*DonationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	donations, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	return &DonationPage{
		Donations:   donations,
		Total:       total,
		Pages:       int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *DonationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrDonationNotFound)
	}
	return d, nil
}

func (s *DonationService) Create(ctx context.Context, createdBy primitive.ObjectID, input DonationInput) (*models.Donation, error) {
	now := s.now()
	d := &models.Donation{
		ID:        primitive.NewObjectID(),
		Status:    models.DonationCompleted,
		Date:      now,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := applyDonation(d, input); err != nil {
		return nil, err
	}
	if err := models.Validate(d); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	return d, nil
}

func (s *DonationService) Update(ctx context.Context, id primitive.ObjectID, input DonationInput) (*models.Donation, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrDonationNotFound)
	}

	changed, err := applyDonation(d, input)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrNoFieldsToUpdate
	}
	if err := models.Validate(d); err != nil {
		return nil, err
	}

	d.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, notFound(err, ErrDonationNotFound)
	}
	return d, nil
}

func (s *DonationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrDonationNotFound)
	}
	return nil
}

// ImportCSV parses the sheet and inserts every row, or none if any row is invalid.
func (s *DonationService) ImportCSV(ctx context.Context, createdBy primitive.ObjectID, r io.Reader) (int, error) {
	now := s.now()
	donations, err := donationcsv.Read(r, now)
	if err != nil {
		var rowErr *donationcsv.RowError
		if errors.As(err, &rowErr) || errors.Is(err, donationcsv.ErrMissingColumn) {
			return 0, invalid("Invalid CSV: %s", err.Error())
		}
		return 0, invalid("Could not read CSV file")
	}
	if len(donations) == 0 {
		return 0, invalid("CSV file contains no donations")
	}

	for i := range donations {
		donations[i].CreatedBy = createdBy
		donations[i].CreatedAt = now
		donations[i].UpdatedAt = now
	}

	if err := s.repo.InsertMany(ctx, donations); err != nil {
		return 0, fmt.Errorf("failed to import donations: %w", err)
	}
	return len(donations), nil
}

// ExportCSV writes every donation matching filter to w.
func (s *DonationService) ExportCSV(ctx context.Context, filter repository.DonationFilter, w io.Writer) error {
	donations, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load donations: %w", err)
	}
	return donationcsv.Write(w, donations)
}

// Summary aggregates completed donations by method.
func (s *DonationService) Summary(ctx context.Context) ([]models.DonationMethodStats, error) {
	stats, err := s.repo.StatsByMethod(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}
	return stats, nil
}

func applyDonation(d *models.Donation, in DonationInput) (bool, error) {
	changed := false
	if in.DonorName != nil {
		d.DonorName = strings.TrimSpace(*in.DonorName)
		changed = true
	}
	if in.Amount != nil {
		if *in.Amount < 0 {
			return false, invalid("Amount must not be negative")
		}
		d.Amount = *in.Amount
		changed = true
	}
	if in.Method != nil {
		m, ok := models.ParseDonationMethod(*in.Method)
		if !ok {
			return false, invalid("Method must be one of [Cash G-Cash]")
		}
		d.Method = m
		changed = true
	}
	if in.Status != nil {
		st, ok := models.ParseDonationStatus(*in.Status)
		if !ok {
			return false, invalid("Status must be one of [Completed Refunded]")
		}
		d.Status = st
		changed = true
	}
	if in.Date != nil {
		d.Date = *in.Date
		changed = true
	}
	if in.ReferenceNumber != nil {
		d.ReferenceNumber = strings.TrimSpace(*in.ReferenceNumber)
		changed = true
	}
	if in.Notes != nil {
		d.Notes = strings.TrimSpace(*in.Notes)
		changed = true
	}
	return changed, nil
}
