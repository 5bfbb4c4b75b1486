package services

import (
	"context"
	"fmt"

	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
)

// AdminService computes the dashboard figures.
type AdminService struct {
	users         repository.UserRepository
	events        repository.EventRepository
	announcements repository.AnnouncementRepository
	donations     repository.DonationRepository
}

func NewAdminService(users repository.UserRepository, events repository.EventRepository, announcements repository.AnnouncementRepository, donations repository.DonationRepository) *AdminService {
	return &AdminService{
		users:         users,
		events:        events,
		announcements: announcements,
		donations:     donations,
	}
}

type DashboardStats struct {
	TotalUsers         int64                        `json:"totalUsers"`
	PendingUsers       int64                        `json:"pendingUsers"`
	TotalEvents        int64                        `json:"totalEvents"`
	TotalAnnouncements int64                        `json:"totalAnnouncements"`
	TotalDonations     int64                        `json:"totalDonations"`
	DonationsByMethod  []models.DonationMethodStats `json:"donationsByMethod"`
}

func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)

	if stats.TotalUsers, err = s.users.Count(ctx, repository.UserFilter{}); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	pending := false
	if stats.PendingUsers, err = s.users.Count(ctx, repository.UserFilter{IsApproved: &pending}); err != nil {
		return nil, fmt.Errorf("failed to count pending users: %w", err)
	}
	if stats.TotalEvents, err = s.events.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	if stats.TotalAnnouncements, err = s.announcements.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count announcements: %w", err)
	}
	if stats.TotalDonations, err = s.donations.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count donations: %w", err)
	}
	if stats.DonationsByMethod, err = s.donations.StatsByMethod(ctx); err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}

	return &stats, nil
}
