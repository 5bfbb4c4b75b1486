// Package memory holds in-process repositories with the same observable
// semantics as the Mongo ones. Service and handler tests run against them.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
)

// Store backs all four repositories so that cross-aggregate writes
// (registration, user deletion) see one consistent state.
type Store struct {
	mu            sync.Mutex
	users         map[primitive.ObjectID]models.User
	events        map[primitive.ObjectID]models.Event
	announcements map[primitive.ObjectID]models.Announcement
	donations     map[primitive.ObjectID]models.Donation
}

func NewStore() *Store {
	return &Store{
		users:         map[primitive.ObjectID]models.User{},
		events:        map[primitive.ObjectID]models.Event{},
		announcements: map[primitive.ObjectID]models.Announcement{},
		donations:     map[primitive.ObjectID]models.Donation{},
	}
}

func (s *Store) Users() repository.UserRepository                 { return &userRepo{s} }
func (s *Store) Events() repository.EventRepository               { return &eventRepo{s} }
func (s *Store) Announcements() repository.AnnouncementRepository { return &announcementRepo{s} }
func (s *Store) Donations() repository.DonationRepository         { return &donationRepo{s} }

func cloneIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return nil
	}
	return append([]primitive.ObjectID{}, ids...)
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) ([]primitive.ObjectID, bool) {
	out := make([]primitive.ObjectID, 0, len(ids))
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	return out, found
}

func hasID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

// ---- users ----

type userRepo struct{ s *Store }

func cloneUser(u models.User) *models.User {
	u.RegisteredEvents = cloneIDs(u.RegisteredEvents)
	return &u
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.s.users[user.ID] = *cloneUser(*user)
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *userRepo) matches(u models.User, f repository.UserFilter) bool {
	if f.IDs != nil && !hasID(f.IDs, u.ID) {
		return false
	}
	if f.Role != nil && u.Role != *f.Role {
		return false
	}
	if f.IsApproved != nil && u.IsApproved != *f.IsApproved {
		return false
	}
	if f.Committee != "" && u.Committee != f.Committee {
		return false
	}
	if f.Query != "" && !containsFold(u.Name, f.Query) && !containsFold(u.Username, f.Query) && !containsFold(u.Email, f.Query) {
		return false
	}
	return true
}

func (r *userRepo) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := []models.User{}
	for _, u := range r.s.users {
		if r.matches(u, filter) {
			users = append(users, *cloneUser(u))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, u := range r.s.users {
		if id != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return repository.ErrDuplicate
		}
	}

	next := *cloneUser(*user)
	next.RegisteredEvents = current.RegisteredEvents
	next.CreatedAt = current.CreatedAt
	r.s.users[user.ID] = next
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)

	now := time.Now()
	for eid, e := range r.s.events {
		var registered, interested bool
		e.RegisteredUsers, registered = removeID(e.RegisteredUsers, id)
		e.InterestedUsers, interested = removeID(e.InterestedUsers, id)
		if registered || interested {
			e.UpdatedAt = now
		}
		r.s.events[eid] = e
	}
	return nil
}

func (r *userRepo) Count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	users, err := r.List(ctx, filter)
	return int64(len(users)), err
}

// ---- events ----

type eventRepo struct{ s *Store }

func cloneEvent(e models.Event) *models.Event {
	e.RegisteredUsers = cloneIDs(e.RegisteredUsers)
	e.InterestedUsers = cloneIDs(e.InterestedUsers)
	return &e
}

func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	r.s.events[event.ID] = *cloneEvent(*event)
	return nil
}

func (r *eventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneEvent(e), nil
}

func (r *eventRepo) List(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	events := []models.Event{}
	for _, e := range r.s.events {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if !inRange(e.Date, filter.From, filter.To) {
			continue
		}
		if filter.Query != "" && !containsFold(e.Title, filter.Query) && !containsFold(e.Location, filter.Query) {
			continue
		}
		events = append(events, *cloneEvent(e))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func (r *eventRepo) Update(ctx context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.events[event.ID]
	if !ok {
		return repository.ErrNotFound
	}
	next := *cloneEvent(*event)
	next.RegisteredUsers = current.RegisteredUsers
	next.InterestedUsers = current.InterestedUsers
	next.CreatedBy = current.CreatedBy
	next.CreatedAt = current.CreatedAt
	r.s.events[event.ID] = next
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.events, id)

	now := time.Now()
	for uid, u := range r.s.users {
		var found bool
		if u.RegisteredEvents, found = removeID(u.RegisteredEvents, id); found {
			u.UpdatedAt = now
		}
		r.s.users[uid] = u
	}
	return nil
}

func (r *eventRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.events)), nil
}

func (r *eventRepo) Register(ctx context.Context, eventID, userID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[eventID]
	if !ok || hasID(e.RegisteredUsers, userID) || e.IsFull() {
		return repository.ErrRegistrationRejected
	}
	u, ok := r.s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	e.RegisteredUsers = append(cloneIDs(e.RegisteredUsers), userID)
	e.UpdatedAt = now
	if !hasID(u.RegisteredEvents, eventID) {
		u.RegisteredEvents = append(cloneIDs(u.RegisteredEvents), eventID)
	}
	u.UpdatedAt = now
	r.s.events[eventID] = e
	r.s.users[userID] = u
	return nil
}

func (r *eventRepo) Unregister(ctx context.Context, eventID, userID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[eventID]
	if !ok {
		return repository.ErrNotRegistered
	}
	remaining, found := removeID(e.RegisteredUsers, userID)
	if !found {
		return repository.ErrNotRegistered
	}
	now := time.Now()
	e.RegisteredUsers = remaining
	e.UpdatedAt = now
	r.s.events[eventID] = e

	if u, ok := r.s.users[userID]; ok {
		u.RegisteredEvents, _ = removeID(u.RegisteredEvents, eventID)
		u.UpdatedAt = now
		r.s.users[userID] = u
	}
	return nil
}

func (r *eventRepo) AddInterest(ctx context.Context, eventID, userID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[eventID]
	if !ok {
		return repository.ErrNotFound
	}
	if !hasID(e.InterestedUsers, userID) {
		e.InterestedUsers = append(cloneIDs(e.InterestedUsers), userID)
	}
	e.UpdatedAt = time.Now()
	r.s.events[eventID] = e
	return nil
}

func (r *eventRepo) RemoveInterest(ctx context.Context, eventID, userID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[eventID]
	if !ok {
		return repository.ErrNotFound
	}
	e.InterestedUsers, _ = removeID(e.InterestedUsers, userID)
	e.UpdatedAt = time.Now()
	r.s.events[eventID] = e
	return nil
}

// ---- announcements ----

type announcementRepo struct{ s *Store }

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	r.s.announcements[a.ID] = *a
	return nil
}

func (r *announcementRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.announcements[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context, filter repository.AnnouncementFilter) ([]models.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := []models.Announcement{}
	for _, a := range r.s.announcements {
		if filter.Priority != nil && a.Priority != *filter.Priority {
			continue
		}
		if filter.ActiveAt != nil && !a.IsActive(*filter.ActiveAt) {
			continue
		}
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *announcementRepo) Update(ctx context.Context, a *models.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.announcements[a.ID]
	if !ok {
		return repository.ErrNotFound
	}
	next := *a
	next.CreatedBy = current.CreatedBy
	next.CreatedAt = current.CreatedAt
	r.s.announcements[a.ID] = next
	return nil
}

func (r *announcementRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.announcements[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.announcements, id)
	return nil
}

func (r *announcementRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.announcements)), nil
}

// ---- donations ----

type donationRepo struct{ s *Store }

func (r *donationRepo) Create(ctx context.Context, d *models.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	r.s.donations[d.ID] = *d
	return nil
}

func (r *donationRepo) InsertMany(ctx context.Context, donations []models.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range donations {
		if donations[i].ID.IsZero() {
			donations[i].ID = primitive.NewObjectID()
		}
		r.s.donations[donations[i].ID] = donations[i]
	}
	return nil
}

func (r *donationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.donations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *donationRepo) ListAll(ctx context.Context, f repository.DonationFilter) ([]models.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := []models.Donation{}
	for _, d := range r.s.donations {
		if f.Method != nil && d.Method != *f.Method {
			continue
		}
		if f.Status != nil && d.Status != *f.Status {
			continue
		}
		if f.Donor != "" && !containsFold(d.DonorName, f.Donor) {
			continue
		}
		if !inRange(d.Date, f.From, f.To) {
			continue
		}
		list = append(list, d)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (r *donationRepo) List(ctx context.Context, f repository.DonationFilter, page, limit int) ([]models.Donation, int64, error) {
	all, err := r.ListAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *donationRepo) Update(ctx context.Context, d *models.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.donations[d.ID]
	if !ok {
		return repository.ErrNotFound
	}
	next := *d
	next.CreatedBy = current.CreatedBy
	next.CreatedAt = current.CreatedAt
	r.s.donations[d.ID] = next
	return nil
}

func (r *donationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.donations[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.donations, id)
	return nil
}

func (r *donationRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.donations)), nil
}

func (r *donationRepo) StatsByMethod(ctx context.Context) ([]models.DonationMethodStats, error) {
	completed := models.DonationCompleted
	all, err := r.ListAll(ctx, repository.DonationFilter{Status: &completed})
	if err != nil {
		return nil, err
	}

	byMethod := map[models.DonationMethod]*models.DonationMethodStats{}
	for _, d := range all {
		st, ok := byMethod[d.Method]
		if !ok {
			st = &models.DonationMethodStats{Method: d.Method, Min: d.Amount, Max: d.Amount}
			byMethod[d.Method] = st
		}
		st.Total += d.Amount
		st.Count++
		if d.Amount < st.Min {
			st.Min = d.Amount
		}
		if d.Amount > st.Max {
			st.Max = d.Amount
		}
	}

	stats := []models.DonationMethodStats{}
	for _, st := range byMethod {
		st.Average = st.Total / float64(st.Count)
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Method < stats[j].Method })
	return stats, nil
}
