package controllers_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/auth"
	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/repository/memory"
	"github.com/phillip/youth-portal/routes"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/storage"
	"github.com/phillip/youth-portal/utils"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []utils.Message
}

func (m *recordingMailer) SendEmail(ctx context.Context, msg utils.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

type envelope struct {
	Status      string                     `json:"status"`
	Message     string                     `json:"message"`
	Results     int                        `json:"results"`
	Total       int64                      `json:"total"`
	Pages       int                        `json:"pages"`
	CurrentPage int                        `json:"currentPage"`
	Data        map[string]json.RawMessage `json:"data"`
}

type APISuite struct {
	suite.Suite
	router     *gin.Engine
	store      *memory.Store
	mailer     *recordingMailer
	adminToken string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		RequestTimeout:      5 * time.Second,
		RegistrationTimeout: 5 * time.Second,
		ContactInbox:        "office@example.org",
	}

	s.store = memory.NewStore()
	s.mailer = &recordingMailer{}
	images := storage.NewLocalStore(s.T().TempDir())
	users := s.store.Users()

	emailSvc := services.NewEmailService(s.mailer, users, cfg.ContactInbox)
	svc := &routes.Services{
		Auth:          services.NewAuthService(users, auth.NewTokenManager("test-secret", time.Hour)),
		Users:         services.NewUserService(users, emailSvc),
		Events:        services.NewEventService(s.store.Events(), users, images, cfg.RegistrationTimeout),
		Announcements: services.NewAnnouncementService(s.store.Announcements(), images),
		Donations:     services.NewDonationService(s.store.Donations()),
		Admin:         services.NewAdminService(users, s.store.Events(), s.store.Announcements(), s.store.Donations()),
		Email:         emailSvc,
	}

	s.router = gin.New()
	routes.SetupRoutes(s.router, cfg, svc)

	s.seedAdmin()
	s.adminToken = s.login("admin", "adminpassword")
}

func (s *APISuite) seedAdmin() {
	hash, err := auth.HashPassword("adminpassword")
	s.Require().NoError(err)
	now := time.Now()
	s.Require().NoError(s.store.Users().Create(context.Background(), &models.User{
		ID:               primitive.NewObjectID(),
		Username:         "admin",
		Email:            "admin@example.org",
		PasswordHash:     hash,
		Name:             "Admin",
		Role:             models.RoleAdmin,
		IsApproved:       true,
		RegisteredEvents: []primitive.ObjectID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}))
}

// ---- helpers ----

func (s *APISuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) upload(method, path, token string, fields map[string]string, fileField, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		s.Require().NoError(err)
		_, err = fw.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func (s *APISuite) field(env envelope, key string, dst interface{}) {
	raw, ok := env.Data[key]
	s.Require().True(ok, "missing data.%s", key)
	s.Require().NoError(json.Unmarshal(raw, dst))
}

func (s *APISuite) login(username, password string) string {
	w := s.do(http.MethodPost, "/api/users/login", "", gin.H{"username": username, "password": password})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var token string
	s.field(s.decode(w), "token", &token)
	return token
}

// register signs up a member and returns its token and id.
func (s *APISuite) register(username string) (string, string) {
	w := s.do(http.MethodPost, "/api/users/register", "", gin.H{
		"username": username,
		"email":    username + "@example.org",
		"password": "longenough",
		"name":     strings.ToUpper(username[:1]) + username[1:],
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	env := s.decode(w)
	var token string
	var user models.User
	s.field(env, "token", &token)
	s.field(env, "user", &user)
	return token, user.ID.Hex()
}

func (s *APISuite) approve(id string) {
	w := s.do(http.MethodPatch, "/api/users/"+id+"/approve", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

// conditionalGet repeats a GET with If-None-Match set to etag.
func (s *APISuite) conditionalGet(path, token, etag string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("If-None-Match", etag)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) createEvent(capacity int) string {
	w := s.do(http.MethodPost, "/api/events", s.adminToken, gin.H{
		"title":       "Coastal Cleanup",
		"description": "Bring gloves",
		"date":        "2030-03-01",
		"location":    "Pier 4",
		"capacity":    capacity,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var event models.Event
	s.field(s.decode(w), "event", &event)
	return event.ID.Hex()
}

// ---- users ----

func (s *APISuite) TestRegisterThenLoginBeforeApproval() {
	w := s.do(http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "a@x.com",
		"password": "longenough",
		"name":     "Alice",
		"age":      20,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(s.T(), w.Body.String(), "password")

	env := s.decode(w)
	assert.Equal(s.T(), "success", env.Status)
	var token string
	var user models.User
	s.field(env, "token", &token)
	s.field(env, "user", &user)
	assert.NotEmpty(s.T(), token)
	assert.False(s.T(), user.IsApproved)
	assert.Equal(s.T(), models.RoleMember, user.Role)

	w = s.do(http.MethodPost, "/api/users/login", "", gin.H{"username": "alice", "password": "longenough"})
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *APISuite) TestRegisterDuplicateIsRejected() {
	s.register("alice")

	w := s.do(http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "other@example.org",
		"password": "longenough",
		"name":     "Alice Two",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "fail", s.decode(w).Status)

	n, err := s.store.Users().Count(context.Background(), repository.UserFilter{})
	s.Require().NoError(err)
	assert.EqualValues(s.T(), 2, n)
}

func (s *APISuite) TestLoginFailureIsGeneric() {
	s.register("alice")

	wrong := s.do(http.MethodPost, "/api/users/login", "", gin.H{"username": "alice", "password": "incorrect"})
	missing := s.do(http.MethodPost, "/api/users/login", "", gin.H{"username": "nobody", "password": "incorrect"})

	assert.Equal(s.T(), http.StatusUnauthorized, wrong.Code)
	assert.Equal(s.T(), http.StatusUnauthorized, missing.Code)
	assert.Equal(s.T(), s.decode(wrong).Message, s.decode(missing).Message)
}

func (s *APISuite) TestMeRequiresToken() {
	assert.Equal(s.T(), http.StatusUnauthorized, s.do(http.MethodGet, "/api/users/me", "", nil).Code)
	assert.Equal(s.T(), http.StatusUnauthorized, s.do(http.MethodGet, "/api/users/me", "garbage", nil).Code)

	token, _ := s.register("alice")
	w := s.do(http.MethodGet, "/api/users/me", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.NotEmpty(s.T(), w.Header().Get("ETag"))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("If-None-Match", w.Header().Get("ETag"))
	cached := httptest.NewRecorder()
	s.router.ServeHTTP(cached, req)
	assert.Equal(s.T(), http.StatusNotModified, cached.Code)
}

func (s *APISuite) TestUpdateMeIgnoresRole() {
	token, _ := s.register("alice")

	w := s.do(http.MethodPatch, "/api/users/me", token, gin.H{"committee": "Outreach", "role": "Admin", "isApproved": true})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var user models.User
	s.field(s.decode(w), "user", &user)
	assert.Equal(s.T(), "Outreach", user.Committee)
	assert.Equal(s.T(), models.RoleMember, user.Role)
	assert.False(s.T(), user.IsApproved)
}

func (s *APISuite) TestUpdatePasswordIssuesNewToken() {
	token, _ := s.register("alice")

	w := s.do(http.MethodPatch, "/api/users/me/password", token, gin.H{"currentPassword": "wrongpass", "newPassword": "evenlonger"})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPatch, "/api/users/me/password", token, gin.H{"currentPassword": "longenough", "newPassword": "evenlonger"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.login("alice", "evenlonger")
}

func (s *APISuite) TestAdminUserRoutesAreGated() {
	token, id := s.register("alice")

	assert.Equal(s.T(), http.StatusForbidden, s.do(http.MethodGet, "/api/users", token, nil).Code)

	w := s.do(http.MethodGet, "/api/users?isApproved=false", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), 1, s.decode(w).Results)

	s.approve(id)
	s.mailer.mu.Lock()
	assert.Len(s.T(), s.mailer.sent, 1)
	s.mailer.mu.Unlock()

	w = s.do(http.MethodPatch, "/api/users/"+id, s.adminToken, gin.H{"role": "admin"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var user models.User
	s.field(s.decode(w), "user", &user)
	assert.Equal(s.T(), models.RoleAdmin, user.Role)
}

func (s *APISuite) TestDeleteUserThenTokenIsRejected() {
	token, id := s.register("alice")

	w := s.do(http.MethodDelete, "/api/users/"+id, s.adminToken, nil)
	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	assert.Empty(s.T(), w.Body.String())

	assert.Equal(s.T(), http.StatusNotFound, s.do(http.MethodGet, "/api/users/"+id, s.adminToken, nil).Code)
	assert.Equal(s.T(), http.StatusUnauthorized, s.do(http.MethodGet, "/api/users/me", token, nil).Code)
}

func (s *APISuite) TestMalformedIDIsNotFound() {
	for _, path := range []string{"/api/users/nope", "/api/events/nope", "/api/announcements/nope", "/api/donations/nope"} {
		w := s.do(http.MethodGet, path, s.adminToken, nil)
		assert.Equal(s.T(), http.StatusNotFound, w.Code, path)
		assert.Equal(s.T(), "fail", s.decode(w).Status, path)
	}
}

// ---- events ----

func (s *APISuite) TestParticipationGateOrder() {
	eventID := s.createEvent(0)
	path := "/api/events/" + eventID + "/register"

	assert.Equal(s.T(), http.StatusUnauthorized, s.do(http.MethodPost, path, "", nil).Code)

	token, id := s.register("alice")
	w := s.do(http.MethodPost, path, token, nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Equal(s.T(), "Your account is pending approval", s.decode(w).Message)

	event, err := s.store.Events().FindByID(context.Background(), mustID(s.T(), eventID))
	s.Require().NoError(err)
	assert.Empty(s.T(), event.RegisteredUsers)

	s.approve(id)
	assert.Equal(s.T(), http.StatusOK, s.do(http.MethodPost, path, token, nil).Code)
}

func (s *APISuite) TestMembersCannotManageEvents() {
	token, id := s.register("alice")
	s.approve(id)

	w := s.do(http.MethodPost, "/api/events", token, gin.H{"title": "Mine"})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func (s *APISuite) TestRegistrationCapacityAndDuplicates() {
	eventID := s.createEvent(1)
	path := "/api/events/" + eventID + "/register"

	alice, aliceID := s.register("alice")
	bob, bobID := s.register("bob")
	s.approve(aliceID)
	s.approve(bobID)

	w := s.do(http.MethodPost, path, alice, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, path, alice, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "You are already registered for this event", s.decode(w).Message)

	w = s.do(http.MethodPost, path, bob, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "This event has reached its capacity", s.decode(w).Message)

	event, err := s.store.Events().FindByID(context.Background(), mustID(s.T(), eventID))
	s.Require().NoError(err)
	assert.Len(s.T(), event.RegisteredUsers, 1)

	w = s.do(http.MethodGet, "/api/events/"+eventID+"/attendees", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), 1, s.decode(w).Results)

	assert.Equal(s.T(), http.StatusOK, s.do(http.MethodDelete, path, alice, nil).Code)
	assert.Equal(s.T(), http.StatusBadRequest, s.do(http.MethodDelete, path, alice, nil).Code)
	assert.Equal(s.T(), http.StatusOK, s.do(http.MethodPost, path, bob, nil).Code)
}

func (s *APISuite) TestInterestIsIdempotent() {
	eventID := s.createEvent(0)
	token, id := s.register("alice")
	s.approve(id)

	path := "/api/events/" + eventID + "/interest"
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, path, token, nil).Code)
	w := s.do(http.MethodPost, path, token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var event models.Event
	s.field(s.decode(w), "event", &event)
	assert.Len(s.T(), event.InterestedUsers, 1)

	w = s.do(http.MethodDelete, path, token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.field(s.decode(w), "event", &event)
	assert.Empty(s.T(), event.InterestedUsers)
}

func (s *APISuite) TestRSVPChangesInvalidateETags() {
	eventID := s.createEvent(0)
	token, id := s.register("alice")
	s.approve(id)
	eventPath := "/api/events/" + eventID

	w := s.do(http.MethodGet, eventPath, token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	eventTag := w.Header().Get("ETag")
	s.Require().NotEmpty(eventTag)
	s.Require().Equal(http.StatusNotModified, s.conditionalGet(eventPath, token, eventTag).Code)

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, eventPath+"/interest", token, nil).Code)
	w = s.conditionalGet(eventPath, token, eventTag)
	assert.Equal(s.T(), http.StatusOK, w.Code, "interest must change the event ETag")
	eventTag = w.Header().Get("ETag")

	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, eventPath+"/interest", token, nil).Code)
	assert.Equal(s.T(), http.StatusOK, s.conditionalGet(eventPath, token, eventTag).Code)

	w = s.do(http.MethodGet, "/api/users/me", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	meTag := w.Header().Get("ETag")

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, eventPath+"/register", token, nil).Code)
	w = s.conditionalGet("/api/users/me", token, meTag)
	s.Require().Equal(http.StatusOK, w.Code, "registration must change the member ETag")
	var me models.User
	s.field(s.decode(w), "user", &me)
	assert.Len(s.T(), me.RegisteredEvents, 1)
	meTag = w.Header().Get("ETag")

	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, eventPath+"/register", token, nil).Code)
	assert.Equal(s.T(), http.StatusOK, s.conditionalGet("/api/users/me", token, meTag).Code)
}

func (s *APISuite) TestEventListAndDelete() {
	eventID := s.createEvent(0)

	w := s.do(http.MethodGet, "/api/events?status=upcoming&q=cleanup", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	env := s.decode(w)
	assert.Equal(s.T(), 1, env.Results)
	_, ok := env.Data["events"]
	assert.True(s.T(), ok)

	assert.Equal(s.T(), http.StatusBadRequest, s.do(http.MethodGet, "/api/events?status=someday", s.adminToken, nil).Code)

	w = s.do(http.MethodDelete, "/api/events/"+eventID, s.adminToken, nil)
	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	assert.Equal(s.T(), http.StatusNotFound, s.do(http.MethodGet, "/api/events/"+eventID, s.adminToken, nil).Code)
}

func (s *APISuite) TestEventUpdateRequiresFields() {
	eventID := s.createEvent(0)

	w := s.do(http.MethodPatch, "/api/events/"+eventID, s.adminToken, gin.H{})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/api/events/"+eventID, s.adminToken, gin.H{"status": "Cancelled"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	token, id := s.register("alice")
	s.approve(id)
	w = s.do(http.MethodPost, "/api/events/"+eventID+"/register", token, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// ---- announcements ----

func (s *APISuite) TestAnnouncementWithImage() {
	w := s.upload(http.MethodPost, "/api/announcements", s.adminToken,
		map[string]string{"title": "Assembly", "content": "Friday at six", "priority": "high"},
		"image", "poster.png", []byte("\x89PNG fake"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var a models.Announcement
	s.field(s.decode(w), "announcement", &a)
	assert.Equal(s.T(), models.PriorityHigh, a.Priority)
	assert.True(s.T(), strings.HasPrefix(a.Image, storage.URLPrefix+"announcements/"))

	w = s.upload(http.MethodPost, "/api/announcements", s.adminToken,
		map[string]string{"title": "Bad", "content": "Wrong file"},
		"image", "notes.txt", []byte("text"))
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	assert.Equal(s.T(), http.StatusNoContent, s.do(http.MethodDelete, "/api/announcements/"+a.ID.Hex(), s.adminToken, nil).Code)
}

func (s *APISuite) TestExpiredAnnouncementsAreHidden() {
	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/announcements", s.adminToken,
		gin.H{"title": "Old", "content": "Gone", "expiresAt": past}).Code)
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/announcements", s.adminToken,
		gin.H{"title": "Current", "content": "Here"}).Code)

	token, _ := s.register("alice")
	w := s.do(http.MethodGet, "/api/announcements", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), 1, s.decode(w).Results)

	w = s.do(http.MethodGet, "/api/announcements?active=false", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), 2, s.decode(w).Results)
}

// ---- donations ----

func (s *APISuite) TestDonationPaginationEnvelope() {
	for i := 0; i < 12; i++ {
		w := s.do(http.MethodPost, "/api/donations", s.adminToken, gin.H{"donorName": "Donor", "amount": 10, "method": "gcash"})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(http.MethodGet, "/api/donations?page=2&limit=5", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	env := s.decode(w)
	assert.Equal(s.T(), 5, env.Results)
	assert.EqualValues(s.T(), 12, env.Total)
	assert.Equal(s.T(), 3, env.Pages)
	assert.Equal(s.T(), 2, env.CurrentPage)

	token, _ := s.register("alice")
	assert.Equal(s.T(), http.StatusForbidden, s.do(http.MethodGet, "/api/donations", token, nil).Code)
}

func (s *APISuite) TestDonationCSVExportThenImport() {
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/donations", s.adminToken,
		gin.H{"donorName": "Maria", "amount": 250.5, "method": "Cash", "date": "2024-05-01"}).Code)

	w := s.do(http.MethodGet, "/api/donations/export", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.True(s.T(), strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(s.T(), w.Header().Get("Content-Disposition"), "attachment; filename=donations-")

	rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	assert.Equal(s.T(), "Maria", rows[1][0])

	w = s.upload(http.MethodPost, "/api/donations/import", s.adminToken, nil, "file", "donations.csv", w.Body.Bytes())
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var imported int
	s.field(s.decode(w), "imported", &imported)
	assert.Equal(s.T(), 1, imported)

	w = s.upload(http.MethodPost, "/api/donations/import", s.adminToken, nil, "file", "bad.csv",
		[]byte("Donor Name,Amount,Method\nAna,abc,Cash\n"))
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Contains(s.T(), s.decode(w).Message, "row")

	n, err := s.store.Donations().Count(context.Background())
	s.Require().NoError(err)
	assert.EqualValues(s.T(), 2, n)
}

// ---- admin + email ----

func (s *APISuite) TestDashboardStats() {
	s.register("alice")
	s.createEvent(0)
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/donations", s.adminToken,
		gin.H{"donorName": "Maria", "amount": 100, "method": "Cash"}).Code)

	w := s.do(http.MethodGet, "/api/admin/stats", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var stats services.DashboardStats
	s.field(s.decode(w), "stats", &stats)
	assert.EqualValues(s.T(), 2, stats.TotalUsers)
	assert.EqualValues(s.T(), 1, stats.PendingUsers)
	assert.EqualValues(s.T(), 1, stats.TotalEvents)
	assert.EqualValues(s.T(), 1, stats.TotalDonations)
	s.Require().Len(stats.DonationsByMethod, 1)
	assert.Equal(s.T(), 100.0, stats.DonationsByMethod[0].Total)
}

func (s *APISuite) TestContactFormIsPublic() {
	w := s.do(http.MethodPost, "/api/email/contact", "", gin.H{"name": "Visitor", "email": "not-an-email", "message": "hi"})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/email/contact", "", gin.H{"name": "Visitor", "email": "v@example.org", "message": "Hello"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	s.mailer.mu.Lock()
	defer s.mailer.mu.Unlock()
	s.Require().Len(s.mailer.sent, 1)
	assert.Equal(s.T(), "office@example.org", s.mailer.sent[0].To[0].Address)
}

func (s *APISuite) TestBroadcastToApprovedMembers() {
	_, aliceID := s.register("alice")
	s.register("bob")
	s.approve(aliceID)
	s.mailer.sent = nil

	w := s.do(http.MethodPost, "/api/email/send", s.adminToken, gin.H{"subject": "Meeting", "message": "Sunday"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var n int
	s.field(s.decode(w), "recipients", &n)
	assert.Equal(s.T(), 2, n, "admin and alice are approved, bob is pending")

	s.Require().Len(s.mailer.sent, 2)
	for _, msg := range s.mailer.sent {
		assert.Len(s.T(), msg.To, 1)
	}
}

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
