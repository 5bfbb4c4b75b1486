package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateETagChangesWithUpdate(t *testing.T) {
	id := primitive.NewObjectID()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, GenerateETag(id, t0), GenerateETag(id, t0))
	assert.NotEqual(t, GenerateETag(id, t0), GenerateETag(id, t0.Add(time.Second)))
}

func TestNotModified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := primitive.NewObjectID()
	updated := time.Now()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.False(t, NotModified(c, id, updated))
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("If-None-Match", etag)
	assert.True(t, NotModified(c, id, updated))
}

func TestZeptoMailerSendEmail(t *testing.T) {
	var got emailRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewZeptoMailer(srv.URL, "Zoho-enczapikey k", "noreply@youth.org", "Youth Portal")
	err := m.SendEmail(context.Background(), Message{
		To:       []Recipient{{Address: "a@x.com", Name: "Alice"}, {Address: "b@x.com"}},
		ReplyTo:  &Recipient{Address: "guest@x.com"},
		Subject:  "Welcome",
		HTMLBody: "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Zoho-enczapikey k", auth)
	assert.Equal(t, "noreply@youth.org", got.From.Address)
	require.Len(t, got.To, 2)
	assert.Equal(t, "Alice", got.To[0].Email.Name)
	require.Len(t, got.ReplyTo, 1)
	assert.Equal(t, "guest@x.com", got.ReplyTo[0].Address)
}

func TestZeptoMailerErrors(t *testing.T) {
	err := NewZeptoMailer("", "", "", "").SendEmail(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrEmailNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err = NewZeptoMailer(srv.URL, "k", "noreply@youth.org", "").SendEmail(context.Background(), Message{
		To: []Recipient{{Address: "a@x.com"}},
	})
	assert.Error(t, err)
}
