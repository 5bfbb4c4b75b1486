package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/config"
	apierrors "github.com/phillip/youth-portal/errors"
	"github.com/phillip/youth-portal/middleware"
	"github.com/phillip/youth-portal/models"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}

// parseDate accepts RFC3339 and the plain date forms the admin UI sends.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", raw)
}

// optionalDate parses a non-empty pointer; nil or blank yields nil.
func optionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryDate reads an optional date query parameter.
func queryDate(c *gin.Context, key string) (*time.Time, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	return optionalDate(&raw)
}

// queryBool reads an optional boolean query parameter.
func queryBool(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", key)
	}
	return &b, nil
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return n
}

// pathID parses the :id parameter. Malformed ids cannot name a document, so they
// are answered with 404 like any other miss.
func pathID(c *gin.Context, resource string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, apierrors.NotFound(fmt.Sprintf("No %s found with that ID", resource)))
		return primitive.NilObjectID, false
	}
	return id, true
}

// currentUser returns the user stored by middleware.Protect.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, apierrors.Unauthorized(""))
		return nil, false
	}
	return user, true
}

// requestContext bounds one handler's persistence calls by REQUEST_TIMEOUT.
func requestContext(c *gin.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
}

// formFile returns the named upload, nil when the request has none.
func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err == nil {
		return fh, nil
	}
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	return nil, err
}
