package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondTo(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/things", nil)

	Respond(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_Taxonomy(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{Validation("bad input"), http.StatusBadRequest, "fail"},
		{Unauthorized(""), http.StatusUnauthorized, "fail"},
		{Forbidden(""), http.StatusForbidden, "fail"},
		{NotFound("No event found with that ID"), http.StatusNotFound, "fail"},
		{Server("", stderrors.New("boom")), http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		w, body := respondTo(t, tc.err)
		assert.Equal(t, tc.status, w.Code)
		assert.Equal(t, tc.kind, body["status"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestRespond_WrappedAndUnknownErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading event: %w", NotFound("No event found with that ID"))
	w, body := respondTo(t, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No event found with that ID", body["message"])

	w, body = respondTo(t, stderrors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Something went wrong", body["message"])
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindForbidden, KindOf(fmt.Errorf("x: %w", Forbidden(""))))
	assert.Equal(t, KindServer, KindOf(stderrors.New("plain")))
}
