package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/phillip/youth-portal/errors"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/services"
)

// ContextKeyUser is where Protect stores the authenticated *models.User.
const ContextKeyUser = "user"

// Authenticator resolves a bearer token to a live user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Protect requires "Authorization: Bearer <token>" and loads the user it names.
func Protect(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Respond(c, apierrors.Unauthorized(""))
			return
		}

		user, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				apierrors.Respond(c, apierrors.Unauthorized("Invalid or expired token. Please log in again"))
			case errors.Is(err, services.ErrUserGone):
				apierrors.Respond(c, apierrors.Unauthorized("The user belonging to this token no longer exists"))
			default:
				apierrors.Respond(c, apierrors.Server("", err))
			}
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RestrictTo lets through only users whose role is in roles, compared case-insensitively.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Respond(c, apierrors.Unauthorized(""))
			return
		}

		for _, role := range roles {
			if strings.EqualFold(string(user.Role), role) {
				c.Next()
				return
			}
		}
		apierrors.Respond(c, apierrors.Forbidden(""))
	}
}

// RequireApproval lets through approved users and admins.
func RequireApproval() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Respond(c, apierrors.Unauthorized(""))
			return
		}
		if !user.CanParticipate() {
			apierrors.Respond(c, apierrors.Forbidden("Your account is pending approval"))
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the user stored by Protect.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
