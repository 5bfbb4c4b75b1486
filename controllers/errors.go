package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/phillip/youth-portal/errors"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/storage"
)

// respondError translates service and validation errors onto the API taxonomy.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		inputErr      *services.InputError
		apiErr        *apierrors.APIError
	)

	switch {
	case errors.As(err, &apiErr):
		apierrors.Respond(c, apiErr)

	// ---- 400 ----
	case errors.As(err, &validationErr):
		apierrors.Respond(c, apierrors.Validation(validationErr.Error()))
	case errors.As(err, &inputErr):
		apierrors.Respond(c, apierrors.Validation(inputErr.Msg))
	case errors.Is(err, storage.ErrInvalidImage):
		apierrors.Respond(c, apierrors.Validation(err.Error()))
	case errors.Is(err, services.ErrDuplicateUser):
		apierrors.Respond(c, apierrors.Validation("Email or username already in use"))
	case errors.Is(err, services.ErrAlreadyRegistered):
		apierrors.Respond(c, apierrors.Validation("You are already registered for this event"))
	case errors.Is(err, services.ErrEventFull):
		apierrors.Respond(c, apierrors.Validation("This event has reached its capacity"))
	case errors.Is(err, services.ErrNotRegistered):
		apierrors.Respond(c, apierrors.Validation("You are not registered for this event"))
	case errors.Is(err, services.ErrRegistrationClosed):
		apierrors.Respond(c, apierrors.Validation("This event is not open for registration"))
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		apierrors.Respond(c, apierrors.Validation("No fields to update"))

	// ---- 401 ----
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Respond(c, apierrors.Unauthorized("Invalid username or password"))
	case errors.Is(err, services.ErrWrongPassword):
		apierrors.Respond(c, apierrors.Unauthorized("Your current password is wrong"))
	case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrUserGone):
		apierrors.Respond(c, apierrors.Unauthorized(""))

	// ---- 404 ----
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.Respond(c, apierrors.NotFound("No user found with that ID"))
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.Respond(c, apierrors.NotFound("No event found with that ID"))
	case errors.Is(err, services.ErrAnnouncementNotFound):
		apierrors.Respond(c, apierrors.NotFound("No announcement found with that ID"))
	case errors.Is(err, services.ErrDonationNotFound):
		apierrors.Respond(c, apierrors.NotFound("No donation found with that ID"))

	// ---- 500 ----
	case errors.Is(err, services.ErrRegistrationTimeout):
		apierrors.Respond(c, apierrors.Server("Registration timed out, please try again", err))
	default:
		apierrors.Respond(c, apierrors.Server("", err))
	}
}

func badRequest(c *gin.Context, message string) {
	apierrors.Respond(c, apierrors.Validation(message))
}
