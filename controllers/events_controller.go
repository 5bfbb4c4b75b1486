package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/utils"
)

// eventRequest binds from JSON or multipart form. Absent fields stay nil.
type eventRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Date        *string `json:"date" form:"date"`
	Location    *string `json:"location" form:"location"`
	Capacity    *int    `json:"capacity" form:"capacity"`
	Status      *string `json:"status" form:"status"`
}

func (r eventRequest) input() (services.EventInput, error) {
	date, err := optionalDate(r.Date)
	if err != nil {
		return services.EventInput{}, err
	}
	return services.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Status:      r.Status,
	}, nil
}

// bindEvent reads the body and the optional "image" upload.
func bindEvent(c *gin.Context) (services.EventInput, bool) {
	var req eventRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request body")
		return services.EventInput{}, false
	}
	input, err := req.input()
	if err != nil {
		badRequest(c, err.Error())
		return services.EventInput{}, false
	}
	return input, true
}

// ---------------- LIST ----------------

// ListEvents godoc
// @Summary      List events
// @Description  Events sorted by date. upcoming=true keeps events from now on.
// @Tags         events
// @Produce      json
// @Param        status    query string false "Upcoming, Ongoing, Completed or Cancelled"
// @Param        upcoming  query bool   false "Only events dated from now"
// @Param        from      query string false "Earliest date"
// @Param        to        query string false "Latest date"
// @Param        q         query string false "Search title or location"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events [get]
func ListEvents(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.EventFilter{Query: c.Query("q")}

		if raw := c.Query("status"); raw != "" {
			status, ok := models.ParseEventStatus(raw)
			if !ok {
				badRequest(c, "status must be one of [Upcoming Ongoing Completed Cancelled]")
				return
			}
			filter.Status = &status
		}

		var err error
		if filter.From, err = queryDate(c, "from"); err != nil {
			badRequest(c, err.Error())
			return
		}
		if filter.To, err = queryDate(c, "to"); err != nil {
			badRequest(c, err.Error())
			return
		}
		upcoming, err := queryBool(c, "upcoming")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		if upcoming != nil && *upcoming && filter.From == nil {
			now := time.Now()
			filter.From = &now
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		events, err := eventSvc.List(ctx, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.List(c, "events", events, len(events))
	}
}

// ---------------- GET ----------------

// GetEvent godoc
// @Summary      Get an event
// @Description  Honours If-None-Match with 304
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} map[string]interface{}
// @Success      304 "Not Modified"
// @Failure      401 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id} [get]
func GetEvent(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "event")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		event, err := eventSvc.Get(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if utils.NotModified(c, event.ID, event.UpdatedAt) {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"event": event})
	}
}

// ---------------- CREATE ----------------

// CreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData string true  "Title"
// @Param        description  formData string true  "Description"
// @Param        date         formData string true  "Date (RFC3339 or YYYY-MM-DD)"
// @Param        location     formData string true  "Location"
// @Param        capacity     formData int    false "Seats, 0 for unlimited"
// @Param        image        formData file   false "Cover image"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events [post]
func CreateEvent(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		input, ok := bindEvent(c)
		if !ok {
			return
		}
		image, err := formFile(c, "image")
		if err != nil {
			badRequest(c, "Invalid form data")
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		event, err := eventSvc.Create(ctx, user.ID, input, image)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, gin.H{"event": event})
	}
}

// ---------------- UPDATE ----------------

// UpdateEvent godoc
// @Summary      Update an event
// @Description  Only the fields sent are changed
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path     string true  "Event ID"
// @Param        title        formData string false "Title"
// @Param        description  formData string false "Description"
// @Param        date         formData string false "Date (RFC3339 or YYYY-MM-DD)"
// @Param        location     formData string false "Location"
// @Param        capacity     formData int    false "Seats, 0 for unlimited"
// @Param        status       formData string false "Upcoming, Ongoing, Completed or Cancelled"
// @Param        image        formData file   false "Replacement cover image"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id} [patch]
func UpdateEvent(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "event")
		if !ok {
			return
		}
		input, ok := bindEvent(c)
		if !ok {
			return
		}
		image, err := formFile(c, "image")
		if err != nil {
			badRequest(c, "Invalid form data")
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		event, err := eventSvc.Update(ctx, id, input, image)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"event": event})
	}
}

// ---------------- DELETE ----------------

// DeleteEvent godoc
// @Summary      Delete an event
// @Description  Also removes the event from every member
// @Tags         events
// @Param        id path string true "Event ID"
// @Success      204 "No Content"
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id} [delete]
func DeleteEvent(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "event")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		if err := eventSvc.Delete(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		utils.NoContent(c)
	}
}

// EventAttendees godoc
// @Summary      List attendees
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id}/attendees [get]
func EventAttendees(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "event")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		users, err := eventSvc.Attendees(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.List(c, "users", users, len(users))
	}
}

// ---------------- RSVP ----------------

// RegisterForEvent godoc
// @Summary      Register for an event
// @Description  Takes a seat for the caller. Rejected when already registered or the event is full.
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id}/register [post]
func RegisterForEvent(eventSvc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rsvp(c, eventSvc.Register)
	}
}

// UnregisterFromEvent godoc
// @Summary      Cancel a registration
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id}/register [delete]
func UnregisterFromEvent(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, cfg)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		rsvp(c, eventSvc.Unregister)
	}
}

// AddEventInterest godoc
// @Summary      Mark interest in an event
// @Description  Idempotent
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id}/interest [post]
func AddEventInterest(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, cfg)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		rsvp(c, eventSvc.AddInterest)
	}
}

// RemoveEventInterest godoc
// @Summary      Withdraw interest in an event
// @Description  Idempotent
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /events/{id}/interest [delete]
func RemoveEventInterest(eventSvc *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, cfg)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		rsvp(c, eventSvc.RemoveInterest)
	}
}

type rsvpAction func(ctx context.Context, eventID primitive.ObjectID, user *models.User) (*models.Event, error)

// rsvp runs one of the caller-scoped event actions and returns the updated event.
func rsvp(c *gin.Context, action rsvpAction) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	event, err := action(c.Request.Context(), id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"event": event})
}
