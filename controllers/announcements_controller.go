package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/utils"
)

// announcementRequest binds from JSON or multipart form. An empty expiresAt clears the expiry.
type announcementRequest struct {
	Title     *string `json:"title" form:"title"`
	Content   *string `json:"content" form:"content"`
	Priority  *string `json:"priority" form:"priority"`
	ExpiresAt *string `json:"expiresAt" form:"expiresAt"`
}

func bindAnnouncement(c *gin.Context) (services.AnnouncementInput, bool) {
	var req announcementRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request body")
		return services.AnnouncementInput{}, false
	}

	input := services.AnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
	}
	if req.ExpiresAt != nil {
		if strings.TrimSpace(*req.ExpiresAt) == "" {
			input.ClearExpiry = true
		} else {
			expiresAt, err := optionalDate(req.ExpiresAt)
			if err != nil {
				badRequest(c, err.Error())
				return services.AnnouncementInput{}, false
			}
			input.ExpiresAt = expiresAt
		}
	}
	return input, true
}

// ---------------- LIST ----------------

// ListAnnouncements godoc
// @Summary      List announcements
// @Description  Newest first. Expired announcements are hidden unless active=false.
// @Tags         announcements
// @Produce      json
// @Param        priority  query string false "Low, Normal, High or Urgent"
// @Param        active    query bool   false "Hide expired announcements (default true)"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements [get]
func ListAnnouncements(announcementSvc *services.AnnouncementService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var priority *models.Priority
		if raw := c.Query("priority"); raw != "" {
			p, ok := models.ParsePriority(raw)
			if !ok {
				badRequest(c, "priority must be one of [Low Normal High Urgent]")
				return
			}
			priority = &p
		}

		active, err := queryBool(c, "active")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		activeOnly := active == nil || *active

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		list, err := announcementSvc.List(ctx, priority, activeOnly)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.List(c, "announcements", list, len(list))
	}
}

// ---------------- GET ----------------

// GetAnnouncement godoc
// @Summary      Get an announcement
// @Description  Honours If-None-Match with 304
// @Tags         announcements
// @Produce      json
// @Param        id path string true "Announcement ID"
// @Success      200 {object} map[string]interface{}
// @Success      304 "Not Modified"
// @Failure      401 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements/{id} [get]
func GetAnnouncement(announcementSvc *services.AnnouncementService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "announcement")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		a, err := announcementSvc.Get(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if utils.NotModified(c, a.ID, a.UpdatedAt) {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"announcement": a})
	}
}

// ---------------- CREATE ----------------

// CreateAnnouncement godoc
// @Summary      Create an announcement
// @Tags         announcements
// @Accept       multipart/form-data
// @Produce      json
// @Param        title      formData string true  "Title"
// @Param        content    formData string true  "Content"
// @Param        priority   formData string false "Low, Normal, High or Urgent"
// @Param        expiresAt  formData string false "Expiry date"
// @Param        image      formData file   false "Image"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements [post]
func CreateAnnouncement(announcementSvc *services.AnnouncementService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		input, ok := bindAnnouncement(c)
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

		a, err := announcementSvc.Create(ctx, user.ID, input, image)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, gin.H{"announcement": a})
	}
}

// ---------------- UPDATE ----------------

// UpdateAnnouncement godoc
// @Summary      Update an announcement
// @Description  Only the fields sent are changed
// @Tags         announcements
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path     string true  "Announcement ID"
// @Param        title      formData string false "Title"
// @Param        content    formData string false "Content"
// @Param        priority   formData string false "Low, Normal, High or Urgent"
// @Param        expiresAt  formData string false "Expiry date"
// @Param        image      formData file   false "Replacement image"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements/{id} [patch]
func UpdateAnnouncement(announcementSvc *services.AnnouncementService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "announcement")
		if !ok {
			return
		}
		input, ok := bindAnnouncement(c)
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

		a, err := announcementSvc.Update(ctx, id, input, image)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"announcement": a})
	}
}

// ---------------- DELETE ----------------

// DeleteAnnouncement godoc
// @Summary      Delete an announcement
// @Tags         announcements
// @Param        id path string true "Announcement ID"
// @Success      204 "No Content"
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /announcements/{id} [delete]
func DeleteAnnouncement(announcementSvc *services.AnnouncementService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "announcement")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		if err := announcementSvc.Delete(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		utils.NoContent(c)
	}
}
