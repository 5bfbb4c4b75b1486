package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/utils"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type broadcastRequest struct {
	Subject string   `json:"subject" binding:"required"`
	Message string   `json:"message" binding:"required"`
	UserIDs []string `json:"userIds"`
}

// SendContact godoc
// @Summary      Contact the organization
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        request body contactRequest true "Contact form"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Router       /email/contact [post]
func SendContact(emailSvc *services.EmailService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Please provide your name, a valid email and a message")
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		err := emailSvc.SendContact(ctx, services.ContactInput{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"message": "Message sent"})
	}
}

// SendToMembers emails the listed users, or every approved member when userIds is empty.
// @Summary      Email members
// @Description  One message per recipient. Without userIds every approved member is emailed.
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        request body broadcastRequest true "Subject, message and optional user IDs"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /email/send [post]
func SendToMembers(emailSvc *services.EmailService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req broadcastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Please provide subject and message")
			return
		}

		ids := make([]primitive.ObjectID, 0, len(req.UserIDs))
		for _, raw := range req.UserIDs {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				badRequest(c, "Invalid user id: "+raw)
				return
			}
			ids = append(ids, id)
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		n, err := emailSvc.SendToMembers(ctx, services.BroadcastInput{
			Subject: req.Subject,
			Message: req.Message,
			UserIDs: ids,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"recipients": n})
	}
}
