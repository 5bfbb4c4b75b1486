package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/utils"
)

type registerRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Birthday     *string `json:"birthday"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Organization string  `json:"organization"`
	Committee    string  `json:"committee"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type profileRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	Birthday     *string `json:"birthday"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Organization *string `json:"organization"`
	Committee    *string `json:"committee"`
}

func (r profileRequest) input() (services.ProfileInput, error) {
	birthday, err := optionalDate(r.Birthday)
	if err != nil {
		return services.ProfileInput{}, err
	}
	return services.ProfileInput{
		Username:     r.Username,
		Email:        r.Email,
		Name:         r.Name,
		Age:          r.Age,
		Birthday:     birthday,
		Phone:        r.Phone,
		Address:      r.Address,
		Organization: r.Organization,
		Committee:    r.Committee,
	}, nil
}

type adminUpdateRequest struct {
	profileRequest
	Role       *string `json:"role"`
	IsApproved *bool   `json:"isApproved"`
}

func sendAuth(c *gin.Context, code int, res *services.AuthResult) {
	utils.Success(c, code, gin.H{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
		"user":      res.User,
	})
}

// ---------------- REGISTER ----------------

// Register godoc
// @Summary      Register a new member
// @Description  Creates an unapproved member account and returns a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Registration details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Router       /users/register [post]
func Register(authSvc *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}

		birthday, err := optionalDate(req.Birthday)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		res, err := authSvc.Register(ctx, services.RegisterInput{
			Username:     req.Username,
			Email:        req.Email,
			Password:     req.Password,
			Name:         req.Name,
			Age:          req.Age,
			Birthday:     birthday,
			Phone:        req.Phone,
			Address:      req.Address,
			Organization: req.Organization,
			Committee:    req.Committee,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		sendAuth(c, http.StatusCreated, res)
	}
}

// ---------------- LOGIN ----------------

// Login godoc
// @Summary      Log in
// @Description  Exchanges username and password for a bearer token. Approval is not required.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Credentials"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Router       /users/login [post]
func Login(authSvc *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Please provide username and password")
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		res, err := authSvc.Login(ctx, req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		sendAuth(c, http.StatusOK, res)
	}
}

// ---------------- ME ----------------

// GetMe godoc
// @Summary      Current user
// @Description  Honours If-None-Match with 304
// @Tags         users
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Success      304 "Not Modified"
// @Failure      401 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/me [get]
func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		if utils.NotModified(c, user.ID, user.UpdatedAt) {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"user": user})
	}
}

// UpdateMe applies a profile patch to the caller. Role and approval are ignored.
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body profileRequest true "Profile fields"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/me [patch]
func UpdateMe(userSvc *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		input, err := req.input()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		updated, err := userSvc.UpdateProfile(ctx, user.ID, input)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"user": updated})
	}
}

// UpdateMyPassword godoc
// @Summary      Change own password
// @Description  Returns a fresh bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body passwordRequest true "Current and new password"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/me/password [patch]
func UpdateMyPassword(authSvc *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req passwordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		res, err := authSvc.UpdatePassword(ctx, user.ID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			respondError(c, err)
			return
		}
		sendAuth(c, http.StatusOK, res)
	}
}

// ---------------- ADMIN ----------------

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role        query string false "Member or Admin"
// @Param        isApproved  query bool   false "Approval state"
// @Param        committee   query string false "Committee name"
// @Param        q           query string false "Search name, username or email"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users [get]
func ListUsers(userSvc *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.UserFilter{
			Committee: c.Query("committee"),
			Query:     c.Query("q"),
		}
		if raw := c.Query("role"); raw != "" {
			role, ok := models.ParseRole(raw)
			if !ok {
				badRequest(c, "role must be one of [Member Admin]")
				return
			}
			filter.Role = &role
		}
		approved, err := queryBool(c, "isApproved")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		filter.IsApproved = approved

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		users, err := userSvc.List(ctx, filter)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.List(c, "users", users, len(users))
	}
}

// GetUser godoc
// @Summary      Get a user
// @Description  Honours If-None-Match with 304
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} map[string]interface{}
// @Success      304 "Not Modified"
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/{id} [get]
func GetUser(userSvc *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		user, err := userSvc.Get(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if utils.NotModified(c, user.ID, user.UpdatedAt) {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"user": user})
	}
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Admins may also change role and approval
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body adminUpdateRequest true "Fields to change"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func UpdateUser(userSvc *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user")
		if !ok {
			return
		}

		var req adminUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		profile, err := req.input()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		user, err := userSvc.AdminUpdate(ctx, id, services.AdminUpdateInput{
			ProfileInput: profile,
			Role:         req.Role,
			IsApproved:   req.IsApproved,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"user": user})
	}
}

// ApproveUser godoc
// @Summary      Approve a member
// @Description  Marks the account approved and emails the member
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/{id}/approve [patch]
func ApproveUser(userSvc *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		user, err := userSvc.Approve(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"user": user})
	}
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Also removes the user from every event
// @Tags         users
// @Param        id path string true "User ID"
// @Success      204 "No Content"
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func DeleteUser(userSvc *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "user")
		if !ok {
			return
		}

		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		if err := userSvc.Delete(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		utils.NoContent(c)
	}
}
