package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/controllers"
	"github.com/phillip/youth-portal/middleware"
	"github.com/phillip/youth-portal/services"
)

// Services bundles everything the handlers depend on.
type Services struct {
	Auth          *services.AuthService
	Users         *services.UserService
	Events        *services.EventService
	Announcements *services.AnnouncementService
	Donations     *services.DonationService
	Admin         *services.AdminService
	Email         *services.EmailService
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, svc *Services) {
	api := r.Group("/api")

	protect := middleware.Protect(svc.Auth)
	adminOnly := middleware.RestrictTo("admin")

	// users
	users := api.Group("/users")
	{
		users.POST("/register", controllers.Register(svc.Auth, cfg))
		users.POST("/login", controllers.Login(svc.Auth, cfg))

		me := users.Group("/me", protect)
		me.GET("", controllers.GetMe())
		me.PATCH("", controllers.UpdateMe(svc.Users, cfg))
		me.PATCH("/password", controllers.UpdateMyPassword(svc.Auth, cfg))

		admin := users.Group("", protect, adminOnly)
		admin.GET("", controllers.ListUsers(svc.Users, cfg))
		admin.GET("/:id", controllers.GetUser(svc.Users, cfg))
		admin.PATCH("/:id", controllers.UpdateUser(svc.Users, cfg))
		admin.PATCH("/:id/approve", controllers.ApproveUser(svc.Users, cfg))
		admin.DELETE("/:id", controllers.DeleteUser(svc.Users, cfg))
	}

	// events
	events := api.Group("/events", protect)
	{
		events.GET("", controllers.ListEvents(svc.Events, cfg))
		events.GET("/:id", controllers.GetEvent(svc.Events, cfg))

		events.POST("", adminOnly, controllers.CreateEvent(svc.Events, cfg))
		events.PATCH("/:id", adminOnly, controllers.UpdateEvent(svc.Events, cfg))
		events.DELETE("/:id", adminOnly, controllers.DeleteEvent(svc.Events, cfg))
		events.GET("/:id/attendees", adminOnly, controllers.EventAttendees(svc.Events, cfg))
	}

	// rsvp: Protect, then the role gate, then the approval gate
	rsvp := api.Group("/events", protect, middleware.RestrictTo("member", "admin"), middleware.RequireApproval())
	{
		rsvp.POST("/:id/register", controllers.RegisterForEvent(svc.Events))
		rsvp.DELETE("/:id/register", controllers.UnregisterFromEvent(svc.Events, cfg))
		rsvp.POST("/:id/interest", controllers.AddEventInterest(svc.Events, cfg))
		rsvp.DELETE("/:id/interest", controllers.RemoveEventInterest(svc.Events, cfg))
	}

	// announcements
	announcements := api.Group("/announcements", protect)
	{
		announcements.GET("", controllers.ListAnnouncements(svc.Announcements, cfg))
		announcements.GET("/:id", controllers.GetAnnouncement(svc.Announcements, cfg))
		announcements.POST("", adminOnly, controllers.CreateAnnouncement(svc.Announcements, cfg))
		announcements.PATCH("/:id", adminOnly, controllers.UpdateAnnouncement(svc.Announcements, cfg))
		announcements.DELETE("/:id", adminOnly, controllers.DeleteAnnouncement(svc.Announcements, cfg))
	}

	// donations
	donations := api.Group("/donations", protect, adminOnly)
	{
		donations.GET("", controllers.ListDonations(svc.Donations, cfg))
		donations.GET("/summary", controllers.DonationSummary(svc.Donations, cfg))
		donations.GET("/export", controllers.ExportDonations(svc.Donations, cfg))
		donations.POST("/import", controllers.ImportDonations(svc.Donations, cfg))
		donations.POST("", controllers.CreateDonation(svc.Donations, cfg))
		donations.GET("/:id", controllers.GetDonation(svc.Donations, cfg))
		donations.PATCH("/:id", controllers.UpdateDonation(svc.Donations, cfg))
		donations.DELETE("/:id", controllers.DeleteDonation(svc.Donations, cfg))
	}

	api.GET("/admin/stats", protect, adminOnly, controllers.DashboardStats(svc.Admin, cfg))

	// email
	api.POST("/email/contact", controllers.SendContact(svc.Email, cfg))
	api.POST("/email/send", protect, adminOnly, controllers.SendToMembers(svc.Email, cfg))
}
