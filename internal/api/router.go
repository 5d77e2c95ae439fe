package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/ratheesh-12/HostelMS/config"
	"github.com/ratheesh-12/HostelMS/internal/model"
	"github.com/ratheesh-12/HostelMS/internal/mw"
)

// NewRouter creates and configures a new Gin router. Route protection is
// layered: the auth gate rejects anonymous requests, the role gate fails
// closed on insufficient roles. Unmatched paths fall through to gin's 404.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, cfg.RequestIPHeader)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	h.cache = cache.New(ttl, 2*ttl)
	caching := mw.Cache(h.cache, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)

	// Public surface: login, the landing page hostel list and the push key.
	api.POST("/auth/login", h.Login)
	api.GET("/hostels", caching, h.ListHostels)
	api.GET("/vapid_public_key", h.GetVAPIDPublicKey)

	authed := api.Group("")
	authed.Use(mw.Auth(h.sessions))
	{
		authed.POST("/auth/logout", h.Logout)
		authed.GET("/auth/me", h.Me)

		authed.GET("/hostels/:id", h.GetHostel)
		authed.GET("/rooms", h.ListRooms)
		authed.GET("/bookings", h.ListBookings)
		authed.GET("/complaints", h.ListComplaints)
		authed.GET("/documents", h.ListDocuments)
		authed.GET("/dashboard/stats", h.DashboardStats)

		authed.GET("/notifications", h.ListNotifications)
		authed.POST("/notifications/:id/read", h.MarkNotificationRead)

		authed.GET("/subscriptions", h.GetSubscriptions)
		authed.PUT("/subscriptions", h.PutSubscription)
		authed.DELETE("/subscriptions", h.DeleteSubscription)
	}

	student := authed.Group("")
	student.Use(mw.Role(h.policy, model.RoleStudent))
	{
		student.GET("/my-room", h.MyRoom)
		student.POST("/bookings", h.CreateBooking)
		student.POST("/complaints", h.CreateComplaint)
		student.POST("/documents", h.CreateDocument)
		student.DELETE("/documents/:id", h.DeleteDocument)
	}

	staff := authed.Group("")
	staff.Use(mw.Role(h.policy, model.RoleAdmin, model.RoleStaff))
	{
		staff.PATCH("/rooms/:id", h.UpdateRoom)
		staff.PATCH("/complaints/:id", h.RespondComplaint)
		staff.PATCH("/documents/:id", h.ReviewDocument)
		staff.GET("/students", h.ListStudents)
		staff.GET("/reports/summary", caching, h.ReportSummary)
	}

	// Booking decisions are shared: staff approve or reject, students
	// cancel their own. The handler checks the details.
	authed.PATCH("/bookings/:id", h.DecideBooking)

	admin := authed.Group("")
	admin.Use(mw.Role(h.policy, model.RoleAdmin))
	{
		admin.POST("/hostels", h.CreateHostel)
		admin.PATCH("/hostels/:id", h.UpdateHostel)
		admin.DELETE("/hostels/:id", h.DeleteHostel)

		admin.POST("/rooms", h.CreateRoom)
		admin.DELETE("/rooms/:id", h.DeleteRoom)

		admin.DELETE("/bookings/:id", h.DeleteBooking)
		admin.DELETE("/complaints/:id", h.DeleteComplaint)

		admin.POST("/students", h.CreateStudent)

		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.PATCH("/users/:id", h.UpdateUser)
		admin.PATCH("/users/:id/status", h.ToggleUserStatus)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/activity", h.ListActivity)
	}

	return r
}
