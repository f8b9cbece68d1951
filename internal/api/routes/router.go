package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ngobridge/platform-go/internal/api/handlers"
	"github.com/ngobridge/platform-go/internal/api/middleware"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/ws"
)

// RegisterRoutes wires the HTTP surface. Public listings sit outside the
// auth group; everything else goes through the JWT middleware and, where it
// matters, a role gate.
func RegisterRoutes(r *gin.Engine, services *application.Services, hub *ws.Hub) {
	h := handlers.New(services, hub, r)

	r.POST("/auth/register", h.User.Register)
	r.POST("/auth/login", h.User.Login)
	r.POST("/auth/logout", h.User.Logout)

	r.GET("/funding", h.Opportunity.ListPublic)
	r.GET("/funding/:id", h.Opportunity.Get)
	r.GET("/discounts", h.Discount.ListPublic)
	r.GET("/discounts/:id", h.Discount.Get)

	// Token is carried in the query or cookie, so the upgrade handler does
	// its own auth.
	r.GET("/ws/notifications", h.Ws.Notifications)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/funding/:id/applications", middleware.RequireRole(user.RoleNgoAdmin), h.Submission.Submit)
		auth.GET("/my-applications", middleware.RequireRole(user.RoleNgoAdmin), h.Submission.ListMine)

		profiles := auth.Group("/profiles")
		{
			profiles.GET("/ngo/me", middleware.RequireRole(user.RoleNgoAdmin), h.Profile.GetNgoProfile)
			profiles.PUT("/ngo/me", middleware.RequireRole(user.RoleNgoAdmin), h.Profile.UpsertNgoProfile)
			profiles.GET("/funder/me", middleware.RequireRole(user.RoleFunder), h.Profile.GetFunderProfile)
			profiles.PUT("/funder/me", middleware.RequireRole(user.RoleFunder), h.Profile.UpsertFunderProfile)
			profiles.GET("/provider/me", middleware.RequireRole(user.RoleProvider), h.Profile.GetProviderProfile)
			profiles.PUT("/provider/me", middleware.RequireRole(user.RoleProvider), h.Profile.UpsertProviderProfile)
		}

		funder := auth.Group("/funder", middleware.RequireRole(user.RoleFunder))
		{
			funder.POST("/funding", h.Opportunity.Create)
			funder.GET("/funding", h.Opportunity.ListMine)
			funder.GET("/funding/:id", h.Opportunity.GetMine)
			funder.PUT("/funding/:id", h.Opportunity.Update)
			funder.DELETE("/funding/:id", h.Opportunity.Delete)
			funder.GET("/funding/:id/applications", h.Submission.ListForOpportunity)
			funder.PATCH("/applications/:id/status", h.Submission.UpdateStatus)
		}

		provider := auth.Group("/provider", middleware.RequireRole(user.RoleProvider))
		{
			provider.POST("/discounts", h.Discount.Create)
			provider.GET("/discounts", h.Discount.ListMine)
			provider.PUT("/discounts/:id", h.Discount.Update)
			provider.DELETE("/discounts/:id", h.Discount.Delete)
		}

		searches := auth.Group("/saved-searches")
		{
			searches.POST("", h.Search.Create)
			searches.GET("", h.Search.List)
			searches.DELETE("/:id", h.Search.Delete)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListUnread)
			notifications.POST("/mark-read", h.Notification.MarkRead)
			notifications.POST("/mark-all-read", h.Notification.MarkAllRead)
		}

		admin := auth.Group("/admin", middleware.Admin())
		{
			admin.GET("/stats", h.Admin.Stats)
			admin.GET("/ngos/unverified", h.Admin.ListUnverifiedNgos)
			admin.PATCH("/ngos/:id/verify", h.Admin.VerifyNgo)
			admin.GET("/users", h.Admin.ListUsers)
			admin.PATCH("/users/:id", h.Admin.UpdateUser)
			admin.DELETE("/users/:id", h.Admin.DeleteUser)

			admin.GET("/funding", h.Opportunity.AdminList)
			admin.POST("/funding", h.Opportunity.AdminCreate)
			admin.PUT("/funding/:id", h.Opportunity.AdminUpdate)
			admin.DELETE("/funding/:id", h.Opportunity.AdminDelete)

			admin.GET("/discounts", h.Discount.AdminList)
			admin.POST("/discounts", h.Discount.AdminCreate)
			admin.PUT("/discounts/:id", h.Discount.AdminUpdate)
			admin.DELETE("/discounts/:id", h.Discount.AdminDelete)
		}
	}
}
