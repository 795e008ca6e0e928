package routes

import (
	"os"

	"github.com/labstack/echo/v4"

	"github.com/DurgaPydahSoft/client-sub008/handlers"
	"github.com/DurgaPydahSoft/client-sub008/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler()
	std := handlers.NewStudentHandler()
	occ := handlers.NewOccupantHandler()
	room := handlers.NewRoomHandler()
	crs := handlers.NewCourseHandler()
	rates := handlers.NewRatesHandler()
	dash := handlers.NewDashboardHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/admin/login", auth.Login)

	// ===== Staff scope (warden or admin) =====
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	authMW := middlewares.RequireAuth(secret)
	staff := e.Group("", authMW, middlewares.RequireRole("warden", "admin"))

	// Bulk admission workflow
	staff.POST("/students/bulk/preview", std.BulkPreview)
	staff.PUT("/students/bulk/:session/rows/:index", std.BulkEditRow)
	staff.DELETE("/students/bulk/:session/rows/:index", std.BulkRemoveRow)
	staff.POST("/students/bulk/:session/commit", std.BulkCommit)
	staff.GET("/students/reference", std.Reference)

	// Single-record student CRUD
	staff.GET("/students", std.List)
	staff.GET("/students/:id", std.Get)
	staff.POST("/students", std.Create)
	staff.PUT("/students/:id", std.Update)
	staff.DELETE("/students/:id", std.Delete)

	// Rooms / availability
	staff.GET("/rooms", room.List)
	staff.GET("/rooms/availability", room.Availability)
	staff.GET("/rooms/:number/slots", room.Slots)

	// Staff/guest occupants
	staff.GET("/occupants", occ.List)
	staff.POST("/occupants", occ.Create)
	staff.POST("/occupants/:id/checkout", occ.Checkout)
	staff.GET("/occupants/:id/charges", occ.Charges)
	staff.POST("/occupants/:id/renew", occ.Renew)
	staff.GET("/occupants/:id/renewals", occ.Renewals)

	// Courses & branches (reference data reads)
	staff.GET("/courses", crs.List)
	staff.GET("/branches", crs.ListBranches)

	// Rate settings reads
	staff.GET("/settings/rates", rates.Get)

	// ===== Admin-only =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/dashboard", dash.Summary)

	admin.POST("/courses", crs.Create)
	admin.PUT("/courses/:id", crs.Update)
	admin.DELETE("/courses/:id", crs.Delete)
	admin.POST("/branches", crs.CreateBranch)
	admin.DELETE("/branches/:id", crs.DeleteBranch)

	admin.PUT("/settings/rates", rates.Update)
	admin.PATCH("/occupants/:id/charges/override", occ.OverrideCharge)
}
