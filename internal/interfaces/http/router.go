package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/analytics"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmployeeUC  *employee.UseCase
	DashboardUC *analytics.DashboardUseCase
	UserRepo    repository.UserRepository
	StorePing   StorePinger
	Config      *config.Config
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// System (público, fuera de /api)
	systemHandler := NewSystemHandler(deps.UserRepo, deps.StorePing, deps.Config)
	app.Get("/health", systemHandler.Health)
	app.Get("/debug/status", systemHandler.DebugStatus)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Config.JWT.Secret))

	// Employees (protegido). Las rutas fijas van antes de /:id para que
	// Fiber no capture "export" o "bulk-update" como parámetro.
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/export", employeeHandler.Export)
	employees.Post("/bulk-update", employeeHandler.BulkUpdate)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/photo", employeeHandler.UploadPhoto)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
