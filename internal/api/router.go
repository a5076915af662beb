package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/medconnect/portal-api/docs"
	"github.com/medconnect/portal-api/internal/api/handler"
	"github.com/medconnect/portal-api/internal/api/middleware"
	"github.com/medconnect/portal-api/internal/core/domain"
	"github.com/medconnect/portal-api/internal/core/ports"
)

// Deps carries the already-constructed collaborators the router wires into
// handlers. Building them is the caller's job (cmd/api).
type Deps struct {
	Sessions     ports.SessionService
	SessionStore ports.SessionStore
	Dispatcher   ports.PictureDispatcher
	Drafts       ports.PictureDrafts
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("medconnect"))
	e.Use(middleware.Session(deps.Sessions))

	// --- Handlers ---
	viewHandler := handler.NewViewHandler()
	authHandler := handler.NewAuthHandler(deps.Sessions)
	dashboardHandler := handler.NewDashboardHandler()
	pictureHandler := handler.NewPictureHandler(deps.Dispatcher, deps.Drafts)

	// --- Public views ---
	e.GET("/", viewHandler.Landing)
	e.GET("/login", viewHandler.LoginView)
	e.GET("/signup", viewHandler.SignupView)

	// --- Form submissions ---
	e.POST("/login", authHandler.Login)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)
	e.POST("/signup/picture", pictureHandler.Upload)
	e.GET("/signup/picture/:draft_id", pictureHandler.Current)

	// --- Guarded dashboards ---
	e.GET("/patient-dashboard", dashboardHandler.Patient, middleware.Guard(domain.RolePatient))
	e.GET("/doctor-dashboard", dashboardHandler.Doctor, middleware.Guard(domain.RoleDoctor))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.SessionStore)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Unmatched paths always return to the public landing view.
	e.RouteNotFound("/*", middleware.RedirectLost)

	return e
}
