package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sliate-rat/university-api/docs"
	"github.com/sliate-rat/university-api/internal/api/handler"
	"github.com/sliate-rat/university-api/internal/api/middleware"
	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
	"github.com/sliate-rat/university-api/internal/core/service"
	mongodb "github.com/sliate-rat/university-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/sliate-rat/university-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.ContactNotifier, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("university"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	subjectRepo := mongodb.NewSubjectRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	staffRepo := mongodb.NewStaffRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, studentRepo, jwtSecret, time.Hour, log)
	studentService := service.NewStudentService(studentRepo, subjectRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, log)
	courseService := service.NewCourseService(courseRepo, log)
	newsService := service.NewNewsService(newsRepo, log)
	eventService := service.NewEventService(eventRepo, log)
	staffService := service.NewStaffService(staffRepo, log)
	calendarService := service.NewCalendarService(newsRepo, eventRepo, log)
	dedup := redisinfra.NewContactDeduper(rdb, 10*time.Minute)
	contactService := service.NewContactService(contactRepo, notifier, dedup, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	studentAuthHandler := handler.NewStudentAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	courseHandler := handler.NewCourseHandler(courseService)
	newsHandler := handler.NewNewsHandler(newsService)
	eventHandler := handler.NewEventHandler(eventService)
	staffHandler := handler.NewStaffHandler(staffService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	contactHandler := handler.NewContactHandler(contactService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	studentOnly := middleware.RequireRole(domain.RoleStudent)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth", authHandler.Current, auth)
	e.POST("/api/student-auth/register", studentAuthHandler.Register)
	e.POST("/api/student-auth/login", studentAuthHandler.Login)
	e.GET("/api/student-auth", studentAuthHandler.Current, auth)

	// --- Courses: public reads, token-gated mutations ---
	e.GET("/api/courses", courseHandler.List)
	e.GET("/api/courses/:id", courseHandler.Get)
	e.POST("/api/courses", courseHandler.Create, auth)
	e.PUT("/api/courses/:id", courseHandler.Update, auth)
	e.DELETE("/api/courses/:id", courseHandler.Delete, auth)

	// --- News ---
	e.GET("/api/news", newsHandler.List)
	e.GET("/api/news/:id", newsHandler.Get)
	e.POST("/api/news", newsHandler.Create, auth, adminOnly)
	e.PUT("/api/news/:id", newsHandler.Update, auth, adminOnly)
	e.DELETE("/api/news/:id", newsHandler.Delete, auth, adminOnly)

	// --- Events ---
	e.GET("/api/events", eventHandler.List)
	e.GET("/api/events/:id", eventHandler.Get)
	e.POST("/api/events", eventHandler.Create, auth, adminOnly)
	e.PUT("/api/events/:id", eventHandler.Update, auth, adminOnly)
	e.DELETE("/api/events/:id", eventHandler.Delete, auth, adminOnly)

	// --- Staff ---
	e.GET("/api/staff", staffHandler.List)
	e.GET("/api/staff/:id", staffHandler.Get)
	e.POST("/api/staff", staffHandler.Create, auth, adminOnly)
	e.PUT("/api/staff/:id", staffHandler.Update, auth, adminOnly)
	e.DELETE("/api/staff/:id", staffHandler.Delete, auth, adminOnly)

	// --- Subjects ---
	e.GET("/api/subjects", subjectHandler.List)
	e.GET("/api/subjects/:id", subjectHandler.Get)
	e.POST("/api/subjects", subjectHandler.Create, auth, adminOnly)
	e.PUT("/api/subjects/:id", subjectHandler.Update, auth, adminOnly)
	e.DELETE("/api/subjects/:id", subjectHandler.Delete, auth, adminOnly)

	// --- Students: "me" before ":id" so the literal route wins ---
	e.GET("/api/students/me", studentHandler.Me, auth, studentOnly)
	e.GET("/api/students", studentHandler.List, auth, adminOnly)
	e.GET("/api/students/:id", studentHandler.Get, auth, adminOnly)
	e.POST("/api/students", studentHandler.Create, auth, adminOnly)
	e.PUT("/api/students/:id", studentHandler.Update, auth, adminOnly)
	e.DELETE("/api/students/:id", studentHandler.Delete, auth, adminOnly)

	// --- Contact and calendar ---
	e.POST("/api/contact", contactHandler.Submit)
	e.GET("/api/calendar-items", calendarHandler.Items)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
