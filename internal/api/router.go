package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	iauth "github.com/skillradar/skillradar/internal/auth"
	"github.com/skillradar/skillradar/internal/handlers"
	"github.com/skillradar/skillradar/internal/middleware"
	"github.com/skillradar/skillradar/internal/services"
)

// Options tunes the assembled HTTP surface.
type Options struct {
	// EnableMetrics mounts the Prometheus scrape endpoint and per-request
	// latency instrumentation.
	EnableMetrics bool

	// RateLimitRequests caps requests per client IP and path inside
	// RateLimitWindow. Zero disables rate limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Router owns the gin engine and the service graph behind it.
type Router struct {
	engine *gin.Engine

	auth        *services.AuthService
	users       *services.UserService
	positions   *services.PositionService
	dimensions  *services.AbilityDimensionService
	ranks       *services.RankService
	roles       *services.RoleService
	departments *services.DepartmentService
	ability     *services.AbilityService
	audit       *services.AuditService

	jwt *iauth.JWTService
}

// NewRouter wires services, middleware and routes into a ready engine.
func NewRouter(db *gorm.DB, jwtService *iauth.JWTService, opts Options) (*Router, error) {
	if db == nil {
		return nil, errors.New("api: db is required")
	}
	if jwtService == nil {
		return nil, errors.New("api: jwt service is required")
	}

	audit, err := services.NewAuditService(db)
	if err != nil {
		return nil, err
	}
	authService, err := services.NewAuthService(db, jwtService, audit)
	if err != nil {
		return nil, err
	}
	userService, err := services.NewUserService(db, audit)
	if err != nil {
		return nil, err
	}
	positionService, err := services.NewPositionService(db, audit)
	if err != nil {
		return nil, err
	}
	dimensionService, err := services.NewAbilityDimensionService(db)
	if err != nil {
		return nil, err
	}
	rankService, err := services.NewRankService(db)
	if err != nil {
		return nil, err
	}
	roleService, err := services.NewRoleService(db, audit)
	if err != nil {
		return nil, err
	}
	departmentService, err := services.NewDepartmentService(db, audit)
	if err != nil {
		return nil, err
	}
	abilityService, err := services.NewAbilityService(db)
	if err != nil {
		return nil, err
	}

	r := &Router{
		auth:        authService,
		users:       userService,
		positions:   positionService,
		dimensions:  dimensionService,
		ranks:       rankService,
		roles:       roleService,
		departments: departmentService,
		ability:     abilityService,
		audit:       audit,
		jwt:         jwtService,
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger())
	if opts.EnableMetrics {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS())
	if opts.RateLimitRequests > 0 {
		window := opts.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		engine.Use(middleware.RateLimit(opts.RateLimitRequests, window))
	}

	engine.GET("/health", handlers.Health)
	if opts.EnableMetrics {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.engine = engine
	r.registerRoutes()
	return r, nil
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) registerRoutes() {
	root := r.engine.Group("/api")

	authHandler := handlers.NewAuthHandler(r.auth)
	root.POST("/auth/login", authHandler.Login)
	root.POST("/auth/register", authHandler.Register)

	protected := root.Group("")
	protected.Use(middleware.Auth(r.jwt))

	protected.POST("/auth/logout", authHandler.Logout)

	r.registerUserRoutes(protected)
	r.registerPositionRoutes(protected)
	r.registerRankRoutes(protected)
	r.registerRoleRoutes(protected)
	r.registerDepartmentRoutes(protected)
	r.registerAbilityRoutes(protected)
	r.registerAuditRoutes(protected)
}
