// Package api exposes the REST surface under /api.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"skillport-api/internal/api/handlers"
	"skillport-api/internal/api/middleware"
	"skillport-api/internal/config"
	"skillport-api/internal/service"
	"skillport-api/internal/storage/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the HTTP API
type Server struct {
	engine *gin.Engine
	store  service.Store
	cache  *redis.Cache
	config *config.Config
	logger *zap.Logger
}

// New wires services over store. cache may be nil, which turns request and
// login limiting off.
func New(cfg *config.Config, store service.Store, cache *redis.Cache, logger *zap.Logger) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		engine: gin.New(),
		store:  store,
		cache:  cache,
		config: cfg,
		logger: logger,
	}

	s.setupMiddleware()

	s.registerHandlers()

	logger.Info("http server initialized")

	return s
}

func (s *Server) setupMiddleware() {
	s.engine.Use(middleware.Logger(s.logger))

	s.engine.Use(middleware.Recovery(s.logger))

	s.engine.Use(cors.New(s.corsConfig()))

	if s.cache != nil {
		s.engine.Use(middleware.RateLimit(s.cache, s.config.RateLimitPerMinute, s.logger))
	}
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(s.config.CORSAllowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.config.CORSAllowedOrigins
	}

	return cfg
}

func (s *Server) registerHandlers() {
	var limiter service.LoginLimiter
	if s.cache != nil {
		limiter = s.cache
	}

	ctx := &handlers.Context{
		Users:          service.NewUserService(s.store, limiter, s.config.BcryptCost, s.config.LoginMaxAttempts, s.logger),
		Jobs:           service.NewJobService(s.store),
		Applications:   service.NewApplicationService(s.store, s.store),
		Skills:         service.NewSkillService(s.store),
		Projects:       service.NewProjectService(s.store),
		Certifications: service.NewCertificationService(s.store),
		Config:         s.config,
		Logger:         s.logger,
	}

	api := s.engine.Group("/api")

	users := api.Group("/users")
	users.GET("", handlers.ListUsers(ctx))
	users.GET("/health", handlers.Health(ctx))
	users.POST("/signup", handlers.Signup(ctx))
	users.POST("/login", handlers.Login(ctx))
	users.GET("/:id", handlers.GetUser(ctx))
	users.PUT("/:id", handlers.UpdateUser(ctx))
	users.DELETE("/:id", handlers.DeleteUser(ctx))

	jobs := api.Group("/jobs")
	jobs.GET("", handlers.ListJobs(ctx))
	jobs.GET("/recruiter/:id", handlers.ListRecruiterJobs(ctx))
	jobs.GET("/:id", handlers.GetJob(ctx))
	jobs.POST("", handlers.CreateJob(ctx))
	jobs.DELETE("/:id", handlers.DeleteJob(ctx))

	applications := api.Group("/applications")
	applications.GET("/student/:id", handlers.ListStudentApplications(ctx))
	applications.GET("/job/:id", handlers.ListJobApplications(ctx))
	applications.POST("", handlers.CreateApplication(ctx))
	applications.PUT("/:id/status", handlers.UpdateApplicationStatus(ctx))

	skills := api.Group("/skills")
	skills.GET("/user/:id", handlers.ListUserSkills(ctx))
	skills.POST("", handlers.CreateSkill(ctx))
	skills.DELETE("/:id", handlers.DeleteSkill(ctx))

	projects := api.Group("/projects")
	projects.GET("", handlers.ListProjects(ctx))
	projects.GET("/user/:id", handlers.ListUserProjects(ctx))
	projects.POST("", handlers.CreateProject(ctx))
	projects.DELETE("/:id", handlers.DeleteProject(ctx))

	certifications := api.Group("/certifications")
	certifications.GET("", handlers.ListCertifications(ctx))
	certifications.GET("/user/:id", handlers.ListUserCertifications(ctx))
	certifications.POST("", handlers.CreateCertification(ctx))
	certifications.DELETE("/:id", handlers.DeleteCertification(ctx))

	s.logger.Info("handlers registered")
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server...", zap.String("addr", s.config.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("stopping http server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logger.Info("http server stopped")
	return nil
}
