package devapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"portfolio-admin/internal/config"
	"portfolio-admin/internal/devapi/controllers"
	"portfolio-admin/internal/devapi/repository"
	"portfolio-admin/internal/devapi/service"
	"portfolio-admin/internal/jwt"
	"portfolio-admin/internal/middleware"
)

// Options configures the development backend
type Options struct {
	PublicURL      string // scheme://host the server is reachable at
	JWTSecret      string
	JWTTTL         time.Duration
	AdminEmail     string
	AdminPassword  string
	RateLimitRPS   float64 // 0 disables rate limiting
	RateLimitBurst int
	LegacyURLList  bool
	Logger         *zap.Logger
}

// OptionsFromConfig maps the DEV_* configuration onto Options
func OptionsFromConfig(cfg config.DevServerConfig, logger *zap.Logger) Options {
	return Options{
		PublicURL:      cfg.PublicURL,
		JWTSecret:      cfg.JWTSecret,
		JWTTTL:         cfg.JWTTTL(),
		AdminEmail:     cfg.AdminEmail,
		AdminPassword:  cfg.AdminPassword,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		LegacyURLList:  cfg.LegacyURLList,
		Logger:         logger,
	}
}

// Server is an in-memory implementation of the portfolio backend
type Server struct {
	router  *gin.Engine
	limiter *middleware.RateLimiter
	logger  *zap.Logger

	Portfolio service.PortfolioService
	URLs      service.URLService
}

func NewServer(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.JWTTTL <= 0 {
		opts.JWTTTL = 24 * time.Hour
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	urlRepo := repository.NewURLRepository()
	portfolioRepo := repository.NewPortfolioRepository()
	imageRepo := repository.NewImageRepository()

	jwtService := jwt.NewJWTService(opts.JWTSecret, opts.JWTTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	urlService := service.NewURLService(urlRepo)
	imageService := service.NewImageService(imageRepo, opts.PublicURL)
	portfolioService := service.NewPortfolioService(portfolioRepo, imageService)

	if err := authService.SeedOperator(opts.AdminEmail, opts.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed operator: %w", err)
	}

	// Initialize controllers
	authController := controllers.NewAuthController(authService, opts.JWTTTL)
	urlController := controllers.NewURLController(urlService, opts.LegacyURLList)
	portfolioController := controllers.NewPortfolioController(portfolioService)
	uploadController := controllers.NewUploadController(imageService)
	qrcodeController := controllers.NewQRCodeController(opts.PublicURL + "/s")

	s := &Server{
		logger:    logger,
		Portfolio: portfolioService,
		URLs:      urlService,
	}

	router := gin.New()
	router.Use(middleware.LoggerMiddleware(logger), gin.Recovery())
	router.MaxMultipartMemory = 8 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/s/:shortCode", urlController.Redirect)
	router.GET("/uploads/:id", uploadController.Serve)

	api := router.Group("/api")
	if opts.RateLimitRPS > 0 {
		s.limiter = middleware.NewRateLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)
		api.Use(s.limiter.LimitMiddleware())
	}
	{
		auth := api.Group("/auth")
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		api.POST("/portfolio/contact", portfolioController.CreateMessage)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/portfolio/projects", portfolioController.ListProjects)
			protected.POST("/portfolio/projects", portfolioController.CreateProject)
			protected.PUT("/portfolio/projects/:id", portfolioController.UpdateProject)
			protected.DELETE("/portfolio/projects/:id", portfolioController.DeleteProject)

			protected.GET("/portfolio/skills", portfolioController.ListSkills)
			protected.POST("/portfolio/skills", portfolioController.CreateSkill)
			protected.PUT("/portfolio/skills/:id", portfolioController.UpdateSkill)
			protected.DELETE("/portfolio/skills/:id", portfolioController.DeleteSkill)

			protected.GET("/portfolio/contact", portfolioController.ListMessages)

			protected.GET("/url", urlController.List)
			protected.POST("/url", urlController.Create)
			protected.PUT("/url/:id", urlController.Update)
			protected.DELETE("/url/:id", urlController.Delete)

			protected.POST("/upload", uploadController.Upload)
			protected.GET("/qrcode/:shortCode", qrcodeController.Generate)
		}
	}

	s.router = router
	return s, nil
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases background resources
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Close()
	}
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("development backend listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}
