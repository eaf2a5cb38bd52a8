package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"bloghub/database"
	"bloghub/internal/config"
	"bloghub/internal/web/handler"
	"bloghub/internal/web/repository"
	"bloghub/internal/web/service"
	"bloghub/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	if cfg.SecretGenerated {
		logger.Warn("SESSION_SECRET not set, generated a one-off secret; sessions will not survive a restart")
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("could not create upload directory: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(blogRepo, commentRepo, likeRepo)
	commentService := service.NewCommentService(commentRepo, blogRepo)
	likeService := service.NewLikeService(likeRepo, blogRepo)
	uploadService := service.NewUploadService(cfg.UploadDir)

	// Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("bloghub_session", store))

	r.SetHTMLTemplate(web.Templates())
	// uploaded images are stored under UploadDir and referenced by a URL
	// mirroring the relative path, so serve the parent directory as-is
	staticRoot := filepath.Dir(cfg.UploadDir)
	r.Static("/"+filepath.ToSlash(staticRoot), staticRoot)

	handler.NewPagesHandler().RegisterRoutes(r)
	handler.NewAuthHandler(authService).RegisterRoutes(r)
	handler.NewBlogHandler(blogService, uploadService).RegisterRoutes(r)
	handler.NewCommentHandler(commentService).RegisterRoutes(r)
	handler.NewLikeHandler(likeService).RegisterRoutes(r)
	handler.NewAdminHandler(userService).RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
