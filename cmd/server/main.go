package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecobeehq/ecoscore-backend/internal/cache"
	"github.com/ecobeehq/ecoscore-backend/internal/config"
	"github.com/ecobeehq/ecoscore-backend/internal/database"
	"github.com/ecobeehq/ecoscore-backend/internal/errors"
	"github.com/ecobeehq/ecoscore-backend/internal/factors"
	"github.com/ecobeehq/ecoscore-backend/internal/leaderboard"
	"github.com/ecobeehq/ecoscore-backend/internal/monitoring"
	"github.com/ecobeehq/ecoscore-backend/internal/products"
	"github.com/ecobeehq/ecoscore-backend/internal/ratelimit"
	"github.com/ecobeehq/ecoscore-backend/internal/recommend"
	"github.com/ecobeehq/ecoscore-backend/internal/scoring"
	"github.com/ecobeehq/ecoscore-backend/internal/security"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDB(cfg.Data.Dir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer errors.SafeClose(db, "database")

	tables := factors.LoadDir(cfg.Data.FactorsDir)
	scorer := scoring.NewScorer(tables)
	engine := recommend.NewEngine(logger)
	catalog := products.NewCatalog()

	board, err := leaderboard.NewStore(db, cfg.Leaderboard.ViewCacheTTL, logger)
	if err != nil {
		slog.Error("Failed to initialize leaderboard", "error", err)
		os.Exit(1)
	}

	metrics := monitoring.NewMetrics(func() float64 { return float64(board.Size()) })
	limiter := ratelimit.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, metrics)
	responseCache := cache.NewCache(cfg.Cache.ResponseTTL)

	r := gin.New()
	r.Use(metrics.Middleware())
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())
	r.Use(security.HeadersMiddleware(cfg.Server.EnableHSTS))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(limiter.Middleware())
	r.Use(responseCache.Middleware(metrics, "/api/score", "/api/quiz-score"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"database":  db.PoolStats(),
			"cache":     responseCache.Stats(),
		})
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")

	// Score a basket of items.
	api.POST("/score", func(c *gin.Context) {
		var req struct {
			Items []scoring.Item `json:"items"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(errors.NewValidationError("invalid score request", map[string]string{
				"body": err.Error(),
			}))
			return
		}

		result := scorer.CalculateEcoScore(req.Items)
		metrics.RecordScore("items")
		c.JSON(http.StatusOK, result)
	})

	// Score from quiz responses when no items were scanned.
	api.POST("/quiz-score", func(c *gin.Context) {
		var req struct {
			Responses []scoring.QuizResponse `json:"responses" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(errors.NewValidationError("invalid quiz request", map[string]string{
				"body": err.Error(),
			}))
			return
		}

		result := scorer.CalculateFromQuiz(req.Responses)
		metrics.RecordScore("quiz")
		c.JSON(http.StatusOK, result)
	})

	// Personalized action recommendations from a boundary profile.
	api.POST("/recommendations", func(c *gin.Context) {
		var req struct {
			BoundaryScores map[string]float64    `json:"boundary_scores" binding:"required"`
			UserContext    recommend.UserContext `json:"user_context"`
			Limit          int                   `json:"limit"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(errors.NewValidationError("invalid recommendation request", map[string]string{
				"body": err.Error(),
			}))
			return
		}

		actions := engine.Personalized(req.BoundaryScores, req.UserContext, req.Limit)
		c.JSON(http.StatusOK, gin.H{"recommendations": actions})
	})

	api.GET("/actions/:id", func(c *gin.Context) {
		details, ok := engine.Details(c.Param("id"))
		if !ok {
			c.Error(errors.NewNotFoundError("action", c.Param("id")))
			return
		}
		c.JSON(http.StatusOK, details)
	})

	api.GET("/actions", func(c *gin.Context) {
		category := c.Query("category")
		if category == "" {
			c.Error(errors.NewValidationError("category query parameter is required", nil))
			return
		}
		c.JSON(http.StatusOK, gin.H{"actions": engine.ActionsByCategory(category)})
	})

	api.GET("/resources", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"resources": engine.Resources()})
	})

	api.POST("/leaderboard/submit", func(c *gin.Context) {
		var req struct {
			UserID            string             `json:"user_id"`
			CompositeScore    *float64           `json:"composite_score" binding:"required"`
			BoundaryScores    map[string]float64 `json:"boundary_scores" binding:"required"`
			CampusAffiliation string             `json:"campus_affiliation"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(errors.NewValidationError("invalid submission", map[string]string{
				"body": err.Error(),
			}))
			return
		}
		if *req.CompositeScore < 0 || *req.CompositeScore > 100 {
			c.Error(errors.NewValidationError("composite_score must be between 0 and 100", nil))
			return
		}
		if req.UserID == "" {
			req.UserID = uuid.NewString()
		}

		result, persistErr := board.Submit(req.UserID, *req.CompositeScore, req.BoundaryScores,
			scoring.Grade(*req.CompositeScore), req.CampusAffiliation)
		metrics.RecordSubmission(result.Status)

		response := gin.H{
			"result":  result,
			"user_id": req.UserID,
		}
		if persistErr != nil {
			metrics.IncrementPersistFailure()
			response["persistence"] = "degraded"
		}
		c.JSON(http.StatusOK, response)
	})

	api.GET("/leaderboard", func(c *gin.Context) {
		limit := cfg.Leaderboard.DefaultLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.Error(errors.NewValidationError("limit must be a positive integer", nil))
				return
			}
			limit = parsed
		}

		c.JSON(http.StatusOK, board.View(limit, c.Query("boundary")))
	})

	api.GET("/products/:barcode", func(c *gin.Context) {
		product, ok := catalog.Lookup(c.Param("barcode"))
		if !ok {
			c.Error(errors.NewNotFoundError("product", c.Param("barcode")))
			return
		}
		c.JSON(http.StatusOK, product)
	})

	api.GET("/products/:barcode/alternatives", func(c *gin.Context) {
		alternatives, ok := catalog.Alternatives(c.Param("barcode"), 5)
		if !ok {
			c.Error(errors.NewNotFoundError("product", c.Param("barcode")))
			return
		}
		c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
	})

	api.GET("/products", func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.Error(errors.NewValidationError("q query parameter is required", nil))
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": catalog.Search(query, c.Query("type"))})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
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
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
