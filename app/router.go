// Package app wires the HTTP router and every dependency it needs
package app

import (
	"bitwise74/task-api/app/file"
	"bitwise74/task-api/app/password"
	"bitwise74/task-api/app/project"
	"bitwise74/task-api/app/root"
	"bitwise74/task-api/app/task"
	"bitwise74/task-api/app/user"
	"bitwise74/task-api/internal"
	"bitwise74/task-api/pkg/middleware"
	"net/http"
	"slices"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type RouterConfig struct {
	CORSOrigins []string
	// RateLimit is the allowed requests per second per IP, 0 disables it
	RateLimit int
	Turnstile middleware.TurnstileConfig
}

type handler func(c *gin.Context, d *internal.Deps)

// NewRouter builds the engine serving every endpoint on top of d
func NewRouter(d *internal.Deps, cfg RouterConfig) *gin.Engine {
	store := persist.NewMemoryStore(time.Minute)
	cacheFor := func(sec int) gin.HandlerFunc {
		return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
	}

	with := func(h handler) gin.HandlerFunc {
		return func(c *gin.Context) { h(c, d) }
	}

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "TurnstileToken"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == http.MethodHead
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("user_id", v))
				}

				return fields
			},
		}),
	)

	if cfg.RateLimit > 0 {
		router.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit,
			Burst:             cfg.RateLimit * 2,
			CleanupInterval:   time.Minute,
			TTL:               5 * time.Minute,
		}))
	}

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware(d.Users, d.JWTSecret)
	turnstile := middleware.NewTurnstileMiddleware(cfg.Turnstile)
	smallBody := middleware.BodySizeLimiter(1 << 20)

	// HEAD /heartbeat			-> Used to check if the server is alive
	router.HEAD("/heartbeat", root.Heartbeat)

	// POST /forgot-password		-> Mails a password reset link
	router.POST("/forgot-password", smallBody, turnstile, with(password.ForgotPassword))

	users := router.Group("/users", smallBody)
	{
		// POST /users			-> Registers a new user
		users.POST("", turnstile, with(user.UserRegister))
	}

	// POST /sessions			-> Logs in a user and returns a bearer token
	router.POST("/sessions", smallBody, with(user.UserLogin))

	projects := router.Group("/projects", jwt)
	{
		// GET /projects?page=N		-> Paginated project list
		projects.GET("", with(project.ProjectIndex))

		// POST /projects			-> Creates a project owned by the caller
		projects.POST("", smallBody, with(project.ProjectStore))

		// GET /projects/:id		-> Project with its owner and tasks
		projects.GET("/:id", with(project.ProjectShow))

		// PUT|PATCH /projects/:id	-> Updates title and description
		projects.PUT("/:id", smallBody, with(project.ProjectUpdate))
		projects.PATCH("/:id", smallBody, with(project.ProjectUpdate))

		// DELETE /projects/:id		-> Deletes a project and its tasks
		projects.DELETE("/:id", with(project.ProjectDestroy))

		// GET /projects/:id/tasks	-> Tasks of a project
		projects.GET("/:id/tasks", with(task.TaskIndex))

		// POST /projects/:id/tasks	-> Creates a task, mailing the assignee
		projects.POST("/:id/tasks", smallBody, with(task.TaskStore))
	}

	tasks := router.Group("/tasks", jwt)
	{
		// GET /tasks/:id			-> Task with its assignee
		tasks.GET("/:id", with(task.TaskShow))

		// PUT|PATCH /tasks/:id		-> Updates a task, mailing a new assignee
		tasks.PUT("/:id", smallBody, with(task.TaskUpdate))
		tasks.PATCH("/:id", smallBody, with(task.TaskUpdate))

		// DELETE /tasks/:id		-> Deletes a task
		tasks.DELETE("/:id", with(task.TaskDestroy))
	}

	files := router.Group("/files", jwt)
	{
		// GET /files/:id			-> Serves a stored attachment
		files.GET("/:id", cacheFor(5*60), with(file.FileServe))

		// POST /files			-> Uploads an attachment
		files.POST("", middleware.BodySizeLimiter(d.MaxUploadSize), with(file.FileUpload))
	}

	return router
}
