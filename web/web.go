// Package web provides the HTTP server of the course-admin service:
// routing, middleware and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"

	"course-admin/config"
	"course-admin/logger"
	"course-admin/util/common"
	"course-admin/web/controller"
	"course-admin/web/entity"
	"course-admin/web/job"
	"course-admin/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the web server: gin engine, controllers and cron jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index      *controller.IndexController
	users      *controller.UserController
	articles   *controller.ArticleController
	categories *controller.CategoryController
	courses    *controller.CourseController
	settings   *controller.SettingController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.RequestLog())

	s.index = controller.NewIndexController(engine.Group("/"))
	s.users = controller.NewUserController(engine.Group("/users"))

	admin := engine.Group("/admin")
	s.articles = controller.NewArticleController(admin.Group("/articles"))
	s.categories = controller.NewCategoryController(admin.Group("/categories"))
	s.courses = controller.NewCourseController(admin.Group("/courses"))
	s.settings = controller.NewSettingController(admin.Group("/settings"))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.Msg{
			Message: "resource does not exist.",
			Errors:  []string{"route was not found."},
		})
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
