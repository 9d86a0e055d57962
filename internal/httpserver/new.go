package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"actionsense/internal/actionsense"
	asUC "actionsense/internal/actionsense/usecase"
	"actionsense/internal/middleware"
	"actionsense/internal/schedule"
	schUC "actionsense/internal/schedule/usecase"
	"actionsense/pkg/datemath"
	"actionsense/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Shared
	resolver *datemath.Resolver
	now      func() time.Time

	// ActionSense domain
	storeSize       int
	extractor       actionsense.ActionItemExtractor
	actionSenseOpts asUC.Options

	// Schedule domain
	calendar     schedule.Calendar
	scheduleOpts schUC.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	RequestsPerMin int

	Resolver *datemath.Resolver
	// Now overrides the clock, for tests.
	Now func() time.Time

	// ActionSense domain. A nil Extractor disables the LLM fallback.
	StoreSize          int
	Extractor          actionsense.ActionItemExtractor
	ActionSenseOptions asUC.Options

	// Schedule domain. A nil Calendar disables calendar export.
	Calendar        schedule.Calendar
	ScheduleOptions schUC.Options
}

// New creates a new HTTPServer with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.RequestsPerMin),
		resolver:        cfg.Resolver,
		now:             cfg.Now,
		storeSize:       cfg.StoreSize,
		extractor:       cfg.Extractor,
		actionSenseOpts: cfg.ActionSenseOptions,
		calendar:        cfg.Calendar,
		scheduleOpts:    cfg.ScheduleOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.resolver == nil {
		return errors.New("resolver is required")
	}
	if srv.storeSize <= 0 {
		return errors.New("store size must be positive")
	}
	return nil
}

// Handler exposes the gin engine, e.g. for httptest.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
