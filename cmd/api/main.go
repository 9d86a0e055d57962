package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"actionsense/config"
	_ "actionsense/docs" // Swagger docs
	"actionsense/internal/actionsense"
	asUC "actionsense/internal/actionsense/usecase"
	"actionsense/internal/httpserver"
	"actionsense/internal/schedule"
	schUC "actionsense/internal/schedule/usecase"
	"actionsense/pkg/datemath"
	"actionsense/pkg/gcalendar"
	"actionsense/pkg/gemini"
	"actionsense/pkg/log"
)

// @title       ActionSense API
// @description Korean relative date resolution, chat action detection and calendar scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ActionSense...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date resolver
	rules, err := datemath.RuleSetFor(cfg.Datemath.RuleVersion)
	if err != nil {
		logger.Error(ctx, "Invalid date rules: ", err)
		return
	}
	resolver, err := datemath.NewResolver(cfg.Datemath.Timezone, rules)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Datemath.Timezone, err)
		if resolver, err = datemath.NewResolver("UTC", rules); err != nil {
			logger.Error(ctx, "Failed to build date resolver: ", err)
			return
		}
	}

	// 4. Gemini LLM client (optional)
	var extractor actionsense.ActionItemExtractor
	if cfg.Gemini.APIKey != "" {
		geminiClient, gErr := gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			APIURL:  cfg.Gemini.APIURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Gemini not available (optional): %v", gErr)
		} else {
			extractor = geminiClient
			logger.Infof(ctx, "Gemini initialized (model %s)", geminiClient.Model())
		}
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, LLM fallback disabled")
	}

	// 5. Google Calendar client (optional)
	var calendar schedule.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate the token file")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	defaultStart, err := schedule.ParseClock(cfg.Schedule.DefaultStart)
	if err != nil {
		logger.Error(ctx, "Invalid schedule default start: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		Resolver:       resolver,
		StoreSize:      cfg.ActionSense.StoreSize,
		Extractor:      extractor,
		ActionSenseOptions: asUC.Options{
			AutoRegisterThreshold: cfg.ActionSense.AutoRegisterThreshold,
			LLMFallbackThreshold:  cfg.ActionSense.LLMFallbackThreshold,
			LLMFallbackEnabled:    cfg.ActionSense.LLMFallbackEnabled,
		},
		Calendar: calendar,
		ScheduleOptions: schUC.Options{
			DefaultStart:    defaultStart,
			DefaultDuration: cfg.Schedule.DefaultDuration,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
