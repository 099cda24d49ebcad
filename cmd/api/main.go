package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailortalk/config"
	_ "tailortalk/docs" // Swagger docs
	bookingHTTP "tailortalk/internal/booking/delivery/http"
	"tailortalk/internal/booking/usecase"
	"tailortalk/internal/httpserver"
	"tailortalk/internal/middleware"
	"tailortalk/internal/scheduling"
	"tailortalk/internal/session"
	"tailortalk/pkg/datemath"
	"tailortalk/pkg/gcalendar"
	"tailortalk/pkg/llmprovider"
	"tailortalk/pkg/log"
)

// @title       TailorTalk Booking API
// @description Conversational appointment booking with LLM intent extraction and Google Calendar.
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

	logger.Info(ctx, "Starting TailorTalk booking assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.GoogleCalendar.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
		timezone = "UTC"
	}

	// 4. Google Calendar client (optional)
	var calendarGW usecase.CalendarGateway
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			calendarGW = calendarClient
		}
	} else {
		logger.Warn(ctx, "Google Calendar credentials not configured; availability runs against an empty calendar")
	}

	// 5. LLM provider chain (optional — fallback extraction covers its absence)
	var textGen usecase.TextGenerator
	providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
	if provErr != nil {
		logger.Warnf(ctx, "LLM providers not available (optional): %v", provErr)
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		textGen = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTimeout,
		}, logger)
		logger.Infof(ctx, "✅ LLM provider chain initialized (%d provider(s))", len(providers))
	}

	// 6. Session store
	sessionStore := session.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL)

	// 7. Booking UseCase
	bookingUC := usecase.New(logger, textGen, calendarGW, sessionStore, dateMathParser, usecase.Config{
		Timezone:   timezone,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		WorkingHours: scheduling.WorkingHours{
			StartHour: cfg.Scheduling.WorkingHoursStart,
			EndHour:   cfg.Scheduling.WorkingHoursEnd,
		},
		StepMinutes:            cfg.Scheduling.StepMinutes,
		DefaultDurationMinutes: cfg.Scheduling.DefaultDurationMinutes,
		ScanDays:               cfg.Scheduling.ScanDays,
		SingleDayMaxSlots:      cfg.Scheduling.SingleDayMaxSlots,
		MultiDayMaxSlots:       cfg.Scheduling.MultiDayMaxSlots,
		ResponseMaxSlots:       cfg.Scheduling.ResponseMaxSlots,
	})

	// 8. Delivery + middleware
	bookingHandler := bookingHTTP.New(logger, bookingUC)
	mw := middleware.New(logger, cfg.CORS, cfg.RateLimit)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		BookingHandler: bookingHandler,
		BookingUseCase: bookingUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
