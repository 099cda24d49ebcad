package usecase

import (
	"context"
	"time"

	"tailortalk/internal/scheduling"
	"tailortalk/internal/session"
	"tailortalk/pkg/datemath"
	"tailortalk/pkg/gcalendar"
	"tailortalk/pkg/llmprovider"
	pkgLog "tailortalk/pkg/log"
)

// CalendarGateway is the slice of the calendar client the booking pipeline
// needs: reading busy periods and writing one event.
type CalendarGateway interface {
	FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// TextGenerator is the slice of the LLM provider manager the pipeline needs.
type TextGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the scheduling behavior of the booking pipeline.
type Config struct {
	Timezone               string
	CalendarID             string
	WorkingHours           scheduling.WorkingHours
	StepMinutes            int
	DefaultDurationMinutes int
	ScanDays               int
	SingleDayMaxSlots      int
	MultiDayMaxSlots       int
	ResponseMaxSlots       int
}

func (c *Config) applyDefaults() {
	if c.WorkingHours.StartHour == 0 && c.WorkingHours.EndHour == 0 {
		c.WorkingHours = scheduling.WorkingHours{StartHour: 9, EndHour: 17}
	}
	if c.StepMinutes <= 0 {
		c.StepMinutes = scheduling.DefaultStepMinutes
	}
	if c.DefaultDurationMinutes <= 0 {
		c.DefaultDurationMinutes = 60
	}
	if c.ScanDays <= 0 {
		c.ScanDays = 7
	}
	if c.SingleDayMaxSlots <= 0 {
		c.SingleDayMaxSlots = 10
	}
	if c.MultiDayMaxSlots <= 0 {
		c.MultiDayMaxSlots = 5
	}
	if c.ResponseMaxSlots <= 0 {
		c.ResponseMaxSlots = 3
	}
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      TextGenerator
	calendar CalendarGateway
	sessions *session.Store
	dateMath *datemath.Parser
	cfg      Config

	// now is stubbed in tests
	now func() time.Time
}

// New creates a new booking UseCase instance. calendar may be nil when no
// Google credentials are configured; availability then degrades gracefully.
func New(
	l pkgLog.Logger,
	llm TextGenerator,
	calendar CalendarGateway,
	sessions *session.Store,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	cfg.applyDefaults()
	return &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		sessions: sessions,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
