package usecase

import (
	"context"

	"tailortalk/pkg/gcalendar"
	"tailortalk/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockLLM scripts the text generator; generate is swapped per test.
type mockLLM struct {
	generate func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	calls    int
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	return m.generate(ctx, req)
}

// mockCalendar is a scripted calendar gateway.
type mockCalendar struct {
	busy          []gcalendar.BusyPeriod
	freeBusyErr   error
	createdEvent  *gcalendar.Event
	createErr     error
	createCalls   int
	lastCreateReq gcalendar.CreateEventRequest
}

func (m *mockCalendar) FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error) {
	if m.freeBusyErr != nil {
		return nil, m.freeBusyErr
	}
	return m.busy, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createCalls++
	m.lastCreateReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.createdEvent != nil {
		return m.createdEvent, nil
	}
	return &gcalendar.Event{
		ID:        "evt-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/evt-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
