package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tailortalk/internal/booking"
	bookingHTTP "tailortalk/internal/booking/delivery/http"
	"tailortalk/internal/middleware"
	"tailortalk/pkg/log"
)

// HTTPServer wraps the Gin engine and the domain handlers it serves.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw             middleware.Middleware
	bookingHandler bookingHTTP.Handler
	bookingUC      booking.UseCase
}

// Config carries everything the HTTP server needs to register its routes.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware     middleware.Middleware
	BookingHandler bookingHTTP.Handler
	BookingUseCase booking.UseCase
}

func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:            gin.New(),
		l:              l,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		bookingHandler: cfg.BookingHandler,
		bookingUC:      cfg.BookingUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port <= 0 {
		return errors.New("port is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.bookingHandler == nil {
		return errors.New("booking handler is required")
	}
	if srv.bookingUC == nil {
		return errors.New("booking usecase is required")
	}
	return nil
}
