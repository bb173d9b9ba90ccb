package rest

import (
	"context"
	"net/http"
	"time"

	"land-catalog/internal/contextkeys"
	core_port "land-catalog/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// Handlers - все обработчики API, собранные в composition root
type Handlers struct {
	Plots    *PlotHandler
	Quiz     *QuizHandler
	Contacts *ContactHandler
	Inquiry  *InquiryHandler
	Requests *ContactRequestHandler
}

// NewRouter собирает маршруты API. Используется сервером и тестами.
func NewRouter(h Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", contextkeys.TraceIDHeader},
		ExposedHeaders: []string{contextkeys.TraceIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/plots", h.Plots.SearchPlots)
		r.Get("/plots/{plotID}", h.Plots.GetPlotDetails)

		r.Get("/quiz/questions", h.Quiz.ListQuestions)
		r.Post("/quiz/submit", h.Quiz.Submit)

		r.Get("/contacts", h.Contacts.GetContact)
		r.Put("/contacts", h.Contacts.PutContact)

		r.Post("/inquiries", h.Inquiry.CreateInquiry)
		r.Post("/requests", h.Requests.Create)
	})

	return r
}

func NewServer(port string, h Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(h, allowedOrigins, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
