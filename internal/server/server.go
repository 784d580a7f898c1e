package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/config"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/models"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/storage/cache"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AuthSI interface {
	VerifyPassword(candidate string) error
}

type FlashcardSI interface {
	Generate(ctx context.Context, content []byte, fileType string) ([]models.Flashcard, error)
}

type ServiceI interface {
	AuthSI
	FlashcardSI
}

const sessionCookie = "flashgen_session"

type Server struct {
	service    ServiceI
	sessions   *cache.Cache
	sessionTTL time.Duration
	log        *zap.Logger
	http       *http.Server
}

func New(cfg *config.Config, service ServiceI, sessions *cache.Cache, log *zap.Logger) *Server {
	s := &Server{
		service:    service,
		sessions:   sessions,
		sessionTTL: cfg.Auth.SessionTTL,
		log:        log,
	}

	s.http = &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      s.router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.healthHandler).Methods("GET")
	r.HandleFunc("/api/verify_password", s.verifyPasswordHandler).Methods("POST")
	r.HandleFunc("/api/generate_flashcards", s.requireSession(s.generateFlashcardsHandler)).Methods("POST")
	r.HandleFunc("/", s.indexHandler).Methods("GET")
	r.HandleFunc("/index.html", s.indexHandler).Methods("GET")

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	})

	return r
}

func (s *Server) Start() error {
	// Background session sweep
	go func() {
		for {
			time.Sleep(1 * time.Minute)
			s.sessions.Cleanup()
		}
	}()

	s.log.Info("starting http server", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
