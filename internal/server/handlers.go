package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/extract"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/models"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, nil); err != nil {
		s.log.Error("failed to render index page", zap.Error(err))
	}
}

func (s *Server) verifyPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	switch err := s.service.VerifyPassword(req.Password); {
	case err == nil:
		id := uuid.New().String()
		s.sessions.SetSession(id, s.sessionTTL)
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			Expires:  time.Now().Add(s.sessionTTL),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, models.VerifyPasswordResponse{Success: true, Authenticated: true})
	case errors.Is(err, service.ErrWrongPassword):
		writeJSON(w, http.StatusUnauthorized, models.VerifyPasswordResponse{})
	case errors.Is(err, service.ErrPasswordNotConfigured):
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Password not configured"})
	default:
		s.log.Error("password verification failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

// requireSession guards an endpoint behind the gate. The overlay on the page
// is only a visual block; this is the actual enforcement.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || !s.sessions.SessionValid(cookie.Value) {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Not authenticated"})
			return
		}
		next(w, r)
	}
}

func (s *Server) generateFlashcardsHandler(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Content-Type must be application/json"})
		return
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid file_content encoding"})
		return
	}

	cards, err := s.service.Generate(r.Context(), content, req.FileType)
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		Success:    true,
		Flashcards: cards,
		Count:      len(cards),
	})
}

func (s *Server) writeGenerateError(w http.ResponseWriter, err error) {
	var exErr *extract.Error
	switch {
	case errors.As(err, &exErr):
		if exErr.Kind == extract.KindUnsupportedType {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Unsupported file type"})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:      exErr.Kind,
			Message:    exErr.Message,
			PageCount:  exErr.PageCount,
			MaxAllowed: exErr.MaxAllowed,
		})
	case errors.Is(err, service.ErrNoText):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Could not extract text from file"})
	case errors.Is(err, service.ErrAPIKeyNotConfigured):
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "OpenAI API key not configured"})
	default:
		s.log.Error("flashcard generation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}
