package web

import (
	"context"
	"net/http"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"
)

const sessionCookie = "cloudio_sid"

type ctxKey int

const sessionIDKey ctxKey = 0

// withSession makes sure every visitor carries a session id cookie.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			if _, perr := uuid.Parse(c.Value); perr == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// loadState never fails the request: a broken store just means a fresh state.
func (s *Server) loadState(ctx context.Context) *models.ViewState {
	id := sessionID(ctx)
	st, err := s.sessions.Load(ctx, id)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "load session failed",
			Fields:  map[string]any{"session": id},
			Error:   err,
		})
	}
	if st == nil {
		st = &models.ViewState{}
	}
	return st
}

func (s *Server) saveState(ctx context.Context, st *models.ViewState) {
	id := sessionID(ctx)
	if err := s.sessions.Save(ctx, id, st); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "save session failed",
			Fields:  map[string]any{"session": id},
			Error:   err,
		})
	}
}
