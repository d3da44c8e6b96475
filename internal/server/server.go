// Package server exposes a small status HTTP endpoint next to the bot.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"calobot/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Status is the /status response body.
type Status struct {
	Uptime          string `json:"uptime"`
	Sessions        int    `json:"sessions"`
	EnabledSessions int    `json:"enabledSessions"`
}

// NewRouter builds the status router over the session store.
func NewRouter(sessions *repository.Sessions, startedAt time.Time) chi.Router {
	r := chi.NewRouter()

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		total, enabled := sessions.Counts()
		st := Status{
			Uptime:          time.Since(startedAt).Round(time.Second).String(),
			Sessions:        total,
			EnabledSessions: enabled,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(st); err != nil {
			logrus.WithError(err).Error("Failed to encode status response")
		}
	})

	return r
}

// Run starts the status server in the background. A listen failure is
// logged, not fatal: the bot keeps running without the endpoint.
func Run(addr string, sessions *repository.Sessions) {
	router := NewRouter(sessions, time.Now())
	go func() {
		logrus.Infof("Status server listening on %s", addr)
		if err := http.ListenAndServe(addr, router); err != nil {
			logrus.WithError(err).Error("Status server stopped")
		}
	}()
}
