// Package ui exposes the population service over HTTP.
package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ShuleiCao/halotools/app"
	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/internal"
)

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	config  Config
	service *app.PopulationService
	logger  *internal.Logger
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp creates the HTTP application and mounts its routes.
func NewApp(config Config, service *app.PopulationService) *App {
	a := &App{
		router:  chi.NewRouter(),
		config:  config,
		service: service,
		logger:  internal.DefaultLogger.Named("ui"),
	}

	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/health", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Post("/populate", a.handlePopulate)
		r.Get("/runs", a.handleListRuns)
		r.Get("/runs/{id}", a.handleGetRun)
	})

	return a
}

// Router returns the HTTP handler, for serving and for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the configured port.
func (a *App) Start() error {
	a.logger.Info("listening on :%s", a.config.Port)
	return http.ListenAndServe(":"+a.config.Port, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handlePopulate(w http.ResponseWriter, r *http.Request) {
	var req PopulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	model, err := req.BuildModel()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.service.Populate(r.Context(), app.PopulateRequest{
		Model:     model,
		Seed:      req.Seed,
		Threshold: req.Threshold,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsConfigError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, NewPopulateResponse(result))
}

func (a *App) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	runs, err := a.service.ListRuns(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"runs": runs})
}

func (a *App) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := core.RunID(chi.URLParam(r, "id"))
	run, err := a.service.GetRun(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsNotFoundError(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
