// Package server exposes the analysis pipeline over HTTP for the reporting
// UI. It holds uploaded statements in memory and serves every aggregate as
// plain JSON; the UI renders charts, tables and exports on its own from
// these snapshots.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tollscope/tollscope/internal/analytics"
	"github.com/tollscope/tollscope/internal/config"
	"github.com/tollscope/tollscope/internal/plaza"
	"github.com/tollscope/tollscope/internal/report"
	"github.com/tollscope/tollscope/internal/toll"
)

// Server wires the dataset store, plaza directory and analysis pipeline
// into an HTTP surface.
type Server struct {
	store  *Store
	plazas *plaza.Directory
	cfg    *config.Config
	log    zerolog.Logger
}

func New(cfg *config.Config, plazas *plaza.Directory, log zerolog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if plazas == nil {
		plazas = plaza.Default()
	}
	return &Server{
		store:  NewStore(),
		plazas: plazas,
		cfg:    cfg,
		log:    log.With().Str("component", "server").Logger(),
	}
}

// Routes builds the router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/statements", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(s.datasetCtx)
			r.Get("/", s.handleDataset)
			r.Delete("/", s.handleDelete)
			r.Get("/report", s.handleReport)
			r.Get("/days/{date}", s.handleDayBreakdown)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleUpload reads one statement file from a multipart form, normalizes
// it and snapshots the result. A FormatError fails the whole upload with a
// single human-readable message and leaves no partial dataset behind.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "could not read upload: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, `upload must carry a "file" form field`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "could not read upload: "+err.Error())
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		s.respondError(w, r, http.StatusRequestEntityTooLarge, "statement exceeds the upload size limit")
		return
	}

	records, err := toll.Normalize(data)
	if err != nil {
		var formatErr *toll.FormatError
		if errors.As(err, &formatErr) {
			s.respondError(w, r, http.StatusUnprocessableEntity, formatErr.Error())
			return
		}
		s.respondError(w, r, http.StatusInternalServerError, "failed to normalize statement")
		return
	}

	ds := s.store.Add(header.Filename, toll.DetectFormat(data), records)
	s.log.Info().
		Str("dataset", ds.ID.String()).
		Str("file", ds.FileName).
		Int("records", len(records)).
		Msg("statement uploaded")

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"id":          ds.ID,
		"file_name":   ds.FileName,
		"format":      ds.Format,
		"uploaded_at": ds.UploadedAt,
		"records":     len(ds.Records),
	})
}

type ctxKey string

const datasetKey ctxKey = "dataset"

func withDataset(ctx context.Context, ds *Dataset) context.Context {
	return context.WithValue(ctx, datasetKey, ds)
}

func datasetFrom(r *http.Request) *Dataset {
	return r.Context().Value(datasetKey).(*Dataset)
}

// datasetCtx validates the {id} parameter and loads the dataset.
func (s *Server) datasetCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			s.respondError(w, r, http.StatusBadRequest, "invalid statement id")
			return
		}
		ds, ok := s.store.Get(id)
		if !ok {
			s.respondError(w, r, http.StatusNotFound, "statement not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(withDataset(r.Context(), ds)))
	})
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	ds := datasetFrom(r)
	render.JSON(w, r, map[string]any{
		"id":          ds.ID,
		"file_name":   ds.FileName,
		"format":      ds.Format,
		"uploaded_at": ds.UploadedAt,
		"records":     len(ds.Records),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ds := datasetFrom(r)
	s.store.Remove(ds.ID)
	render.NoContent(w, r)
}

// handleReport recomputes the full analysis snapshot for the requested
// period. Every call is independent and stateless; a superseded request is
// simply discarded by the client.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ds := datasetFrom(r)
	opts, err := s.reportOptions(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	render.JSON(w, r, report.Build(ds.Records, opts, s.plazas))
}

// handleDayBreakdown serves the per-location breakdown for one calendar
// day of the filtered view.
func (s *Server) handleDayBreakdown(w http.ResponseWriter, r *http.Request) {
	ds := datasetFrom(r)
	opts, err := s.reportOptions(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	render.JSON(w, r, map[string]any{
		"day":       day.Format("2006-01-02"),
		"locations": report.DayBreakdown(ds.Records, opts, day, s.plazas),
	})
}

func (s *Server) reportOptions(r *http.Request) (report.Options, error) {
	q := r.URL.Query()
	period, err := analytics.ParsePeriod(q.Get("period"), q.Get("anchor"), q.Get("start"), q.Get("end"))
	if err != nil {
		return report.Options{}, err
	}
	opts := report.Options{
		Period:   period,
		Tags:     analytics.ParseTags(q.Get("tags")),
		TopLimit: s.cfg.TopLocationsLimit,
	}
	if v := q.Get("top"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return report.Options{}, errors.New("top must be a positive integer")
		}
		opts.TopLimit = limit
	}
	return opts, nil
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.log.Warn().Int("status", status).Str("path", r.URL.Path).Msg(msg)
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}
