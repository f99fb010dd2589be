// Package httpapi serves game sessions over HTTP.
//
//	POST /sessions                 start a session, optional {"dictionary": [...]}
//	GET  /sessions/{id}            current state
//	POST /sessions/{id}/turns      {"guess": "crane", "feedback": "rrygr"}
//	POST /sessions/{id}/solved     the player has won
//	GET  /health
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/powellquiring/wordlehelper/dictionary"
	"github.com/powellquiring/wordlehelper/wordle"
)

type Config struct {
	Dictionary []string // used when a request does not bring its own
	WordLength int
	// NewFilter returns the filter for a session dictionary, wordle.Scan if nil
	NewFilter func(words []string) wordle.Filter
	Logger    zerolog.Logger
}

type Server struct {
	r             *chi.Mux
	cfg           Config
	store         *memory
	defaultFilter wordle.Filter
}

// View is the JSON form of a session
type View struct {
	ID         string   `json:"id"`
	LastGuess  string   `json:"lastGuess"`
	Candidates []string `json:"candidates"`
	Count      int      `json:"count"`
	Turns      int      `json:"turns"`
	Terminated bool     `json:"terminated"`
	Solved     bool     `json:"solved"`
}

type newSessionRequest struct {
	Dictionary []string `json:"dictionary"`
}

type turnRequest struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

func New(cfg Config) *Server {
	if cfg.WordLength <= 0 {
		cfg.WordLength = wordle.DefaultWordLength
	}
	if cfg.NewFilter == nil {
		cfg.NewFilter = func([]string) wordle.Filter { return wordle.Scan }
	}
	s := &Server{
		r:             chi.NewRouter(),
		cfg:           cfg,
		store:         newMemory(),
		defaultFilter: cfg.NewFilter(cfg.Dictionary),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(hlog.NewHandler(cfg.Logger))
	s.r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", chimw.GetReqID(r.Context())).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	}))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.store.len()})
	})
	s.r.Post("/sessions", s.handleNewSession)
	s.r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetSession)
		r.Post("/turns", s.handleTurn)
		r.Post("/solved", s.handleSolved)
	})
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	return s
}

func (s *Server) Router() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	words, filter := s.cfg.Dictionary, s.defaultFilter
	if len(req.Dictionary) > 0 {
		var err error
		words, err = dictionary.Load(strings.NewReader(strings.Join(req.Dictionary, "\n")), dictionary.Options{WordLength: s.cfg.WordLength})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter = s.cfg.NewFilter(words)
	}
	session := wordle.NewSession(words,
		wordle.WithWordLength(s.cfg.WordLength),
		wordle.WithFilter(filter),
		wordle.WithLogger(*hlog.FromRequest(r)),
	)
	e := s.store.add(session)
	hlog.FromRequest(r).Info().Str("session", e.id).Int("words", len(words)).Msg("session started")
	e.mu.Lock()
	defer e.mu.Unlock()
	writeJSON(w, http.StatusCreated, view(e))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	writeJSON(w, http.StatusOK, view(e))
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	turn, err := wordle.ParseTurn(req.Guess, req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.session.ApplyTurn(turn); err != nil {
		switch {
		case errors.Is(err, wordle.ErrSessionTerminated):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, wordle.ErrMalformedTurn):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, view(e))
}

func (s *Server) handleSolved(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.MarkSolved()
	writeJSON(w, http.StatusOK, view(e))
}

func (s *Server) entry(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	e, err := s.store.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return e, true
}

// view must be called with e.mu held
func view(e *entry) View {
	candidates := e.session.Candidates()
	return View{
		ID:         e.id,
		LastGuess:  e.session.LastGuess(),
		Candidates: candidates,
		Count:      len(candidates),
		Turns:      e.session.Turns(),
		Terminated: e.session.IsTerminated(),
		Solved:     e.session.Solved(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
