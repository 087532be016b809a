// Package httpapi exposes the operation registry over a JSON REST
// façade. Like the native adapter it contains no business logic: every
// endpoint is a thin encoding layer over the shared dispatcher.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cantonlabs/ledgerview/internal/core"
	"github.com/cantonlabs/ledgerview/internal/dispatch"
	"github.com/cantonlabs/ledgerview/internal/errors"
	"github.com/charmbracelet/log"
)

// Server serves the REST façade. Requests run concurrently on the
// standard net/http model; the dispatcher and document store are safe
// for that.
type Server struct {
	cfg        *core.Config
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger
}

// New creates an HTTP server over the given dispatcher.
func New(cfg *core.Config, dispatcher *dispatch.Dispatcher, logger *log.Logger) *Server {
	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Response shapes. Tool failures ride inside a 200 body with the
// isError flag; only a truly unknown name or URI becomes a 404.

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type resourceInfo struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResponse struct {
	Content []contentItem `json:"content"`
	IsError bool          `json:"isError"`
}

type resourceContents struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType"`
	Text     string `json:"text"`
}

type readResponse struct {
	Contents []resourceContents `json:"contents"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /tools", s.handleListTools)
	mux.HandleFunc("POST /tools/{name}/call", s.handleCallTool)
	mux.HandleFunc("GET /resources", s.handleListResources)
	mux.HandleFunc("POST /resources/read", s.handleReadResource)

	return s.withMiddleware(mux)
}

// ListenAndServe starts the HTTP listener on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", "addr", s.cfg.Addr())
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.Handler(),
	}
	return srv.ListenAndServe()
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Canton Ledgerview Assistant API",
		"status":  "running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	tools := s.dispatcher.Registry().Tools()
	infos := make([]toolInfo, 0, len(tools))
	for _, tool := range tools {
		infos = append(infos, toolInfo{Name: tool.Name, Description: tool.Description})
	}
	s.writeJSON(w, http.StatusOK, map[string][]toolInfo{"tools": infos})
}

func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var body struct {
		Arguments map[string]any `json:"arguments"`
	}
	// An empty body means no arguments; anything else must parse.
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	result, err := s.dispatcher.CallTool(name, body.Arguments)
	if err != nil {
		// The one case surfaced as a status code: no such tool exists.
		if errors.Is(err, errors.CodeToolNotFound) {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		result = dispatch.Err(err.Error())
	}

	s.writeJSON(w, http.StatusOK, callResponse{
		Content: []contentItem{{Type: "text", Text: result.Text}},
		IsError: result.IsError,
	})
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources := s.dispatcher.Registry().Resources()
	infos := make([]resourceInfo, 0, len(resources))
	for _, res := range resources {
		infos = append(infos, resourceInfo{Name: res.Name, URI: res.URI, MIMEType: res.MIMEType})
	}
	s.writeJSON(w, http.StatusOK, map[string][]resourceInfo{"resources": infos})
}

func (s *Server) handleReadResource(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URI string `json:"uri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	text, err := s.dispatcher.ReadResource(body.URI)
	if err != nil {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	res, _ := s.dispatcher.Registry().Resource(body.URI)
	s.writeJSON(w, http.StatusOK, readResponse{
		Contents: []resourceContents{{
			URI:      body.URI,
			MIMEType: res.MIMEType,
			Text:     text,
		}},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
