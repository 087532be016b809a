package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cantonlabs/ledgerview/internal/core"
	"github.com/cantonlabs/ledgerview/internal/dispatch"
	"github.com/charmbracelet/log"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := core.NewDocStore(filepath.Join(t.TempDir(), "docs"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	registry, err := dispatch.NewCatalog(store)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return New(core.DefaultConfig(), dispatch.NewDispatcher(registry), log.New(io.Discard))
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
}

func TestRoot(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "running" {
		t.Errorf("expected status running, got %q", body["status"])
	}
	if body["message"] == "" {
		t.Error("expected a message")
	}
}

func TestRoot_UnknownPath(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "healthy" {
		t.Errorf("expected healthy, got %q", body["status"])
	}
}

func TestListTools(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/tools", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Tools []toolInfo `json:"tools"`
	}
	decodeBody(t, rec, &body)
	if len(body.Tools) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(body.Tools))
	}
	found := false
	for _, tool := range body.Tools {
		if tool.Name == "check_server_status" {
			found = true
			if tool.Description == "" {
				t.Error("expected a description")
			}
		}
	}
	if !found {
		t.Error("expected check_server_status in listing")
	}
}

func TestCallTool_CheckServerStatus(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/tools/check_server_status/call", "{}")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body callResponse
	decodeBody(t, rec, &body)
	if body.IsError {
		t.Error("expected isError false")
	}
	if len(body.Content) != 1 || body.Content[0].Type != "text" {
		t.Fatalf("expected one text content item, got %+v", body.Content)
	}
	if body.Content[0].Text != "Server is running and healthy!" {
		t.Errorf("unexpected text: %q", body.Content[0].Text)
	}
}

func TestCallTool_EmptyBody(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/tools/check_server_status/call", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty body, got %d", rec.Code)
	}
}

func TestCallTool_UnknownName(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/tools/no_such_tool/call", "{}")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body errorResponse
	decodeBody(t, rec, &body)
	if !strings.Contains(body.Error, "no_such_tool") {
		t.Errorf("expected error naming the tool, got %q", body.Error)
	}
}

func TestCallTool_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/tools/check_server_status/call", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCallTool_ErrorResultIs200(t *testing.T) {
	s := newTestServer(t)

	// Known tool, missing required argument: agent-level failure, not a 404.
	rec := doRequest(t, s, http.MethodPost, "/tools/analyze_daml_safety/call", `{"arguments":{}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body callResponse
	decodeBody(t, rec, &body)
	if !body.IsError {
		t.Error("expected isError true")
	}
	if !strings.Contains(body.Content[0].Text, "code is required") {
		t.Errorf("expected message naming the parameter, got %q", body.Content[0].Text)
	}
}

func TestListResources(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/resources", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Resources []resourceInfo `json:"resources"`
	}
	decodeBody(t, rec, &body)
	if len(body.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(body.Resources))
	}
	for _, res := range body.Resources {
		if !strings.HasPrefix(res.URI, "canton://docs/") {
			t.Errorf("unexpected URI %q", res.URI)
		}
		if res.MIMEType != "text/plain" {
			t.Errorf("expected text/plain, got %q", res.MIMEType)
		}
	}
}

func TestReadResource(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/resources/read", `{"uri":"canton://docs/safety-gates"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body readResponse
	decodeBody(t, rec, &body)
	if len(body.Contents) != 1 {
		t.Fatalf("expected one contents item, got %d", len(body.Contents))
	}
	got := body.Contents[0]
	if got.URI != "canton://docs/safety-gates" {
		t.Errorf("unexpected URI %q", got.URI)
	}
	if got.MIMEType != "text/plain" {
		t.Errorf("expected text/plain, got %q", got.MIMEType)
	}
	if !strings.Contains(got.Text, "Canton Safety Gates Architecture") {
		t.Errorf("unexpected content %q", got.Text)
	}
}

func TestReadResource_UnknownURI(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/resources/read", `{"uri":"canton://docs/unknown-id"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body errorResponse
	decodeBody(t, rec, &body)
	if !strings.Contains(body.Error, "canton://docs/unknown-id") {
		t.Errorf("expected error naming the URI, got %q", body.Error)
	}
}

func TestReadResource_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/resources/read", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddDocumentationThenList(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/tools/add_documentation/call",
		`{"arguments":{"filename":"guide","content":"hello"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var added callResponse
	decodeBody(t, rec, &added)
	if added.IsError {
		t.Fatalf("unexpected error: %q", added.Content[0].Text)
	}

	rec = doRequest(t, s, http.MethodPost, "/tools/list_available_docs/call", "{}")
	var listing callResponse
	decodeBody(t, rec, &listing)
	if strings.Count(listing.Content[0].Text, "guide") != 1 {
		t.Errorf("expected guide exactly once in %q", listing.Content[0].Text)
	}
}
