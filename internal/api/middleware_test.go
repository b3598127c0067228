package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDMiddleware(t *testing.T) {
	var fromContext string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if fromContext == "" {
		t.Fatal("expected request id in context")
	}
	if header := rr.Header().Get("X-Request-ID"); header != fromContext {
		t.Errorf("header %q does not match context value %q", header, fromContext)
	}
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if id := RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("expected empty request id, got %q", id)
	}
}
