package algoutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOptionControl(t *testing.T) {
	called := false
	h := AccessControl(OptionControl(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/v1/round/settle", nil))
	if called {
		t.Fatal("options request reached handler")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing cors header")
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/round/settle", nil))
	if !called {
		t.Fatal("post request did not reach handler")
	}
}
