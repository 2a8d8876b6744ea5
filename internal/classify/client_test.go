package classify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClassify_SendsURLAsJSON(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"phishing"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/predict")
	result, err := c.Classify(context.Background(), "http://example.com")
	if err != nil {
		t.Fatal(err)
	}

	if result != "phishing" {
		t.Errorf("result = %q, want phishing", result)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["url"] != "http://example.com" {
		t.Errorf("body url = %q", gotBody["url"])
	}
}

func TestClassify_PassesThroughUnknownResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"suspicious"}`))
	}))
	defer srv.Close()

	result, err := New(srv.URL).Classify(context.Background(), "http://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if result != "suspicious" {
		t.Errorf("result = %q, want suspicious", result)
	}
}

func TestClassify_NonStringResults(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing result", `{"details":"nothing"}`, ""},
		{"null result", `{"result":null}`, "null"},
		{"number result", `{"result":5}`, "5"},
		{"object result", `{"result":{"score":0.9}}`, `{"score":0.9}`},
		{"array body", `["phishing"]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := New(srv.URL).Classify(context.Background(), "http://example.com")
			if err != nil {
				t.Fatalf("Classify() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-json body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"result":"error","details":"boom"}`))
		}},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"result":"error","details":"URL not provided"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(srv.URL).Classify(context.Background(), "http://example.com")
			if !errors.Is(err, ErrBackend) {
				t.Errorf("expected ErrBackend, got %v", err)
			}
		})
	}
}

func TestClassify_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := New(endpoint).Classify(context.Background(), "http://example.com")
	if !errors.Is(err, ErrBackend) {
		t.Errorf("expected ErrBackend, got %v", err)
	}
}

func TestClassify_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"result":"legitimate"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetTimeout(20 * time.Millisecond)
	_, err := c.Classify(context.Background(), "http://example.com")
	if !errors.Is(err, ErrBackend) {
		t.Errorf("expected ErrBackend on timeout, got %v", err)
	}
}

func TestClassify_UnsupportedProxyScheme(t *testing.T) {
	c := New("http://127.0.0.1:1/predict")
	c.SetProxy("ftp://proxy.example.com", "")

	_, err := c.Classify(context.Background(), "http://example.com")
	if !errors.Is(err, ErrBackend) {
		t.Errorf("expected ErrBackend, got %v", err)
	}
}

func TestNew_DefaultEndpoint(t *testing.T) {
	if got := New("").Endpoint(); got != DefaultEndpoint {
		t.Errorf("Endpoint() = %q, want %q", got, DefaultEndpoint)
	}
}

func TestShouldBypassProxy(t *testing.T) {
	hosts := parseNoProxy(" localhost, .internal.example.com ,,127.0.0.1")

	tests := []struct {
		host string
		want bool
	}{
		{"localhost", true},
		{"LOCALHOST", true},
		{"127.0.0.1", true},
		{"api.internal.example.com", true},
		{"example.com", false},
	}
	for _, tt := range tests {
		if got := shouldBypassProxy(tt.host, hosts); got != tt.want {
			t.Errorf("shouldBypassProxy(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}
