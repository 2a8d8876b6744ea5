package classify

import (
	"context"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func tlsBackend(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"legitimate"}`))
	}))
	t.Cleanup(srv.Close)

	caPath := filepath.Join(t.TempDir(), "ca.pem")
	block := &pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw}
	if err := os.WriteFile(caPath, pem.EncodeToMemory(block), 0644); err != nil {
		t.Fatal(err)
	}
	return srv, caPath
}

func TestClassify_TLS(t *testing.T) {
	srv, caPath := tlsBackend(t)

	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr bool
	}{
		{"untrusted certificate", TLSConfig{}, true},
		{"private CA", TLSConfig{CAFile: caPath}, false},
		{"skip verify", TLSConfig{InsecureSkipVerify: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(srv.URL + "/predict")
			c.SetTLS(tt.tls)

			result, err := c.Classify(context.Background(), "https://example.com")
			if tt.wantErr {
				if !errors.Is(err, ErrBackend) {
					t.Errorf("expected ErrBackend, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify() failed: %v", err)
			}
			if result != "legitimate" {
				t.Errorf("result = %q", result)
			}
		})
	}
}

func TestTLSConfig_BuildErrors(t *testing.T) {
	dir := t.TempDir()
	badPEM := filepath.Join(dir, "bad.pem")
	os.WriteFile(badPEM, []byte("not a certificate"), 0644)

	tests := []struct {
		name string
		cfg  TLSConfig
	}{
		{"missing CA file", TLSConfig{CAFile: filepath.Join(dir, "none.pem")}},
		{"CA file without certificates", TLSConfig{CAFile: badPEM}},
		{"cert without key", TLSConfig{CertFile: badPEM}},
		{"unreadable key pair", TLSConfig{CertFile: badPEM, KeyFile: badPEM}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.build(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTLSConfig_IsZero(t *testing.T) {
	if !(TLSConfig{}).IsZero() {
		t.Error("zero value should be empty")
	}
	if (TLSConfig{InsecureSkipVerify: true}).IsZero() {
		t.Error("InsecureSkipVerify should count as a setting")
	}
	if got, err := (TLSConfig{}).build(); got != nil || err != nil {
		t.Errorf("build() of zero value = %v, %v", got, err)
	}
}
