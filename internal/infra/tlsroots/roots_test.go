package tlsroots

import (
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// writeServerCA writes the certificate of a TLS test server as a PEM file.
func writeServerCA(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	certPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: srv.Certificate().Raw,
	})
	path := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(path, certPEM, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestNewPool(t *testing.T) {
	if NewPool().Pool() == nil {
		t.Fatal("Pool() returned nil")
	}
}

func TestAddCertPEM_NoCerts(t *testing.T) {
	pool := NewPool()

	if err := pool.AddCertPEM([]byte{}); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("AddCertPEM(empty) error = %v, want %v", err, ErrNoCertsFound)
	}
	if err := pool.AddCertPEM([]byte("not a certificate")); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("AddCertPEM(garbage) error = %v, want %v", err, ErrNoCertsFound)
	}
}

func TestAddCertPEM_InvalidCert(t *testing.T) {
	invalidPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: []byte("invalid certificate data"),
	})

	if err := NewPool().AddCertPEM(invalidPEM); err == nil {
		t.Error("AddCertPEM() expected error for invalid certificate")
	}
}

func TestAddCertFile_NotFound(t *testing.T) {
	if err := NewPool().AddCertFile("/nonexistent/path/cert.pem"); err == nil {
		t.Error("AddCertFile() expected error for nonexistent file")
	}
}

func TestClientTLSConfig_TrustsPrivateCA(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Without the CA the handshake must fail.
	plain := &http.Client{Transport: &http.Transport{TLSClientConfig: NewPool().TLSConfig()}}
	if resp, err := plain.Get(srv.URL); err == nil {
		resp.Body.Close()
		t.Fatal("request without custom CA unexpectedly succeeded")
	}

	cfg, err := ClientTLSConfig(writeServerCA(t, srv))
	if err != nil {
		t.Fatalf("ClientTLSConfig() error = %v", err)
	}
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: cfg}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request with custom CA failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestClientTLSConfig_MissingFile(t *testing.T) {
	if _, err := ClientTLSConfig("/nonexistent/ca.pem"); err == nil {
		t.Error("ClientTLSConfig() expected error for missing file")
	}
}
