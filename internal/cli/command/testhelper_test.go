package command

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recorded is one request seen by mockServer.
type recorded struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	User        string
	Body        []byte
}

// mockServer answers every request with a fixed status and body.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func newMockServer(t *testing.T, status int, body string) *mockServer {
	t.Helper()
	m := &mockServer{status: status, body: body}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Close)
	return m
}

func (m *mockServer) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	user, _, _ := r.BasicAuth()

	m.mu.Lock()
	m.requests = append(m.requests, recorded{
		Method:      r.Method,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
		User:        user,
		Body:        data,
	})
	m.mu.Unlock()

	w.WriteHeader(m.status)
	_, _ = w.Write([]byte(m.body))
}

func (m *mockServer) Requests() []recorded {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]recorded(nil), m.requests...)
}

// isolateEnv points HOME at an empty directory and clears IOTLAB_*
// variables so that the developer's own account never leaks into tests.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"IOTLAB_API_URL", "IOTLAB_USERNAME", "IOTLAB_PASSWORD", "IOTLAB_OUTPUT",
		"IOTLAB_AUTH_USER", "IOTLAB_AUTH_PASSWORD", "IOTLAB_VERBOSE",
		"IOTLAB_HTTP_TIMEOUT", "IOTLAB_HTTP_CA_CERT", "IOTLAB_HTTP_MAX_RPS",
		"IOTLAB_METRICS_FILE",
	} {
		t.Setenv(name, "")
	}
	return home
}

// runApp runs the CLI against server with a test account and returns
// stdout, stderr and the run error.
func runApp(t *testing.T, server *mockServer, args ...string) (string, string, error) {
	t.Helper()
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	argv := []string{"iotlab-cli", "--api-url", server.URL + "/rest/", "-u", "alice", "-p", "s3cret"}
	argv = append(argv, args...)
	err := app.Run(argv)
	return stdout.String(), stderr.String(), err
}

// decodeJSON parses b into a generic value for comparison.
func decodeJSON(t *testing.T, b []byte) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("invalid JSON %q: %v", b, err)
	}
	return v
}
