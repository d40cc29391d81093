package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApp_Structure(t *testing.T) {
	app := App()

	if app.Name != "iotlab-cli" {
		t.Errorf("Name = %q, want iotlab-cli", app.Name)
	}
	if !app.DisableSliceFlagSeparator {
		t.Error("slice flag separator must be disabled for node lists")
	}

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	want := []string{"node", "experiment", "profile", "resources", "sites"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	var flags []string
	for _, f := range app.Flags {
		flags = append(flags, f.Names()[0])
	}
	for _, name := range []string{"user", "password", "api-url", "output", "timeout", "max-rps", "metrics-file"} {
		found := false
		for _, f := range flags {
			if f == name {
				found = true
			}
		}
		if !found {
			t.Errorf("global flag --%s missing", name)
		}
	}
}

func TestSites_NoCredentials(t *testing.T) {
	server := newMockServer(t, 200, `{"items":[{"site":"grenoble"}]}`)
	isolateEnv(t)

	app := App()
	var out strings.Builder
	app.Writer = &out
	if err := app.Run([]string{"iotlab-cli", "--api-url", server.URL + "/rest", "sites"}); err != nil {
		t.Fatalf("sites error = %v", err)
	}

	reqs := server.Requests()
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if reqs[0].Path != "/rest/experiments" || reqs[0].RawQuery != "sites" {
		t.Errorf("request = %s?%s, want /rest/experiments?sites", reqs[0].Path, reqs[0].RawQuery)
	}
	if reqs[0].User != "" {
		t.Errorf("sites sent credentials for %q", reqs[0].User)
	}
	if !strings.Contains(out.String(), "grenoble") {
		t.Errorf("output = %q", out.String())
	}
}

func TestMissingCredentials(t *testing.T) {
	server := newMockServer(t, 200, `{}`)
	isolateEnv(t)

	app := App()
	app.Writer = &strings.Builder{}
	err := app.Run([]string{"iotlab-cli", "--api-url", server.URL, "resources"})
	if err == nil {
		t.Fatal("expected missing credentials error")
	}
	if n := len(server.Requests()); n != 0 {
		t.Errorf("requests = %d, want 0", n)
	}
}

func TestOutputFormats(t *testing.T) {
	server := newMockServer(t, 200, `{"items":[{"id":42,"state":"Running"}]}`)

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"state": "Running"`},
		{format: "yaml", want: "state: Running"},
		{format: "table", want: "ID"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := runApp(t, server, "-o", tt.format, "experiment", "list")
			if err != nil {
				t.Fatalf("experiment list error = %v", err)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("output = %q, want it to contain %q", stdout, tt.want)
			}
		})
	}
}

func TestRawResultPrintedAsIs(t *testing.T) {
	server := newMockServer(t, 200, "1-34+72")

	stdout, _, err := runApp(t, server, "resources", "--id-list", "--site", "grenoble")
	if err != nil {
		t.Fatalf("resources error = %v", err)
	}
	if stdout != "1-34+72\n" {
		t.Errorf("output = %q, want raw text", stdout)
	}
}

func TestMetricsFileWrittenAtExit(t *testing.T) {
	server := newMockServer(t, 200, `{"items":[]}`)
	path := filepath.Join(t.TempDir(), "iotlab.prom")

	if _, _, err := runApp(t, server, "--metrics-file", path, "experiment", "list"); err != nil {
		t.Fatalf("experiment list error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), `iotlab_http_requests_total{code="200",verb="GET"} 1`) {
		t.Errorf("metrics file = %s", data)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	server := newMockServer(t, 200, `{}`)

	stdout, stderr, err := runApp(t, server, "-V", "profile", "list")
	if err != nil {
		t.Fatalf("profile list error = %v", err)
	}
	if !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("stderr = %q, want debug log", stderr)
	}
	if strings.Contains(stderr, "s3cret") {
		t.Error("password leaked into the log")
	}
	if strings.Contains(stdout, "level=") {
		t.Errorf("log lines leaked into stdout: %q", stdout)
	}
}
