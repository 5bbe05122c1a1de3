package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("WIDGET_TEST_SET", "from-env")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain value", value: "plain", want: "plain"},
		{name: "env set", value: "${WIDGET_TEST_SET:fallback}", want: "from-env"},
		{name: "env unset uses default", value: "${WIDGET_TEST_UNSET:fallback}", want: "fallback"},
		{name: "empty default", value: "${WIDGET_TEST_UNSET:}", want: ""},
		{name: "no default", value: "${WIDGET_TEST_UNSET}", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.value); got != tt.want {
				t.Errorf("resolveEnvVariable(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestInit_ReadsNestedKeys(t *testing.T) {
	t.Setenv("WIDGET_TEST_PORT", "9090")
	path := writeProperties(t, `
app:
  server:
    port: ${WIDGET_TEST_PORT:8080}
    context-path: /api
  refresh: 5m
  enabled: true
`)
	Init(path)

	if got := GetString("app.server.port"); got != "9090" {
		t.Errorf("app.server.port = %q, want %q", got, "9090")
	}
	if got := GetInt("app.server.port"); got != 9090 {
		t.Errorf("GetInt(app.server.port) = %d, want 9090", got)
	}
	if got := GetString("app.server.context-path"); got != "/api" {
		t.Errorf("app.server.context-path = %q, want %q", got, "/api")
	}
	if got := GetDuration("app.refresh"); got != 5*time.Minute {
		t.Errorf("app.refresh = %v, want 5m", got)
	}
	if !GetBool("app.enabled") {
		t.Errorf("app.enabled = false, want true")
	}
}

func TestInit_FallsBackToBundledDefaults(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "missing.yml"))

	if got := GetStringOrDefault("app.storage.backend", "none"); got == "none" {
		t.Fatalf("app.storage.backend not loaded from bundled defaults")
	}
	if got := GetStringOrDefault("app.does-not-exist", "fallback"); got != "fallback" {
		t.Errorf("GetStringOrDefault = %q, want %q", got, "fallback")
	}
}
