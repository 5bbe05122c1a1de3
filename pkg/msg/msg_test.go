package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := `
greeting:
  plain: "hello"
  args: "{0} has {1} cities, ratio {2}"
  error: "failed: {0}"
  duration: "every {0}"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}
	Init(path)

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{name: "plain", key: "greeting.plain", want: "hello"},
		{name: "primitives", key: "greeting.args", args: []interface{}{"Ana", 3, 0.5}, want: "Ana has 3 cities, ratio 0.5"},
		{name: "error arg", key: "greeting.error", args: []interface{}{errors.New("boom")}, want: "failed: boom"},
		{name: "stringer arg", key: "greeting.duration", args: []interface{}{5 * time.Minute}, want: "every 5m0s"},
		{name: "missing key", key: "greeting.missing", want: "Message not found: greeting.missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestInit_BundledMessages(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "missing.yml"))

	if got := GetMessage("cities.parse-failed", "weather-widget-cities"); got != "Failed to parse stored cities under key weather-widget-cities" {
		t.Errorf("GetMessage(cities.parse-failed) = %q", got)
	}
}
