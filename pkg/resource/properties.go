package resource

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"weather-widget/configs"
	"weather-widget/pkg/log"
)

var (
	props      = viper.New()
	propsMutex sync.RWMutex
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

func init() {
	Init(configs.Env.PropertiesFilePath)
}

// Init loads application properties from filepath, falling back to the bundled
// application.yml when the file cannot be read. ${ENV:default} placeholders are
// resolved against the process environment.
func Init(filepath string) {
	v := viper.New()
	v.SetConfigType("yml")

	content, err := os.ReadFile(filepath)
	if err != nil {
		log.Debugf("Properties file %s not readable, using bundled defaults: %v", filepath, err)
		content = configs.ApplicationYAML
	}

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		log.Errorf("Fail to read properties: %v", err)
		return
	}

	resolved := viper.New()
	parsePropertiesMap("", v.AllSettings(), resolved)

	propsMutex.Lock()
	props = resolved
	propsMutex.Unlock()
}

// parsePropertiesMap walks the YAML tree and stores every leaf under its dotted key
func parsePropertiesMap(prefix string, data map[string]any, target *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			target.Set(fullKey, resolveEnvVariable(v))
		case map[string]any:
			parsePropertiesMap(fullKey, v, target)
		default:
			target.Set(fullKey, v)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} placeholder. Values without a
// placeholder are returned unchanged.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return value
	}
	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// Set overrides a single property at runtime.
func Set(key string, value any) {
	propsMutex.Lock()
	defer propsMutex.Unlock()
	props.Set(key, value)
}

func current() *viper.Viper {
	propsMutex.RLock()
	defer propsMutex.RUnlock()
	return props
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns defaultValue when the property is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetFloat64(key string) float64 {
	return current().GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
