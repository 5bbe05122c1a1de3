package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "weather-widget"),
		PropertiesFilePath: getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFilePath:   getStringOrDefault("MESSAGES_FILE_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
