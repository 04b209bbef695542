package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// NotifierConfig is the subset of settings cmd/notifier needs. It does not
// require any store variables.
type NotifierConfig struct {
	RabbitURL string
	LogDir    string
	LogLevel  string
}

// LoadNotifierConfig reads .env (if any) and the notifier variables.
func LoadNotifierConfig() NotifierConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("config: could not read .env: %v", err)
	}
	return NotifierConfig{
		RabbitURL: rabbitURL(),
		LogDir:    getenv("NOTIFY_LOG_DIR", "logs"),
		LogLevel:  strings.ToUpper(getenv("LOG_LEVEL", "INFO")),
	}
}

// Level maps LOG_LEVEL onto gommon's levels.
func (c NotifierConfig) Level() log.Lvl {
	return Config{LogLevel: c.LogLevel}.Level()
}
