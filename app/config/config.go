package config

import "os"

// Config carries the process settings read from the environment at
// startup. The core never looks up configuration itself; the loaded
// struct is passed to whatever needs it.
type Config struct {
	Port         string
	TemplatesDir string
	StaticDir    string
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "3000"),
		TemplatesDir: getenv("TEMPLATES_DIR", "./app/templates"),
		StaticDir:    getenv("STATIC_DIR", "./static"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
