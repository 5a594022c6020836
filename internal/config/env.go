package config

import (
	"os"
	"strings"
)

// FromEnv applies environment variable overrides on top of cfg.
// Variables that are unset or empty leave the config untouched.
func FromEnv(cfg *Config) *Config {
	if v := os.Getenv("TASKPAD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TASKPAD_STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := getEnvBool("TASKPAD_DISK_STATIC"); v != nil {
		cfg.Server.DiskStatic = *v
	}
	if v := os.Getenv("TASKPAD_DEFAULT_SORT"); v != "" {
		cfg.Tasks.DefaultSort = v
	}
	return cfg
}

func getEnvBool(key string) *bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch val {
	case "1", "true", "yes":
		b := true
		return &b
	case "0", "false", "no":
		b := false
		return &b
	}
	return nil
}
