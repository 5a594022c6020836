package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string       `yaml:"version" json:"version"`
	Server  ServerConfig `yaml:"server" json:"server"`
	Tasks   TasksConfig  `yaml:"tasks" json:"tasks"`
}

type ServerConfig struct {
	Addr       string `yaml:"addr" json:"addr"`
	DiskStatic bool   `yaml:"disk_static" json:"disk_static"`
	StaticDir  string `yaml:"static_dir" json:"static_dir"`
}

type TasksConfig struct {
	// DefaultSort orders the list when the request carries no ?sort=.
	// "" keeps insertion order; "title" and "due_date" are the two
	// supported keys.
	DefaultSort string `yaml:"default_sort" json:"default_sort"`
}

func Default() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			Addr:      ":8080",
			StaticDir: "static",
		},
		Tasks: TasksConfig{
			DefaultSort: "",
		},
	}
}

// Load reads a YAML config file and applies environment overrides. A
// missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FromEnv(cfg), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = Default().Server.Addr
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = Default().Server.StaticDir
	}

	return FromEnv(cfg), nil
}
