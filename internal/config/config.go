package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Addr        string   `yaml:"addr"`
	LogLevel    string   `yaml:"log_level"`
	LogJSON     bool     `yaml:"log_json"`
	CorsOrigins []string `yaml:"cors_origins"`
	Photos      Photos   `yaml:"photos"`
}

// Photos describes the external placeholder-image source. Images reference a
// photo by numeric id in [1, max_id]; the URL embeds fixed dimensions.
type Photos struct {
	BaseUrl string `yaml:"base_url"`
	MaxId   int    `yaml:"max_id"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var cfg Config
	mustLoadPath(path.Join(configFolder, "public.yaml"), &cfg)
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Photos.BaseUrl == "" {
		c.Photos.BaseUrl = "https://picsum.photos"
	}
	if c.Photos.MaxId == 0 {
		c.Photos.MaxId = 999
	}
	if c.Photos.Width == 0 {
		c.Photos.Width = 800
	}
	if c.Photos.Height == 0 {
		c.Photos.Height = 600
	}
}

// Default returns a config with built-in defaults, without touching the
// filesystem. Used by tests.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
