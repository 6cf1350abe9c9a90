package dataset

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataRoot = "data"
	DefaultFileExt  = ".jjf"
)

type Config struct {
	DataRoot      string        `yaml:"dataRoot" json:"dataRoot"`
	FileExt       string        `yaml:"fileExt" json:"fileExt"`
	ReadCacheTTL  time.Duration `yaml:"readCacheTTL" json:"readCacheTTL"`
	DefaultBounds *Bounds       `yaml:"defaultBounds,omitempty" json:"defaultBounds,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		DataRoot: DefaultDataRoot,
		FileExt:  DefaultFileExt,
	}
}

func LoadConfig(file string) (cfg *Config, err error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return
	}

	cfg = DefaultConfig()

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil

		return
	}

	cfg.fix()

	if cfg.DefaultBounds != nil {
		if err = cfg.DefaultBounds.Validate(); err != nil {
			cfg = nil

			return
		}
	}

	return
}

func (cfg *Config) fix() {
	if cfg.DataRoot == "" {
		cfg.DataRoot = DefaultDataRoot
	}

	if cfg.FileExt == "" {
		cfg.FileExt = DefaultFileExt
	}

	if cfg.ReadCacheTTL < 0 {
		cfg.ReadCacheTTL = 0
	}
}

func (cfg *Config) bounds() Bounds {
	if cfg.DefaultBounds == nil || cfg.DefaultBounds.Validate() != nil {
		return DefaultBounds()
	}

	return *cfg.DefaultBounds
}
