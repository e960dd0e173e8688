package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/advent/internal/days"
	"github.com/mesh-intelligence/advent/internal/days/day01"
	"github.com/mesh-intelligence/advent/internal/days/day09"
	"github.com/mesh-intelligence/advent/internal/days/day15"
	"github.com/mesh-intelligence/advent/internal/days/day17"
	"github.com/mesh-intelligence/advent/internal/days/day23"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir  = "data_dir"
	cfgKeyInputDir = "input_dir"
	cfgKeyJobs     = "jobs"
	cfgKeyParams   = "params"

	defaultJobs = 1
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir  string                    `yaml:"data_dir,omitempty"`
	InputDir string                    `yaml:"input_dir,omitempty"`
	Jobs     int                       `yaml:"jobs"`
	Params   map[string]map[string]int `yaml:"params"`
}

// defaultConfig lists every tunable with the value the solver uses when the
// key is absent.
func defaultConfig() configFile {
	return configFile{
		Jobs: defaultJobs,
		Params: map[string]map[string]int{
			"day01": {"target": day01.DefaultTarget},
			"day09": {"preamble": day09.DefaultPreamble},
			"day15": {"turns1": day15.DefaultTurns1, "turns2": day15.DefaultTurns2},
			"day17": {"cycles": day17.DefaultCycles},
			"day23": {"moves": day23.DefaultMoves, "cups": day23.DefaultCups, "bigmoves": day23.DefaultBigMoves},
		},
	}
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt)); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyJobs, defaultJobs)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// dayParams reads a day's tunables from params.<dayNN>.<key>.
type dayParams struct {
	v   *viper.Viper
	day string
}

// Int implements puzzle.Params.
func (p dayParams) Int(key string, def int) int {
	k := cfgKeyParams + "." + p.day + "." + key
	if !p.v.IsSet(k) {
		return def
	}
	return p.v.GetInt(k)
}

func (a *app) params(d days.Day) puzzle.Params {
	return dayParams{v: a.cfg, day: d.Key()}
}
