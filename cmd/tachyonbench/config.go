package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is one harness run. Values come from an optional YAML file; flags
// given on the command line win.
type Config struct {
	Iterations int    `yaml:"iterations"`
	Capacity   int    `yaml:"capacity"`
	NoEscape   bool   `yaml:"no_escape"`
	Fixture    string `yaml:"fixture"`
	Compare    bool   `yaml:"compare"`
	Print      bool   `yaml:"print"`
	Compress   bool   `yaml:"compress"`
	CPUProfile string `yaml:"cpu_profile"`
	MemProfile string `yaml:"mem_profile"`
}

func DefaultConfig() Config {
	return Config{
		Iterations: 100000,
		Capacity:   64 * 1024,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.New("iterations must be positive")
	}
	if c.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	return nil
}

func parseArgs(args []string) (Config, error) {
	var configPath string
	flags := DefaultConfig()

	fs := pflag.NewFlagSet("tachyonbench", pflag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "YAML run file")
	fs.IntVarP(&flags.Iterations, "iterations", "n", flags.Iterations, "encodes to run")
	fs.IntVar(&flags.Capacity, "capacity", flags.Capacity, "buffer capacity in bytes")
	fs.BoolVar(&flags.NoEscape, "no-escape", false, "copy string values verbatim")
	fs.StringVarP(&flags.Fixture, "fixture", "f", "", "YAML or JSON document to encode (default: built-in sample)")
	fs.BoolVar(&flags.Compare, "compare", false, "also time jsoniter on the same tree")
	fs.BoolVar(&flags.Print, "print", false, "write the encoded document to stdout")
	fs.BoolVar(&flags.Compress, "zstd", false, "report the zstd-compressed size of the output")
	fs.StringVar(&flags.CPUProfile, "cpuprofile", "", "write a CPU profile")
	fs.StringVar(&flags.MemProfile, "memprofile", "", "write a heap profile")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "iterations":
			cfg.Iterations = flags.Iterations
		case "capacity":
			cfg.Capacity = flags.Capacity
		case "no-escape":
			cfg.NoEscape = flags.NoEscape
		case "fixture":
			cfg.Fixture = flags.Fixture
		case "compare":
			cfg.Compare = flags.Compare
		case "print":
			cfg.Print = flags.Print
		case "zstd":
			cfg.Compress = flags.Compress
		case "cpuprofile":
			cfg.CPUProfile = flags.CPUProfile
		case "memprofile":
			cfg.MemProfile = flags.MemProfile
		}
	})
	return cfg, cfg.Validate()
}
