//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/shlex"
	"github.com/merliot/trng"
	"github.com/merliot/trng/entropy"
	"github.com/merliot/trng/serial"
	"gopkg.in/yaml.v2"
)

// config for the host console.  Flags override env vars, env vars override
// the config file, and the file overrides defaults.
type config struct {
	Port    string `yaml:"port"`
	Baud    int    `yaml:"baud"`
	Source  string `yaml:"source"`
	TTY     bool   `yaml:"tty"`
	JSON    bool   `yaml:"json"`
	Mirror  bool   `yaml:"mirror"`
	LockDir string `yaml:"lockdir"`
	Id      string `yaml:"id"`
	Name    string `yaml:"name"`
	List    bool   `yaml:"-"`
}

func defaultConfig() config {
	return config{
		Baud:   serial.DefaultBaud,
		Source: entropy.NameGetrandom,
		Id:     "trng_01",
		Name:   "console",
	}
}

// loadFile overlays the YAML config file at path onto cfg
func (cfg *config) loadFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(bytes, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays TRNG_* env vars onto cfg
func (cfg *config) loadEnv() {
	cfg.Port = trng.GetEnv("TRNG_PORT", cfg.Port)
	cfg.Baud = trng.GetEnvInt("TRNG_BAUD", cfg.Baud)
	cfg.Source = trng.GetEnv("TRNG_SOURCE", cfg.Source)
	cfg.LockDir = trng.GetEnv("TRNG_LOCKDIR", cfg.LockDir)
	cfg.Id = trng.GetEnv("TRNG_ID", cfg.Id)
	cfg.Name = trng.GetEnv("TRNG_NAME", cfg.Name)
}

// envArgs returns the extra command line args in TRNG_ARGS, split with shell
// quoting rules
func envArgs() ([]string, error) {
	args, err := shlex.Split(trng.GetEnv("TRNG_ARGS", ""))
	if err != nil {
		return nil, fmt.Errorf("parsing TRNG_ARGS: %w", err)
	}
	return args, nil
}

// parseConfig builds the config from defaults, the config file, env vars and
// args, in that order
func parseConfig(args []string) (config, error) {
	cfg := defaultConfig()

	extra, err := envArgs()
	if err != nil {
		return cfg, err
	}
	args = append(extra, args...)

	fs := flag.NewFlagSet("trng", flag.ContinueOnError)
	file := fs.String("config", trng.GetEnv("TRNG_CONFIG", ""), "YAML config file")
	port := fs.String("port", "", "serial port device, e.g. /dev/ttyUSB0")
	baud := fs.Int("baud", 0, "serial port baud rate")
	source := fs.String("source", "", "entropy source: getrandom or hwrng")
	tty := fs.Bool("tty", false, "serve the local terminal instead of a serial port")
	jsonOut := fs.Bool("json", false, "reply with JSON lines instead of framed text")
	mirror := fs.Bool("mirror", false, "mirror replies to stdout")
	lockDir := fs.String("lockdir", "", "directory for port lock files")
	list := fs.Bool("list", false, "list serial ports and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *file != "" {
		if err := cfg.loadFile(*file); err != nil {
			return cfg, err
		}
	}
	cfg.loadEnv()

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "baud":
			cfg.Baud = *baud
		case "source":
			cfg.Source = *source
		case "tty":
			cfg.TTY = *tty
		case "json":
			cfg.JSON = *jsonOut
		case "mirror":
			cfg.Mirror = *mirror
		case "lockdir":
			cfg.LockDir = *lockDir
		}
	})
	cfg.List = *list

	if !cfg.List && !cfg.TTY && cfg.Port == "" {
		return cfg, fmt.Errorf("one of -port or -tty is required")
	}
	return cfg, nil
}
