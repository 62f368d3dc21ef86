package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath            = "data-path"
	ConfigEvalFile            = "eval-file"
	ConfigPriorityFile        = "priority-file"
	ConfigDefaultDepth        = "default-depth"
	ConfigMirrorMemo          = "mirror-memo"
	ConfigRepetitionThreshold = "repetition-threshold"
	ConfigDebug               = "debug"
	ConfigCPUProfile          = "cpu-profile"
	ConfigMemProfile          = "mem-profile"

	ConfigAutoplayGames       = "autoplay-games"
	ConfigAutoplayThreads     = "autoplay-threads"
	ConfigAutoplayDepth       = "autoplay-depth"
	ConfigAutoplayRandomPlies = "autoplay-random-plies"
	ConfigAutoplayMaxPlies    = "autoplay-max-plies"
	ConfigAutoplayLog         = "autoplay-log"
	ConfigAutoplaySeedFile    = "autoplay-seed-file"
)

// Config holds every setting. Flags win over OCTI_* environment
// variables, which win over an octi.yaml found in the data path.
type Config struct {
	*viper.Viper
	args []string
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("octi", pflag.ContinueOnError)
	fs.String(ConfigDataPath, "./data", "directory holding weight documents and octi.yaml")
	fs.String(ConfigEvalFile, "eval.yaml", "evaluation weights, relative to the data path")
	fs.String(ConfigPriorityFile, "priority.yaml", "move ordering weights, relative to the data path")
	fs.Int(ConfigDefaultDepth, 3, "search depth used when none is given")
	fs.Bool(ConfigMirrorMemo, true, "also look up the mirrored position in the memo table")
	fs.Int(ConfigRepetitionThreshold, 4, "capture chains longer than this are checked for repeated states")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.String(ConfigMemProfile, "", "file to write a memory profile to")

	fs.Int(ConfigAutoplayGames, 100, "number of games autoplay runs")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "number of autoplay workers")
	fs.Int(ConfigAutoplayDepth, 2, "search depth for autoplay")
	fs.Int(ConfigAutoplayRandomPlies, 2, "random opening plies per autoplay game")
	fs.Int(ConfigAutoplayMaxPlies, 200, "autoplay games longer than this are called a draw")
	fs.String(ConfigAutoplayLog, "/tmp/octi-autoplay.csv", "file the autoplay game log is written to")
	fs.String(ConfigAutoplaySeedFile, "", "opening seeds are read from this file if it exists, otherwise saved to it")
	return fs
}

// Load parses args and reads the environment and the optional config file.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("octi")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("octi")
	c.SetConfigType("yaml")
	c.AddConfigPath(c.GetString(ConfigDataPath))
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// DefaultConfig is a config with every value at its default.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// Args are the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// AdjustRelativePaths resolves a relative data path against the
// executable's directory when it does not exist relative to the working
// directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	dp := c.GetString(ConfigDataPath)
	if filepath.IsAbs(dp) {
		return
	}
	if _, err := os.Stat(dp); err == nil {
		return
	}
	c.Set(ConfigDataPath, filepath.Join(basePath, dp))
}
