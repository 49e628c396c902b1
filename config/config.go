// Package config layers wordladder settings: built-in defaults, an optional
// YAML file, WORDLADDER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// Setting keys.
const (
	KeyConfigFile      = "config"
	KeyDictionaryDir   = "dictionary-dir"
	KeyDictionaryFiles = "dictionary-files"
	KeyStrategy        = "strategy"
	KeySeparator       = "separator"
	KeyMaxSteps        = "max-steps"
	KeyDebug           = "debug"
)

// EnvPrefix prefixes environment overrides, e.g. WORDLADDER_DICTIONARY_DIR.
const EnvPrefix = "WORDLADDER"

// Config wraps a viper instance holding the effective settings.
type Config struct {
	*viper.Viper
}

// New returns a Config with defaults and environment binding in place.
func New() *Config {
	v := viper.New()
	v.SetDefault(KeyDictionaryDir, "./data")
	v.SetDefault(KeyDictionaryFiles, defaultFiles())
	v.SetDefault(KeyStrategy, string(ladder.StrategyPairwise))
	v.SetDefault(KeySeparator, ladder.DefaultSeparator)
	v.SetDefault(KeyMaxSteps, 0)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{Viper: v}
}

// RegisterFlags declares the flags Load understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfigFile, "", "path to a YAML config file")
	fs.String(KeyDictionaryDir, "./data", "directory holding the words.N dictionary files")
	fs.String(KeyStrategy, string(ladder.StrategyPairwise), "graph build strategy: pairwise or bucket")
	fs.String(KeySeparator, ladder.DefaultSeparator, "separator printed between ladder words")
	fs.Int(KeyMaxSteps, 0, "longest ladder to consider, in steps (0 = unlimited)")
	fs.Bool(KeyDebug, false, "enable debug logging")
}

// Load binds fs (flags override everything else) and reads the config file
// named by the config flag or WORDLADDER_CONFIG, if any.
func (c *Config) Load(fs *pflag.FlagSet) error {
	if fs != nil {
		if err := c.BindPFlags(fs); err != nil {
			return fmt.Errorf("config: bind flags: %w", err)
		}
	}
	if path := c.GetString(KeyConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %q: %w", path, err)
		}
	}
	if _, err := ladder.ParseStrategy(c.GetString(KeyStrategy)); err != nil {
		return err
	}
	if _, err := c.DictionaryFiles(); err != nil {
		return err
	}

	return nil
}

// DictionaryDir returns the directory holding dictionary files.
func (c *Config) DictionaryDir() string { return c.GetString(KeyDictionaryDir) }

// DictionaryFiles returns the length → file table.
func (c *Config) DictionaryFiles() (map[int]string, error) {
	raw := c.GetStringMapString(KeyDictionaryFiles)
	out := make(map[int]string, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(k)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: %s: bad word length %q", KeyDictionaryFiles, k)
		}
		out[n] = v
	}

	return out, nil
}

// Strategy returns the graph build strategy.
func (c *Config) Strategy() ladder.Strategy {
	s, err := ladder.ParseStrategy(c.GetString(KeyStrategy))
	if err != nil {
		return ladder.StrategyPairwise
	}

	return s
}

// Separator returns the ladder separator.
func (c *Config) Separator() string { return c.GetString(KeySeparator) }

// MaxSteps returns the ladder step limit, 0 for none.
func (c *Config) MaxSteps() int { return c.GetInt(KeyMaxSteps) }

// Debug reports whether debug logging is on.
func (c *Config) Debug() bool { return c.GetBool(KeyDebug) }

// Settings is the serializable view of the effective configuration.
type Settings struct {
	DictionaryDir   string         `yaml:"dictionary-dir"`
	DictionaryFiles map[int]string `yaml:"dictionary-files"`
	Strategy        string         `yaml:"strategy"`
	Separator       string         `yaml:"separator"`
	MaxSteps        int            `yaml:"max-steps"`
	Debug           bool           `yaml:"debug"`
}

// Settings returns the effective configuration.
func (c *Config) Settings() Settings {
	files, _ := c.DictionaryFiles()

	return Settings{
		DictionaryDir:   c.DictionaryDir(),
		DictionaryFiles: files,
		Strategy:        string(c.Strategy()),
		Separator:       c.Separator(),
		MaxSteps:        c.MaxSteps(),
		Debug:           c.Debug(),
	}
}

// defaultFiles renders dictionary.DefaultFiles with string keys, the shape
// viper returns for maps read from YAML.
func defaultFiles() map[string]string {
	return lo.MapKeys(dictionary.DefaultFiles(), func(_ string, length int) string {
		return strconv.Itoa(length)
	})
}
