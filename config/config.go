package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config wraps a viper instance holding all settings. Load it once at
// startup and pass it by value; nothing mutates it after Load. Every key can
// also be set through the environment with a JUMBLE_ prefix, e.g.
// JUMBLE_WORDLIST_PATH.
type Config struct {
	v *viper.Viper
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("jumble")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("wordlist-path", "/usr/share/dict/words")
	v.SetDefault("word-count", 5)
	v.SetDefault("allow-lengths", []int{})
	v.SetDefault("deny-lengths", []int{})
	v.SetDefault("debug", false)
	return v
}

func DefaultConfig() Config {
	return Config{v: newViper()}
}

// Load parses command-line args on top of the defaults and environment.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		c.v = newViper()
	}
	fs := flag.NewFlagSet("jumble", flag.ContinueOnError)
	wordlistPath := fs.String("wordlist-path", c.v.GetString("wordlist-path"),
		"path to the word list, one word per line")
	wordCount := fs.Int("word-count", c.v.GetInt("word-count"),
		"number of words per generated puzzle")
	allowLengths := fs.String("allow-lengths", "",
		"comma-separated word lengths to allow (empty = all)")
	denyLengths := fs.String("deny-lengths", "",
		"comma-separated word lengths to deny")
	debug := fs.Bool("debug", c.v.GetBool("debug"), "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v.Set("wordlist-path", *wordlistPath)
	c.v.Set("word-count", *wordCount)
	c.v.Set("debug", *debug)
	c.v.Set("args", fs.Args())
	for flagName, raw := range map[string]string{
		"allow-lengths": *allowLengths,
		"deny-lengths":  *denyLengths,
	} {
		if raw == "" {
			continue
		}
		lengths, err := ParseLengths(raw)
		if err != nil {
			return fmt.Errorf("flag -%s: %w", flagName, err)
		}
		c.v.Set(flagName, lengths)
	}
	return nil
}

// ParseLengths parses a comma-separated list of positive word lengths.
func ParseLengths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	lengths := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad length %q", part)
		}
		if n < 1 {
			return nil, fmt.Errorf("length must be positive, got %d", n)
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}

func (c Config) GetString(key string) string        { return c.v.GetString(key) }
func (c Config) GetStringSlice(key string) []string { return c.v.GetStringSlice(key) }
func (c Config) GetInt(key string) int              { return c.v.GetInt(key) }
func (c Config) GetBool(key string) bool            { return c.v.GetBool(key) }
func (c Config) GetIntSlice(key string) []int       { return c.v.GetIntSlice(key) }
func (c Config) Set(key string, value interface{})  { c.v.Set(key, value) }
