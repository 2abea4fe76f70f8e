package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"
)

var (
	ErrUnknownAction = errors.New("unknown key action")
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrInvalidValue  = errors.New("invalid value")
)

// Actions the key map may bind.
const (
	ActionBack   = "back"
	ActionQuit   = "quit"
	ActionDialog = "dialog"
	ActionMenu   = "menu"
	ActionWizard = "wizard"
	ActionAttack = "attack"
	ActionHeal   = "heal"
	ActionUp     = "up"
	ActionDown   = "down"
)

var defaultKeys = map[string][]string{
	ActionBack:   {"esc", "backspace"},
	ActionQuit:   {"q", "ctrl+c"},
	ActionDialog: {"o"},
	ActionMenu:   {"m"},
	ActionWizard: {"w"},
	ActionAttack: {"a"},
	ActionHeal:   {"h"},
	ActionUp:     {"up", "k"},
	ActionDown:   {"down", "j"},
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Config holds application configuration.
type Config struct {
	Keys   map[string][]string
	Player PlayerConfig
	Enemy  EnemyConfig
	Log    LogConfig
}

// PlayerConfig holds the starting player state.
type PlayerConfig struct {
	Health int
	Heal   int
	Attack int
}

// EnemyConfig holds the training dummy settings.
type EnemyConfig struct {
	Name   string
	Health int
	Damage int
}

// LogConfig holds logging settings. File defaults to the XDG state dir.
type LogConfig struct {
	Level string
	File  string
}

// Path returns the config file location. BACKSTACK_CONFIG wins over the XDG default.
func Path() string {
	if p := os.Getenv("BACKSTACK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "backstack", "config.toml")
}

// DefaultLogFile is where logs go when log.file is unset.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, "backstack", "backstack.log")
}

// Load reads configuration from path (or Path() when empty) and env.
// Env var overrides use prefix BACKSTACK_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	for action, keys := range defaultKeys {
		v.SetDefault("keys."+action, keys)
	}
	v.SetDefault("player.health", 10)
	v.SetDefault("player.heal", 2)
	v.SetDefault("player.attack", 1)
	v.SetDefault("enemy.name", "Training dummy")
	v.SetDefault("enemy.health", 10)
	v.SetDefault("enemy.damage", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", DefaultLogFile())

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("BACKSTACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Keys = mergeKeys(c.Keys)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// mergeKeys fills actions the file left out with their defaults.
func mergeKeys(keys map[string][]string) map[string][]string {
	out := make(map[string][]string, len(defaultKeys))
	for action, k := range defaultKeys {
		out[action] = slices.Clone(k)
	}
	for action, k := range keys {
		out[strings.ToLower(action)] = k
	}
	return out
}

// Validate rejects unknown actions, unknown log levels and non-positive stats.
func (c Config) Validate() error {
	known := KnownActions()
	for action, keys := range c.Keys {
		if !slices.Contains(known, action) {
			return fmt.Errorf("%w %q%s", ErrUnknownAction, action, suggest(action, known))
		}
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: %w: no keys bound", action, ErrInvalidValue)
		}
	}
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(logLevels, level) {
		return fmt.Errorf("%w %q%s", ErrUnknownLevel, c.Log.Level, suggest(level, logLevels))
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player.health: %w: %d", ErrInvalidValue, c.Player.Health)
	}
	if c.Enemy.Health <= 0 {
		return fmt.Errorf("enemy.health: %w: %d", ErrInvalidValue, c.Enemy.Health)
	}
	if c.Enemy.Damage < 0 || c.Player.Heal < 0 || c.Player.Attack < 0 {
		return fmt.Errorf("enemy.damage, player.heal, player.attack: %w: must not be negative", ErrInvalidValue)
	}
	return nil
}

// KnownActions lists every bindable action, sorted.
func KnownActions() []string {
	out := make([]string, 0, len(defaultKeys))
	for action := range defaultKeys {
		out = append(out, action)
	}
	sort.Strings(out)
	return out
}

// suggest returns a " (did you mean ...)" hint for close misspellings.
func suggest(got string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(got, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > 2 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// Save writes the provided config to path (or Path() when empty), creating
// the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}
	v.Set("player.health", cfg.Player.Health)
	v.Set("player.heal", cfg.Player.Heal)
	v.Set("player.attack", cfg.Player.Attack)
	v.Set("enemy.name", cfg.Enemy.Name)
	v.Set("enemy.health", cfg.Enemy.Health)
	v.Set("enemy.damage", cfg.Enemy.Damage)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
