// Package config loads gamehub configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gamehub/internal/games"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Games []GameEntry
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ToastDurationMS int    `mapstructure:"toast_duration_ms"`
	CardStaggerMS   int    `mapstructure:"card_stagger_ms"`
	Theme           string `mapstructure:"theme"`
}

// GameEntry is one catalog entry as written in the config file.
type GameEntry struct {
	ID       string `mapstructure:"id"`
	Title    string `mapstructure:"title"`
	Icon     string `mapstructure:"icon"`
	Status   string `mapstructure:"status"`
	Gradient string `mapstructure:"gradient"`
	Command  string `mapstructure:"command"`
}

// Load reads configuration from file and env. Env var overrides use prefix GAMEHUB_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.toast_duration_ms", 3000)
	v.SetDefault("ui.card_stagger_ms", 80)
	v.SetDefault("ui.theme", "default")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GAMEHUB_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gamehub"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GAMEHUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// ToastDuration returns the configured toast duration.
func (c Config) ToastDuration() time.Duration {
	if c.UI.ToastDurationMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.UI.ToastDurationMS) * time.Millisecond
}

// Catalog converts the configured game entries to a games.Catalog.
// An empty config falls back to the built-in catalog. Entrance delays are
// assigned from the configured stagger in catalog order.
func (c Config) Catalog() games.Catalog {
	if len(c.Games) == 0 {
		return games.Default()
	}
	stagger := time.Duration(c.UI.CardStaggerMS) * time.Millisecond
	if stagger < 0 {
		stagger = 0
	}
	out := make([]games.Game, 0, len(c.Games))
	for i, e := range c.Games {
		if e.ID == "" {
			continue
		}
		title := e.Title
		if title == "" {
			title = e.ID
		}
		out = append(out, games.Game{
			ID:             e.ID,
			Title:          title,
			Icon:           e.Icon,
			Status:         games.ParseStatus(e.Status),
			Gradient:       e.Gradient,
			Command:        e.Command,
			AnimationDelay: time.Duration(i) * stagger,
		})
	}
	if len(out) == 0 {
		return games.Default()
	}
	return games.Catalog{Games: out}
}
