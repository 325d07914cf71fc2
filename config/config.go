// Package config loads game settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/tavernbrawl/battle"
)

// Config holds every setting the game reads at startup.
type Config struct {
	SaveFile     string `env:"TAVERN_SAVE_FILE" envDefault:"saved_cards.json"`
	AssetsDir    string `env:"TAVERN_ASSETS_DIR" envDefault:"assets"`
	Seed         uint64 `env:"TAVERN_SEED"`
	FinalStage   int    `env:"TAVERN_FINAL_STAGE" envDefault:"5"`
	PlayerHealth int    `env:"TAVERN_PLAYER_HEALTH" envDefault:"30"`
	MinMelee     int    `env:"TAVERN_MIN_MELEE" envDefault:"2"`
	MaxMelee     int    `env:"TAVERN_MAX_MELEE" envDefault:"4"`
	Debug        bool   `env:"TAVERN_DEBUG"`
	ScreenWidth  int    `env:"TAVERN_SCREEN_WIDTH" envDefault:"1200"`
	ScreenHeight int    `env:"TAVERN_SCREEN_HEIGHT" envDefault:"800"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that the loader cannot express.
func (c Config) Validate() error {
	if c.FinalStage < 1 {
		return fmt.Errorf("TAVERN_FINAL_STAGE must be at least 1, got %d", c.FinalStage)
	}
	if c.PlayerHealth < 1 {
		return fmt.Errorf("TAVERN_PLAYER_HEALTH must be at least 1, got %d", c.PlayerHealth)
	}
	if c.MinMelee < 0 || c.MaxMelee < c.MinMelee {
		return fmt.Errorf("invalid melee range [%d, %d]", c.MinMelee, c.MaxMelee)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// Battle returns the battle rules described by the configuration.
func (c Config) Battle() battle.Config {
	rules := battle.DefaultConfig()
	rules.FinalStage = c.FinalStage
	rules.PlayerHealth = c.PlayerHealth
	rules.MinMelee = c.MinMelee
	rules.MaxMelee = c.MaxMelee
	return rules
}
