// internal/config/settings.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings is the runtime configuration of the simulation.
type Settings struct {
	Sim     SimSettings     `mapstructure:"sim"`
	Economy EconomySettings `mapstructure:"economy"`
	Server  ServerSettings  `mapstructure:"server"`
}

// SimSettings controls the tick loop and the pooled entity budget.
type SimSettings struct {
	TickRate     int     `mapstructure:"tick_rate"`
	AuraInterval float64 `mapstructure:"aura_interval"`
	PoolPrewarm  int     `mapstructure:"pool_prewarm"`
	MapRadius    int     `mapstructure:"map_radius"`
	Lives        int     `mapstructure:"lives"`
	Seed         int64   `mapstructure:"seed"`
}

// EconomySettings controls the currency ledger.
type EconomySettings struct {
	StartingGold       int     `mapstructure:"starting_gold"`
	WaveBonusBase      int     `mapstructure:"wave_bonus_base"`
	WaveBonusIncrement int     `mapstructure:"wave_bonus_increment"`
	InterestEnabled    bool    `mapstructure:"interest_enabled"`
	InterestRate       float64 `mapstructure:"interest_rate"`
	InterestCap        int     `mapstructure:"interest_cap"`
}

// ServerSettings controls the HUD event stream endpoint.
type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

// Load reads settings from the given file, falling back to defaults for
// anything missing. Environment variables override file values.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("sim.tick_rate", 60)
	v.SetDefault("sim.aura_interval", DefaultAuraInterval)
	v.SetDefault("sim.pool_prewarm", DefaultPoolPrewarm)
	v.SetDefault("sim.map_radius", MapRadius)
	v.SetDefault("sim.lives", BaseLives)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("economy.starting_gold", DefaultStartingGold)
	v.SetDefault("economy.wave_bonus_base", DefaultWaveBonusBase)
	v.SetDefault("economy.wave_bonus_increment", DefaultWaveBonusIncrement)
	v.SetDefault("economy.interest_enabled", true)
	v.SetDefault("economy.interest_rate", DefaultInterestRate)
	v.SetDefault("economy.interest_cap", DefaultInterestCap)
	v.SetDefault("server.addr", ":8080")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

// Default returns the built-in settings without touching the filesystem.
func Default() *Settings {
	s, _ := Load("")
	return s
}
