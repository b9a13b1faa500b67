package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerrl/internal/util"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/rules"
)

// Rules are the table rules every simulated hand is played with
type Rules struct {
	Variant    string  `yaml:"variant" envconfig:"variant"`
	NumPlayers int     `yaml:"numPlayers" envconfig:"num_players"`
	SmallBlind float64 `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   float64 `yaml:"bigBlind" envconfig:"big_blind"`
	// StackSize is the starting stack of every seat unless Stacks is set
	StackSize float64   `yaml:"stackSize" envconfig:"stack_size"`
	Stacks    []float64 `yaml:"stacks,omitempty" envconfig:"stacks"`
	BetSizes  []float64 `yaml:"betSizes" envconfig:"bet_sizes"`
	BetLimit  string    `yaml:"betLimit" envconfig:"bet_limit"`
}

// Config provides configuration for the poker engine tools
type Config struct {
	loaded     bool
	Rules      Rules `yaml:"rules"`
	Simulation struct {
		Hands   int `yaml:"hands" envconfig:"hands"`
		Workers int `yaml:"workers" envconfig:"workers"`
		// Seed of the first hand. Each hand after it uses the next seed.
		Seed int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"simulation"`
	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	def := rules.Default()

	var c Config
	c.Rules = Rules{
		Variant:    string(def.Variant),
		NumPlayers: def.NumPlayers,
		SmallBlind: def.SmallBlind.Float64(),
		BigBlind:   def.BigBlind.Float64(),
		StackSize:  def.Stack(1).Float64(),
		BetSizes:   append([]float64(nil), def.BetSizes...),
		BetLimit:   string(def.Limit),
	}
	c.Simulation.Hands = 1000
	c.Simulation.Workers = 4
	c.Simulation.Seed = 1
	c.Log.Level = "info"
	c.Log.Format = "text"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing file leaves the defaults in place. Environment variables prefixed
// with POKERRL_ take precedence over the file.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("POKERRL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("pokerrl", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// ToRules converts the rules section into an engine configuration
func (c Config) ToRules() (rules.Config, error) {
	variant, err := rules.VariantFromString(c.Rules.Variant)
	if err != nil {
		return rules.Config{}, err
	}

	limit, err := rules.LimitFromString(c.Rules.BetLimit)
	if err != nil {
		return rules.Config{}, err
	}

	stacks := rules.UniformStacks(c.Rules.NumPlayers, chips.FromFloat(c.Rules.StackSize))
	if len(c.Rules.Stacks) > 0 {
		stacks = make([]chips.Chips, len(c.Rules.Stacks))
		for i, stack := range c.Rules.Stacks {
			stacks[i] = chips.FromFloat(stack)
		}
	}

	cfg := rules.Config{
		Variant:    variant,
		NumPlayers: c.Rules.NumPlayers,
		SmallBlind: chips.FromFloat(c.Rules.SmallBlind),
		BigBlind:   chips.FromFloat(c.Rules.BigBlind),
		Stacks:     stacks,
		BetSizes:   append([]float64(nil), c.Rules.BetSizes...),
		Limit:      limit,
	}

	if err := cfg.Validate(); err != nil {
		return rules.Config{}, err
	}

	return cfg, nil
}
