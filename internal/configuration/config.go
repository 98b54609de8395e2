package configuration

import (
	"cashregister/internal/console"
	"cashregister/internal/database"
	"cashregister/internal/logger"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	InitialItemID   int
	InitialCapacity int
	LedgerCapacity  int
	ItemLimits      database.ItemLimits
	MenuRetries     int
	DateLayout      string
	RandomSeed      int64
	LogLevel        logger.Level
	LogToFile       bool
	LogFile         string
}

type tomlConfig struct {
	InitialItemID   int    `toml:"initial_item_id"`
	InitialCapacity int    `toml:"initial_capacity"`
	LedgerCapacity  int    `toml:"ledger_capacity"`
	MinItemCount    int    `toml:"min_item_count"`
	MaxItemCount    int    `toml:"max_item_count"`
	MinItemPrice    int    `toml:"min_item_price"`
	MaxItemPrice    int    `toml:"max_item_price"`
	MaxInsert       int    `toml:"max_insert"`
	MenuRetries     int    `toml:"menu_retries"`
	DateLayout      string `toml:"date_layout"`
	RandomSeed      int64  `toml:"random_seed"`
	LogLevel        string `toml:"log_level"`
	LogToFile       bool   `toml:"log_to_file"`
	LogFile         string `toml:"log_file"`
}

func defaultTomlConfig() tomlConfig {
	return tomlConfig{
		InitialItemID:   1000,
		InitialCapacity: 10,
		LedgerCapacity:  database.DefaultLedgerCapacity,
		MinItemCount:    database.DefaultItemLimits.MinCount,
		MaxItemCount:    database.DefaultItemLimits.MaxCount,
		MinItemPrice:    database.DefaultItemLimits.MinPrice,
		MaxItemPrice:    database.DefaultItemLimits.MaxPrice,
		MaxInsert:       database.DefaultItemLimits.MaxInsert,
		MenuRetries:     3,
		DateLayout:      console.DateLayout,
		LogLevel:        "ERROR",
		LogFile:         "cashregister.log",
	}
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	c, err := defaultTomlConfig().toConfig()
	if err != nil {
		panic(err)
	}
	return c
}

// GetConfig decodes the TOML file at path on top of the defaults.
func GetConfig(path string) (*Config, error) {
	tc := defaultTomlConfig()
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}
	c, err := tc.toConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", path)
	}
	return c, nil
}

func (tc tomlConfig) toConfig() (*Config, error) {
	if tc.InitialItemID < 0 {
		return nil, errors.Errorf("initial_item_id must not be negative: %d", tc.InitialItemID)
	}
	if tc.InitialCapacity < 0 {
		return nil, errors.Errorf("initial_capacity must not be negative: %d", tc.InitialCapacity)
	}
	if tc.LedgerCapacity < 0 {
		return nil, errors.Errorf("ledger_capacity must not be negative (0 means unbounded): %d", tc.LedgerCapacity)
	}
	if tc.MinItemCount < 1 || tc.MaxItemCount < tc.MinItemCount {
		return nil, errors.Errorf("invalid item count range: [%d, %d]", tc.MinItemCount, tc.MaxItemCount)
	}
	if tc.MinItemPrice < 1 || tc.MaxItemPrice < tc.MinItemPrice {
		return nil, errors.Errorf("invalid item price range: [%d, %d]", tc.MinItemPrice, tc.MaxItemPrice)
	}
	if tc.MaxInsert < 1 {
		return nil, errors.Errorf("max_insert must be at least 1: %d", tc.MaxInsert)
	}
	if tc.MenuRetries < 1 {
		return nil, errors.Errorf("menu_retries must be at least 1: %d", tc.MenuRetries)
	}
	if tc.DateLayout == "" {
		return nil, errors.New("date_layout is not set")
	}

	level, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse log_level")
	}

	if tc.LogToFile && tc.LogFile == "" {
		return nil, errors.New("log_to_file is enabled but log_file is not set")
	}

	return &Config{
		InitialItemID:   tc.InitialItemID,
		InitialCapacity: tc.InitialCapacity,
		LedgerCapacity:  tc.LedgerCapacity,
		ItemLimits: database.ItemLimits{
			MinCount:  tc.MinItemCount,
			MaxCount:  tc.MaxItemCount,
			MinPrice:  tc.MinItemPrice,
			MaxPrice:  tc.MaxItemPrice,
			MaxInsert: tc.MaxInsert,
		},
		MenuRetries: tc.MenuRetries,
		DateLayout:  tc.DateLayout,
		RandomSeed:  tc.RandomSeed,
		LogLevel:    level,
		LogToFile:   tc.LogToFile,
		LogFile:     tc.LogFile,
	}, nil
}
