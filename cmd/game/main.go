// bugsmash — аркада "Super Bug Smashers": мухобойкой защищаем башню от жуков.
//
// Usage:
//
//	bugsmash [play]          - Start the game (default)
//	bugsmash scores          - Show the best runs
//
// Global flags:
//
//	--config <path>     - YAML or TOML config file
//	--db <path>         - Scores database path
//	--seed <value>      - RNG seed (0 = time based)
//	--log-level <lvl>   - Overrides logging.level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-bug-smashers/internal/config"
)

var (
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bugsmash",
	Short: "Super Bug Smashers - swat the bugs before they reach the tower",
	Long: `Super Bug Smashers is a small arcade game: bugs crawl towards the
tower in the middle of the screen and you smash them with the swatter.

Examples:
  bugsmash
  bugsmash play --seed 42
  bugsmash scores --limit 20
  bugsmash scores --csv runs.csv`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig читает конфиг и применяет глобальные флаги.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Resolve(flagConfig))
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, nil
}

// setup возвращает конфиг и логгер для любой команды.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return cfg, logger, nil
}
