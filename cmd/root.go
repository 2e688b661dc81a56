package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pstankie/adms-gen/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "adms-gen",
	Short: "Repeater directory to ADMS-14 memory CSV generator",
	Long:  "Fetches the przemienniki.net repeater directory, keeps repeaters within a radius of a grid locator, and writes a Yaesu FT-5D (ADMS-14) memory-channel import CSV.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
