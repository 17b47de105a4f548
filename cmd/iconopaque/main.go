package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wucyAAA/iconopaque/internal/config"
	"github.com/wucyAAA/iconopaque/internal/logger"
)

var (
	conf       config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "iconopaque",
	Short:         "Flatten a transparent icon onto a solid background",
	Args:          cobra.NoArgs,
	RunE:          runOpacify,
	SilenceErrors: true,
}

func init() {
	conf.WithFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directory containing "+config.FileName)
}

// setup resolves the effective configuration for cmd and builds the
// logger.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cmd.SilenceUsage = true
	c := conf
	if err := c.Load(configPath, cmd.Flags()); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	log := logger.NewConsole(c.Debug, cmd.Name())
	log.Debug().Msg(c.Dump())
	return &c, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
