package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wucyAAA/iconopaque/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the opaque icon whenever the source changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before regenerating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	c, log, err := setup(cmd)
	if err != nil {
		return err
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()
	regenerate := func() error {
		res, err := opacify(c, log)
		return report(w, c, res, err)
	}
	if err := regenerate(); err != nil {
		return err
	}

	log.Info().Str("source", c.Source).Msg("watching for changes")
	return watch.Run(ctx, c.Source, watch.Options{Debounce: debounce, Log: log}, func() {
		if err := regenerate(); err != nil {
			log.Error().Err(err).Msg("regeneration failed")
		}
	})
}
