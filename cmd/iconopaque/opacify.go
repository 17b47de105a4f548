package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wucyAAA/iconopaque/internal/color"
	"github.com/wucyAAA/iconopaque/internal/config"
	"github.com/wucyAAA/iconopaque/internal/logger"
	"github.com/wucyAAA/iconopaque/internal/pipeline"
)

func runOpacify(cmd *cobra.Command, args []string) error {
	c, log, err := setup(cmd)
	if err != nil {
		return err
	}
	res, err := opacify(c, log)
	return report(cmd.OutOrStdout(), c, res, err)
}

func opacify(c *config.Config, log *logger.Logger) (*pipeline.Result, error) {
	bg, err := color.ParseBackground(c.Background)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("background", color.BackgroundName(bg)).Msg("flattening")
	return pipeline.Opacify(c.Source, c.Destination, pipeline.Options{
		Background: bg,
		Quality:    c.Quality,
		Log:        log,
	})
}

// report prints the outcome of a run. Failures are advisory: they are
// printed and swallowed unless the config is strict.
func report(w io.Writer, c *config.Config, res *pipeline.Result, err error) error {
	switch {
	case err == nil:
		fmt.Fprintf(w, "Original resolution: %dx%d\n", res.SrcWidth, res.SrcHeight)
		fmt.Fprintf(w, "Saved opaque icon to %s\n", c.Destination)
		return nil
	case errors.Is(err, pipeline.ErrSourceNotFound):
		fmt.Fprintf(w, "Error: %s not found.\n", c.Source)
	default:
		fmt.Fprintf(w, "An error occurred: %v\n", err)
	}
	if c.Strict {
		return err
	}
	return nil
}
