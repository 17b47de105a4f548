package pipeline

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/wucyAAA/iconopaque/internal/codec"
	"github.com/wucyAAA/iconopaque/internal/flatten"
	"github.com/wucyAAA/iconopaque/internal/logger"
)

// Options controls the opacify pipeline.
type Options struct {
	Background color.Color  // canvas colour, nil means white
	Format     codec.Format // output container; Opacify derives it from the destination when empty
	Quality    int          // JPEG quality (1-100)
	Log        *logger.Logger
}

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded opaque image
	SrcWidth  int
	SrcHeight int
	SrcFormat codec.Format
}

func (o *Options) log() *logger.Logger {
	if o.Log == nil {
		return logger.Nop()
	}
	return o.Log
}

// Run executes the full pipeline in memory: decode → flatten → encode.
func Run(data []byte, opts Options) (*Result, error) {
	log := opts.log()

	// 1. Decode
	decoded, err := codec.Decode(data)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	log.Debug().
		Str("format", string(decoded.Format)).
		Int("width", decoded.Width).
		Int("height", decoded.Height).
		Msg("decoded source")

	// 2. Composite onto the background and drop alpha
	flat := flatten.Flatten(decoded.Image, opts.Background)

	// 3. Encode
	encoded, err := codec.Encode(flat, opts.Format, codec.EncoderOptions{Quality: opts.Quality})
	if err != nil {
		return nil, &Error{Kind: KindEncode, Err: err}
	}
	log.Debug().Str("format", string(opts.Format)).Int("bytes", len(encoded)).Msg("encoded output")

	return &Result{
		Data:      encoded,
		SrcWidth:  decoded.Width,
		SrcHeight: decoded.Height,
		SrcFormat: decoded.Format,
	}, nil
}

// Opacify reads src, flattens it and writes the result to dst, replacing
// any existing file. dst is only touched once encoding has succeeded, and
// is replaced atomically.
func Opacify(src, dst string, opts Options) (*Result, error) {
	log := opts.log()

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", src, ErrSourceNotFound)
		}
		return nil, &Error{Kind: KindRead, Path: src, Err: err}
	}

	if opts.Format == "" {
		f, err := codec.FormatFromPath(dst)
		if err != nil {
			return nil, &Error{Kind: KindEncode, Path: dst, Err: err}
		}
		opts.Format = f
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, &Error{Kind: KindRead, Path: src, Err: err}
	}

	result, err := Run(data, opts)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Path = src
			if e.Kind == KindEncode {
				e.Path = dst
			}
		}
		return nil, err
	}

	if err := writeFile(dst, result.Data); err != nil {
		return nil, &Error{Kind: KindWrite, Path: dst, Err: err}
	}
	log.Debug().Str("destination", dst).Int("bytes", len(result.Data)).Msg("written")
	return result, nil
}
