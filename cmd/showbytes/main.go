// showbytes displays raw bytes as printable ASCII with \xHH escapes.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/bytefix/showbytes/format"
	"github.com/bytefix/showbytes/json"
	"github.com/bytefix/showbytes/show"
)

var log zerolog.Logger

func main() {
	var (
		optQuote   string
		optFormat  string
		optConfig  string
		optJson    bool
		optHex     bool
		optBytes   bool
		optNoEol   bool
		optVerbose bool
	)

	// logging to stderr, so stdout stays clean for the rendering
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "showbytes [flags] [file ...]",
		Short: "display raw bytes as printable ASCII",
		Long: `showbytes reads raw bytes from files, standard input, or its arguments,
and writes a printable-ASCII rendering to standard output, escaping
every non-graphic byte as \xHH.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&optQuote, "quote", "q", "", "quote style: none, single, double")
	root.Flags().StringVarP(&optFormat, "format", "f", "", "output format: "+strings.Join(format.Formats.Names(), ", "))
	root.Flags().StringVarP(&optConfig, "config", "c", "", "config file path")
	root.Flags().BoolVarP(&optJson, "json", "j", false, "arguments are JSON arrays of byte values")
	root.Flags().BoolVarP(&optHex, "hex", "x", false, "arguments are hex strings, 0x prefix optional")
	root.Flags().BoolVarP(&optBytes, "bytes", "b", false, "arguments are single byte values")
	root.Flags().BoolVarP(&optNoEol, "no-newline", "n", false, "do not print the trailing newline")
	root.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "verbose logging")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		if optVerbose {
			log = log.Level(zerolog.DebugLevel)
		}

		cfg, err := loadConfig(optConfig)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if optQuote == "" {
			optQuote = cfg.Quote
		}
		if !cmd.Flags().Changed("format") {
			optFormat = cfg.Format
		}

		quote, err := show.QuoteString(optQuote)
		if err != nil {
			return fmt.Errorf("quote style %q: %w", optQuote, err)
		}
		if optFormat != "" && !format.Formats.Has(optFormat) {
			return fmt.Errorf("format %q: %w", optFormat, format.ErrFormat)
		}

		// render appends the selected rendering of src to dst
		render := func(dst, src []byte) []byte {
			if optFormat != "" {
				dst, _ = format.Formats.Render(optFormat, dst, src)
				return dst
			}
			return show.NewPrinter(quote).AppendQuoted(dst, src)
		}

		// emit writes one rendered line to stdout
		emit := func(src []byte) error {
			out := render(nil, src)
			if !optNoEol {
				out = append(out, '\n')
			}
			if _, err := os.Stdout.Write(out); err != nil {
				return fmt.Errorf("stdout: %w", err)
			}
			return nil
		}

		switch {
		case optBytes:
			var buf []byte
			for _, arg := range args {
				b, err := cast.ToUint8E(arg)
				if err != nil {
					return fmt.Errorf("byte value %q: %w", arg, err)
				}
				buf = append(buf, b)
			}
			return emit(buf)

		case optJson:
			for _, arg := range args {
				buf, err := json.UnBytes(json.B(arg), nil)
				if err != nil {
					return fmt.Errorf("json %q: %w", arg, err)
				}
				if err := emit(buf); err != nil {
					return err
				}
			}
			return nil

		case optHex:
			for _, arg := range args {
				buf, err := json.UnHex(json.B(arg), nil)
				if err != nil {
					return fmt.Errorf("hex %q: %w", arg, err)
				}
				if err := emit(buf); err != nil {
					return err
				}
			}
			return nil

		case len(args) == 0:
			buf, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("stdin: %w", err)
			}
			return emit(buf)

		default:
			for _, path := range args {
				buf, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				log.Debug().Str("file", path).Int("len", len(buf)).Msg("read")
				if err := emit(buf); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("showbytes failed")
		os.Exit(1)
	}
}
