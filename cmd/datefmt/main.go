// Command datefmt formats an instant with a date-format pattern.
//
//	datefmt "'Today is' MMM do, yyyy"
//	datefmt --time 2014-12-05T13:04:05Z --locale de "EEEE, d. MMMM yyyy"
//	datefmt --excel "yyyy-mm-dd hh:mm"
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-datefmt"
	"github.com/TsubasaBE/go-datefmt/excelfmt"
	"github.com/TsubasaBE/go-datefmt/locale"
)

var (
	flagLocale     string
	flagLocaleFile string
	flagTime       string
	flagExcel      bool
)

var rootCmd = &cobra.Command{
	Use:   "datefmt [flags] PATTERN",
	Short: "Format an instant with a date-format pattern",
	Long: `datefmt renders the current time (or --time) using a date-format
pattern, e.g. "'Today is' MMM do, yyyy".  With --excel the argument is an
Excel number-format string and is translated first.`,
	Version:       datefmt.Version,
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVarP(&flagLocale, "locale", "l", "en", "BCP 47 locale tag")
	rootCmd.Flags().StringVar(&flagLocaleFile, "locale-file", "", "TOML locale definition (overrides --locale)")
	rootCmd.Flags().StringVarP(&flagTime, "time", "t", "", "instant to format, RFC 3339 (default: now)")
	rootCmd.Flags().BoolVar(&flagExcel, "excel", false, "treat PATTERN as an Excel number-format string")
}

func run(cmd *cobra.Command, args []string) error {
	pat := args[0]
	if flagExcel {
		translated, err := excelfmt.Pattern(pat)
		if err != nil {
			return err
		}
		pat = translated
	}

	instant := time.Now()
	if flagTime != "" {
		parsed, err := time.Parse(time.RFC3339, flagTime)
		if err != nil {
			return fmt.Errorf("bad --time value %q: %w", flagTime, err)
		}
		instant = parsed
	}

	symbols, err := resolveSymbols()
	if err != nil {
		return err
	}

	out, err := datefmt.NewWithSymbols(pat, symbols).Format(instant)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func resolveSymbols() (*locale.Symbols, error) {
	if flagLocaleFile != "" {
		return locale.LoadFile(flagLocaleFile)
	}
	tag, err := language.Parse(flagLocale)
	if err != nil {
		return nil, fmt.Errorf("bad --locale tag %q: %w", flagLocale, err)
	}
	return locale.Lookup(tag), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
