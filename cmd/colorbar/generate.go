// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorbar/internal/colors"
	"github.com/thatcatcamp/colorbar/internal/config"
	"github.com/thatcatcamp/colorbar/internal/swatch"
)

var (
	generateTheme  string
	generateCount  int
	generateSeed   uint64
	generateFormat string
	generatePlain  bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate random color swatches",
	Long: `Generate random colors for the light theme, the dark theme or both,
and print each in HSL, HEX and RGB notation.

Flags left unset fall back to the swatch.* and output.* config values.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts := generateOptions{
			Theme:  config.GetString("swatch.theme"),
			Count:  config.GetInt("swatch.count"),
			Seed:   config.GetUint64("swatch.seed"),
			Format: config.GetString("output.format"),
			Plain:  config.GetBool("output.plain"),
		}
		flags := cmd.Flags()
		if flags.Changed("theme") {
			opts.Theme = generateTheme
		}
		if flags.Changed("count") {
			opts.Count = generateCount
		}
		if flags.Changed("seed") {
			opts.Seed = generateSeed
		}
		if flags.Changed("format") {
			opts.Format = generateFormat
		}
		if flags.Changed("plain") {
			opts.Plain = generatePlain
		}

		if err := runGenerate(os.Stdout, opts, newLogger()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

type generateOptions struct {
	Theme  string
	Count  int
	Seed   uint64
	Format string
	Plain  bool
}

// runGenerate draws Count colors per theme and writes them in the chosen format
func runGenerate(w io.Writer, opts generateOptions, logger *slog.Logger) error {
	themes, err := resolveThemes(opts.Theme)
	if err != nil {
		return err
	}
	format, err := swatch.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	if opts.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", colors.ErrInvalidArgument, opts.Count)
	}

	rng := newSource(opts.Seed)
	swatches := make([]swatch.Swatch, 0, opts.Count*len(themes))
	for i := 0; i < opts.Count; i++ {
		for _, theme := range themes {
			c := colors.Generate(theme, rng)
			logger.Debug("generated color", "theme", theme.String(), "seed", opts.Seed, "hsl", c.HSL(), "hex", c.Hex())
			swatches = append(swatches, swatch.New(theme, &c))
		}
	}

	return swatch.Encode(w, format, swatches, opts.Plain)
}

func init() {
	generateCmd.Flags().StringVarP(&generateTheme, "theme", "t", themeBoth, "theme to generate: light, dark or both")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of swatches per theme")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "random seed (0 uses system entropy)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "o", "text", "output format: text, json, yaml or css")
	generateCmd.Flags().BoolVar(&generatePlain, "plain", false, "disable terminal colors")
	rootCmd.AddCommand(generateCmd)
}
