// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorbar/internal/colors"
	"github.com/thatcatcamp/colorbar/internal/config"
	"github.com/thatcatcamp/colorbar/internal/swatch"
)

var convertTheme string

var convertCmd = &cobra.Command{
	Use:   "convert <h> <s> <l>",
	Short: "Show an HSL color in HSL, HEX and RGB notation",
	Long: `Convert a hue (degrees) and saturation and lightness (percent) into
HEX and RGB. Out-of-range values are accepted: hue wraps around the
wheel and saturation and lightness are clamped to 0-100.`,
	Example: `  colorbar convert 0 100 50
  colorbar convert -- -30 150 -10`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := runConvert(os.Stdout, args, convertTheme, config.GetString("output.format"), config.GetBool("output.plain")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// parseColor reads h, s and l from command-line arguments
func parseColor(args []string) (colors.Color, error) {
	h, err := strconv.Atoi(args[0])
	if err != nil {
		return colors.Color{}, fmt.Errorf("%w: hue must be an integer, got %q", colors.ErrInvalidArgument, args[0])
	}
	s, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return colors.Color{}, fmt.Errorf("%w: saturation must be a number, got %q", colors.ErrInvalidArgument, args[1])
	}
	l, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return colors.Color{}, fmt.Errorf("%w: lightness must be a number, got %q", colors.ErrInvalidArgument, args[2])
	}
	return colors.Color{H: h, S: s, L: l}, nil
}

func runConvert(w io.Writer, args []string, themeName, formatName string, plain bool) error {
	c, err := parseColor(args)
	if err != nil {
		return err
	}
	theme, err := colors.ParseTheme(themeName)
	if err != nil {
		return err
	}
	format, err := swatch.ParseFormat(formatName)
	if err != nil {
		return err
	}
	return swatch.Encode(w, format, []swatch.Swatch{swatch.New(theme, &c)}, plain)
}

func init() {
	convertCmd.Flags().StringVarP(&convertTheme, "theme", "t", "light", "theme used for the swatch title and text color")
	rootCmd.AddCommand(convertCmd)
}
