// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorbar/internal/config"
	"github.com/thatcatcamp/colorbar/internal/swatch"
	"github.com/thatcatcamp/colorbar/internal/tui"
)

var (
	barTheme string
	barSeed  uint64
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Interactive color bars",
	Long: `Show one color bar per theme and draw new colors on demand.

Keys: r/space/enter refresh every bar, 1 and 2 refresh a single bar, q quits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		themeName := config.GetString("swatch.theme")
		if cmd.Flags().Changed("theme") {
			themeName = barTheme
		}
		seed := config.GetUint64("swatch.seed")
		if cmd.Flags().Changed("seed") {
			seed = barSeed
		}

		themes, err := resolveThemes(themeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rng := newSource(seed)
		bars := make([]*swatch.Bar, 0, len(themes))
		for _, theme := range themes {
			bars = append(bars, swatch.NewBar(theme, rng))
		}

		model := tui.NewModel(bars, config.GetBool("output.plain"), newLogger())
		if _, err := tea.NewProgram(model).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	barCmd.Flags().StringVarP(&barTheme, "theme", "t", themeBoth, "theme to show: light, dark or both")
	barCmd.Flags().Uint64Var(&barSeed, "seed", 0, "random seed (0 uses system entropy)")
	rootCmd.AddCommand(barCmd)
}
