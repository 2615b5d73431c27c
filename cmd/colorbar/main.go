// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "colorbar",
	Short: "colorbar - random light and dark color swatches",
	Long: `colorbar generates random colors inside a light or dark band and
shows each one in HSL, HEX and RGB notation.

Light colors have saturation and lightness between 50 and 100, dark colors
between 1 and 49. Hue is anywhere on the wheel.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.colorbar/config.yaml)")
}
