// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thatcatcamp/colorbar/internal/colors"
	"github.com/thatcatcamp/colorbar/internal/swatch"
)

const themeBoth = "both"

// resolveThemes expands a theme flag value; "both" yields light then dark
func resolveThemes(name string) ([]colors.Theme, error) {
	if strings.EqualFold(strings.TrimSpace(name), themeBoth) {
		return colors.Themes(), nil
	}
	theme, err := colors.ParseTheme(name)
	if err != nil {
		return nil, err
	}
	return []colors.Theme{theme}, nil
}

// newSource returns a seeded source, or system entropy for seed 0
func newSource(seed uint64) colors.RandomSource {
	if seed == 0 {
		return colors.SystemSource()
	}
	return colors.NewSource(seed)
}

// validateSetting rejects values that would break later commands
func validateSetting(key, value string) error {
	switch key {
	case "swatch.theme":
		_, err := resolveThemes(value)
		return err
	case "output.format":
		_, err := swatch.ParseFormat(value)
		return err
	case "swatch.count":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: swatch.count must be a positive integer, got %q", colors.ErrInvalidArgument, value)
		}
	case "swatch.seed":
		if _, err := strconv.ParseUint(value, 10, 64); err != nil {
			return fmt.Errorf("%w: swatch.seed must be a non-negative integer, got %q", colors.ErrInvalidArgument, value)
		}
	}
	return nil
}
