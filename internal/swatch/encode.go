// SPDX-License-Identifier: MIT
package swatch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thatcatcamp/colorbar/internal/colors"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for swatches
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML, FormatCSS:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q (want text, json, yaml or css)", colors.ErrInvalidArgument, name)
	}
}

// Encode writes swatches to w. Text output is rendered as cards, painted
// with ANSI colors unless plain is set.
func Encode(w io.Writer, format Format, swatches []Swatch, plain bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(swatches); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(swatches); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCSS:
		_, err := io.WriteString(w, GenerateCSS(swatches))
		return err
	case FormatText:
		_, err := io.WriteString(w, RenderRow(swatches, !plain)+"\n")
		return err
	default:
		return fmt.Errorf("%w: unknown output format %q", colors.ErrInvalidArgument, format)
	}
}
