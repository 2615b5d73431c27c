// SPDX-License-Identifier: MIT
package swatch

import (
	"fmt"
	"strings"
)

// GenerateCSS emits one rule per swatch carrying the --background and
// --foreground custom properties, keyed by a .swatch-<theme>-<n> class
func GenerateCSS(swatches []Swatch) string {
	var b strings.Builder
	counts := map[string]int{}

	for _, s := range swatches {
		theme := s.Theme.String()
		counts[theme]++
		fmt.Fprintf(&b, `.swatch-%s-%d {
  --background: %s;
  --foreground: %s;
  --hex: %s;
  --rgb: %s;
}
`, theme, counts[theme], s.Background, s.Foreground, s.Hex, s.RGB)
	}

	return b.String()
}
