// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/negation-engine/pkg/types"
)

// FormatBlocks writes the round as the two labeled blocks shown to the
// user, good version first.
func FormatBlocks(r types.Round, w io.Writer) {
	fmt.Fprintf(w, "\nGood version (%d terms):\n", len(r.Positive))
	fmt.Fprintln(w, r.GoodString())

	fmt.Fprintf(w, "\nBad version (%d terms):\n", len(r.Combined))
	fmt.Fprintln(w, r.BadString())
}

// FormatJSON writes the round as indented JSON to w.
func FormatJSON(r types.Round, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
