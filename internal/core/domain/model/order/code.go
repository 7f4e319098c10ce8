package order

import (
	"strconv"
	"strings"
)

// reprintMarker is the suffix appended to an order code when a reprint order
// is spawned from it: GIFT-100 -> GIFT-100_RE -> GIFT-100_RE2 -> GIFT-100_RE3.
const reprintMarker = "_RE"

// ParseReprintCode splits an order code into its base code and reprint
// version. The version is 0 for a code without a reprint suffix, 1 for a bare
// "_RE" suffix, and n for "_REn". The second result is false when the code
// carries no parseable reprint suffix, including the documented fallback
// case where "_RE" is followed by a non-numeric tail; such a tail is treated
// as part of the base code.
func ParseReprintCode(code string) (base string, version int, ok bool) {
	idx := strings.LastIndex(code, reprintMarker)
	if idx < 0 {
		return code, 0, false
	}

	base = code[:idx]
	tail := code[idx+len(reprintMarker):]
	if tail == "" {
		return base, 1, true
	}

	version, err := strconv.Atoi(tail)
	if err != nil || version < 1 {
		return code, 0, false
	}
	return base, version, true
}

// FormatReprintCode renders a base code with a reprint version. Version 1 is
// the bare marker; higher versions carry the number. Versions below 1 return
// the base unchanged. FormatReprintCode and ParseReprintCode round-trip:
// parse(format(base, n)) == (base, n, true) for n >= 1.
func FormatReprintCode(base string, version int) string {
	if version < 1 {
		return base
	}
	if version == 1 {
		return base + reprintMarker
	}
	return base + reprintMarker + strconv.Itoa(version)
}

// NextReprintCode computes the code for the next reprint order spawned from
// the given original code. A code without a suffix gets version 1; a code
// with a numeric suffix gets its version incremented; a code whose "_RE"
// tail is non-numeric falls back to a plain appended marker.
func NextReprintCode(code string) string {
	base, version, ok := ParseReprintCode(code)
	if !ok {
		return code + reprintMarker
	}
	return FormatReprintCode(base, version+1)
}
