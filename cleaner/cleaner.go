// Package cleaner strips typographic artifacts that AI writing tools leave
// behind: emoji, smart quotes, em/en dashes, ellipses, and zero-width
// characters.
package cleaner

import "strings"

// Clean rewrites the text with artifacts removed or replaced by their plain
// ASCII equivalents. It is pure and idempotent; running it over already-clean
// ASCII text is a no-op. It is only applied when the caller opts in.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch r {
		case '“', '”': // smart double quotes
			b.WriteByte('"')
		case '‘', '’': // smart single quotes / apostrophe
			b.WriteByte('\'')
		case '—': // em dash
			b.WriteString("--")
		case '–': // en dash
			b.WriteByte('-')
		case '…': // ellipsis
			b.WriteString("...")
		case '\u00A0', '\u200B', '\u200C', '\u200D', '\uFEFF':
			// non-breaking space, zero-width space/non-joiner/joiner, BOM
		default:
			if !isEmoji(r) {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}

// isEmoji reports whether the rune falls in one of the pictographic ranges
// that get deleted outright.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F300 && r <= 0x1F5FF: // misc symbols and pictographs
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // arrows and stars (⭐ etc.)
		return true
	default:
		return false
	}
}
