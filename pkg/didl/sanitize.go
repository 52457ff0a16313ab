package didl

import "strings"

// sanitizeXML strips code points XML 1.0 forbids outright: control
// characters other than tab, newline and carriage return. Some renderers
// embed raw control bytes in track metadata.
func sanitizeXML(s string) string {
	return strings.Map(func(r rune) rune {
		if legalXMLRune(r) {
			return r
		}
		return -1
	}, s)
}

func legalXMLRune(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
