package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Fingerprint derives a canonical cache key from a call's positional and
// keyword arguments. Positional order is significant; keyword keys are
// sorted so mappings compare by value, not by insertion order. Nested
// map[string]any and []any values are canonicalized recursively; everything
// else is encoded with its dynamic type so values of different types never
// collide. Strings may contain arbitrary UTF-8, including NUL bytes.
func Fingerprint(args []any, kwargs map[string]any) string {
	var b strings.Builder
	b.WriteString("args:")
	writeSeq(&b, args)
	b.WriteString("|kwargs:")
	writeMap(&b, kwargs)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeValue(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("<nil>")
	case string:
		fmt.Fprintf(b, "%q", t)
	case []any:
		writeSeq(b, t)
	case map[string]any:
		writeMap(b, t)
	default:
		// fmt prints map contents in sorted key order, so the fallback is
		// deterministic for plain map types too.
		fmt.Fprintf(b, "%T=%v", v, v)
	}
}

func writeSeq(b *strings.Builder, seq []any) {
	b.WriteByte('[')
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		writeValue(b, v)
	}
	b.WriteByte(']')
}

func writeMap(b *strings.Builder, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%q:", k)
		writeValue(b, m[k])
	}
	b.WriteByte('}')
}
