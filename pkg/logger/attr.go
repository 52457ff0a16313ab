package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ItemClass records a DIDL class path under the key "item_class".
func ItemClass(class string) slog.Attr {
	return slog.String("item_class", class)
}

// ObjectCount records the number of objects a parse produced.
func ObjectCount(n int) slog.Attr {
	return slog.Int("object_count", n)
}

// InputPreview records a truncated view of raw metadata input.
func InputPreview(preview string) slog.Attr {
	return slog.String("input_preview", preview)
}
