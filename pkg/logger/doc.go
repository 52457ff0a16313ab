// Package logger provides a small factory around log/slog with functional
// options and helper attribute constructors used across didlkit.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output
//     format (json is the default).
//   - WithLevel sets the minimum level.
//   - WithOutput redirects the destination.
//   - WithAttr adds static attributes to every record.
//
// Helper constructors in attr.go keep attribute naming consistent for the
// values this library logs: parsed item classes, object counts, error values.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("parsed DIDL-Lite document",
//	    logger.ItemClass("object.item.audioItem.musicTrack"),
//	    logger.ObjectCount(3),
//	)
package logger
