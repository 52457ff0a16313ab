// Package didlkit models and interprets the DIDL-Lite metadata vocabulary
// used by UPnP AV devices to describe playable content.
//
// Remote media servers and renderers exchange content descriptions (tracks,
// albums, artists, playlists, broadcasts, containers) as DIDL-Lite XML
// fragments. didlkit turns those fragments into a typed object model that
// playback control, queue rendering and topology code can consume, and it
// memoizes repeated identical parses so polling loops stay cheap.
//
// The module is split into small, independent packages:
//
//   - pkg/didl: the object model, the class-path registry with graceful
//     degradation for vendor extensions, the resource codec, and the parser
//     with sanitize-and-retry recovery for malformed input.
//   - pkg/cache: an argument-fingerprinted TTL cache with a runtime on/off
//     switch and an inert null variant, used by the parser and available to
//     any other call site that wants memoization.
//   - pkg/config: cached environment-based configuration loading.
//   - pkg/logger: slog factory with functional options.
//
// Device discovery, SOAP invocation, eventing and playback control are
// deliberately out of scope; didlkit is the metadata layer those systems
// build on.
package didlkit
