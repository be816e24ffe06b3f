// Package log provides the structured logging abstraction used by modbridge.
//
// Components accept a [Logger] instead of a concrete library so hosts can
// route boundary diagnostics into their own logging. A zerolog adapter and a
// no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.WarnLevel)
//	rt := bridge.NewRuntime(bridge.WithLogger(logger))
//
// Use [NewNoopLogger] in tests or when diagnostics are not wanted.
package log
