// Package primitives provides the configuration value types for the fsmx
// engine.
//
// A Config names an initial state and an ordered list of states, each with an
// event-to-target transition table. Declared order is significant: it is the
// order in which state queries report names, so States is a slice rather than
// a map, and the YAML and JSON codecs read and write state keys in document
// order.
//
// Core invariants:
// - Config values are copied with Clone before a machine takes ownership
// - Shape problems are reported as *ConfigError
// - Transition targets are only checked by ValidateTargets
package primitives
