// Package plsqlfmt is the public entry point: Format turns PL/SQL
// source text into indented, consistently spaced text; Capitalize,
// Count, and CheckNulls are smaller scan-only tools that share its
// scanner and token tables.
package plsqlfmt

// Config holds the handful of options Format leaves open. Indentation
// width and style are not configurable: the beautifier has exactly one
// house style, driven entirely by the token tables and the SQL state
// machines.
type Config struct {
	// Preserving keeps comments in Format's output when true. Turning
	// it off produces a rendering with comments dropped, useful for
	// diffing structure without noise from comment reflow. Input
	// whitespace, blank lines included, is re-laid out in either mode.
	Preserving bool
}

// NewDefaultConfig returns a Config with preserving mode on, reproducing
// every comment in the input.
func NewDefaultConfig() *Config {
	return &Config{Preserving: true}
}
