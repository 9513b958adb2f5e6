// Package config loads rule set configuration files. It supports TOML and
// YAML sources through koanf and normalizes the parsed tree into the raw
// rule shape the compiler consumes. Because configuration files cannot
// express regular expressions or functions directly, a condition written
// as `{ regex = "..." }` is converted to a compiled regular expression
// before the engine sees it.
package config
