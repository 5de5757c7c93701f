// Package pretty shortens raw fully-qualified type names for display.
//
// It rewrites names with an ordered list of (prefix, alias) rules: a rule
// fires where the prefix is immediately followed by the alias, and the prefix
// is then dropped. Unrecognized names pass through unchanged.
//
// The table is injected at build-configuration time, either in code via New
// or from a YAML file via LoadRules. It is never consulted for matching or
// identity, only for display.
package pretty
