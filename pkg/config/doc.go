// Package config loads propconv settings.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: an explicit path, or propconv/config.toml (or .yaml) under the
//     XDG config directories
//  3. PROPCONV_ environment variables, with "__" separating sections
//     (PROPCONV_REGISTRY__DISABLED_SOURCES=markup)
//  4. programmatic overrides, typically bound from CLI flags
//
// The merged tree is decoded into Config with mapstructure, so list values
// may be given as comma-separated strings.
package config
