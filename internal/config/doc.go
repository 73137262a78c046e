// Package config loads simulator settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, usually hostsim.toml
//  3. HOSTSIM_* environment variables
//
// A missing file is not an error. The merged result is validated before it
// is returned, so a Config from Load can be handed straight to the host.
//
// Example file:
//
//	[layout]
//	textWidth = 8
//	textHeight = 16
//
//	[encoding]
//	ansiCharset = "windows-1251"
//	defaultCodepage = "utf8"
//
//	[logging]
//	level = "debug"
package config
