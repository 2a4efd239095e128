// Package config loads and merges pompatch configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (POMPATCH_ROOT, POMPATCH_CHILD_GLOB, POMPATCH_PROJECT, POMPATCH_FORMAT)
//  3. Config file ($XDG_CONFIG_HOME/pompatch/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
