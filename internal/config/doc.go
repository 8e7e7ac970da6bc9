// Package config loads proxvid settings from YAML and provides named
// video presets.
package config
