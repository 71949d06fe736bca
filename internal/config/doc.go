// Package config loads tortest's own preferences from
// ~/.config/tortest/config.toml: where the settings files live and how
// output should be colored. This is the tool's configuration, not the
// integration-test settings table itself (see internal/conf for that).
package config
