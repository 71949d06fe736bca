package main

import (
	"context"
	"errors"
	"strings"

	"tortest/internal/conf"
	"tortest/internal/log"
	"tortest/internal/target"
)

// errNoSettings is returned when neither --settings nor the preferences
// file name a settings file.
var errNoSettings = errors.New(
	"no settings file given (use --settings, or set 'settings' in ~/.config/tortest/config.toml)")

// settingsPaths returns the effective settings files: the --settings flag
// when given, the preferences file otherwise.
func (o *rootOptions) settingsPaths() ([]string, error) {
	paths := o.settings
	if len(paths) == 0 {
		paths = o.prefs.SettingsPaths()
	}
	if len(paths) == 0 {
		return nil, errNoSettings
	}
	return paths, nil
}

// loadTable loads the base settings file and layers the override files on
// top, later files winning.
func loadTable(ctx context.Context, opts *rootOptions) (*conf.Table, error) {
	paths, err := opts.settingsPaths()
	if err != nil {
		return nil, err
	}

	l := log.FromContext(ctx)

	table, err := conf.Load(paths[0])
	if err != nil {
		return nil, err
	}
	for _, path := range paths[1:] {
		override, err := conf.Load(path)
		if err != nil {
			return nil, err
		}
		table = conf.Merge(table, override)
	}

	l.Debug("settings loaded", "files", len(paths), "entries", table.Len())
	return table, nil
}

// loadTargets loads the settings and assembles the target set.
func loadTargets(ctx context.Context, opts *rootOptions) (*target.Set, *conf.Table, error) {
	table, err := loadTable(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	return target.FromTable(table), table, nil
}

// targetJSON is the JSON shape shared by `targets --json` and
// `show --json`.
type targetJSON struct {
	Name        string   `json:"name"`
	Config      string   `json:"config"`
	Description string   `json:"description,omitempty"`
	Prereq      string   `json:"prereq,omitempty"`
	Torrc       []string `json:"torrc"`
}

func toTargetJSON(tgt target.Target) targetJSON {
	return targetJSON{
		Name:        tgt.Name,
		Config:      tgt.ConfigPath,
		Description: tgt.Description,
		Prereq:      tgt.Prereq,
		Torrc:       tgt.Torrc,
	}
}

// torrcSummary renders the torrc column for the targets table.
func torrcSummary(tgt target.Target) string {
	if !tgt.HasTorrc {
		return "-"
	}
	if len(tgt.Torrc) == 0 {
		return "(none)"
	}
	return strings.Join(tgt.Torrc, ", ")
}
