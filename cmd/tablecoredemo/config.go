package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// loadPageGeometry reads page/column overrides from a TOML file. A missing
// field simply leaves the scenario's own geometry in place - callers apply
// this on top of the scenario defaults, not in place of them.
func loadPageGeometry(path string) (pageGeometry, error) {
	var geom pageGeometry
	_, err := toml.DecodeFile(path, &geom)
	if err != nil {
		return geom, fmt.Errorf("reading page geometry config: %w", err)
	}
	return geom, nil
}

// applyOverrides fills any non-zero field from override onto base.
func applyOverrides(base, override pageGeometry) pageGeometry {
	if override.PageHeight != 0 {
		base.PageHeight = override.PageHeight
	}
	if override.MarginTop != 0 {
		base.MarginTop = override.MarginTop
	}
	if override.ColumnWidth != 0 {
		base.ColumnWidth = override.ColumnWidth
	}
	if override.ColumnGap != 0 {
		base.ColumnGap = override.ColumnGap
	}
	if override.ColumnsPerPage != 0 {
		base.ColumnsPerPage = override.ColumnsPerPage
	}
	return base
}
