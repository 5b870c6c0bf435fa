//go:build !sqlite_cgo
// +build !sqlite_cgo

package results

// This file is compiled by default and when building with CGO disabled.
// It uses a pure Go SQLite implementation to read EnergyPlus output files.
//
// Build command:
//   CGO_ENABLED=0 go build ./...
//
// Driver used: modernc.org/sqlite

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite"

	// BuildMode describes the current build configuration
	BuildMode = "purego"
)
