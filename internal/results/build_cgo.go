//go:build sqlite_cgo
// +build sqlite_cgo

package results

// This file is compiled when building with CGO and the sqlite_cgo tag.
// It uses the C SQLite driver, which reads large EnergyPlus output files
// noticeably faster than the pure Go implementation.
//
// Build command:
//   CGO_ENABLED=1 go build -tags sqlite_cgo ./...
//
// Driver used: github.com/mattn/go-sqlite3

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration
	BuildMode = "cgo"
)
