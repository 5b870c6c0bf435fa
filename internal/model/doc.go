// Package model reads and writes OpenStudio Model (OSM) documents.
//
// OSM is a text format shared with EnergyPlus IDF: objects are
// comma-separated field lists terminated by ";", "!" starts a comment, and
// objects cross-reference each other through "{uuid}" handles. The package
// parses a document into an indexed object list, exposes inspection
// accessors over the common building objects (spaces, thermal zones,
// materials, loads, schedules, HVAC air loops), and serializes back to OSM
// or, structurally, to IDF.
package model
