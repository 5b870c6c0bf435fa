// Package mcp implements the Model Context Protocol (MCP) server for
// OSModel.
//
// The server exposes building-energy-model inspection tools to AI
// assistants over stdio. Tools fall into five groups:
//
//   - file and model management: load_osm_model, save_osm_model,
//     convert_to_idf, copy_file, find_model_files
//   - geometry inspection: list_spaces, get_space_details,
//     list_thermal_zones, get_thermal_zone_details
//   - materials, HVAC and loads: list_materials, list_air_loops,
//     list_people_loads, list_lighting_loads, list_electric_equipment,
//     list_schedule_rulesets
//   - simulation results: get_timeseries_from_sql
//   - server management: get_server_info, get_current_model_status
//
// # Path resolution
//
// Tools that accept a file path resolve it through internal/pathres: a
// bare filename is searched across the configured roots (desktop uploads
// first, then the workspace layout), Windows host paths are translated to
// their mounted location, and a miss comes back with the probed locations
// and ranked fuzzy suggestions:
//
//	{
//	  "status": "error",
//	  "error": "file not found: ofice.osm",
//	  "searched_locations": [{"label": "models", "path": "/workspace/sample_files/models/ofice.osm"}],
//	  "suggestions": [{"path": "/workspace/sample_files/models/office.osm", "score": 0.9}]
//	}
//
// # Responses
//
// Every tool result is passed through internal/respond before leaving the
// process, so the client always receives valid JSON with a "status" field.
// Failures are reported as {"status":"error"} payloads in the tool text,
// never as JSON-RPC transport errors: a missing file is a conversation
// answer, not a protocol fault.
//
// # Session
//
// The server holds a single current-model slot (internal/session). Loading
// a model replaces the previous one; all inspection tools operate on the
// current model until another load.
//
// # Logging
//
// stdout carries the MCP protocol, so all logging goes to stderr via the
// injected zerolog logger.
package mcp
