package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func boolProp(description string, def bool) map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": description,
		"default":     def,
	}
}

func stringArrayProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items":       map[string]interface{}{"type": "string"},
	}
}

func noArgSchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]interface{}{},
	}
}

// loadOSMModelTool returns the tool definition for load_osm_model
func loadOSMModelTool() mcp.Tool {
	return mcp.Tool{
		Name:        "load_osm_model",
		Description: "Load an OpenStudio Model (OSM) file and make it the current working model",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_path": stringProp("Path to the OSM file (absolute, relative to a search root, or just a filename)"),
			},
			Required: []string{"file_path"},
		},
	}
}

// saveOSMModelTool returns the tool definition for save_osm_model
func saveOSMModelTool() mcp.Tool {
	return mcp.Tool{
		Name:        "save_osm_model",
		Description: "Save the current model to an OSM file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_path": stringProp("Where to save the OSM file (optional, defaults to the file the model was loaded from)"),
			},
		},
	}
}

// convertToIDFTool returns the tool definition for convert_to_idf
func convertToIDFTool() mcp.Tool {
	return mcp.Tool{
		Name:        "convert_to_idf",
		Description: "Convert the current model to EnergyPlus IDF format",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"output_path": stringProp("Path for the output IDF file (optional, derived from the current model path if omitted)"),
			},
		},
	}
}

// copyFileTool returns the tool definition for copy_file
func copyFileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "copy_file",
		Description: "Copy a model file with intelligent path resolution and fuzzy matching",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source_path": stringProp("Source file path; partial names are resolved against the search roots with fuzzy suggestions on a miss"),
				"target_path": stringProp("Target file path; bare filenames land in the outputs directory"),
				"overwrite":   boolProp("Whether to overwrite an existing target file", false),
				"file_types":  stringArrayProp("Accepted file extensions for the source, e.g. [\".osm\", \".idf\"]"),
			},
			Required: []string{"source_path", "target_path"},
		},
	}
}

// findModelFilesTool returns the tool definition for find_model_files
func findModelFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_model_files",
		Description: "Find model files matching a partial name across the search roots",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"partial_name": stringProp("Partial file name, case-insensitive; multiple words all have to appear"),
				"extensions":   stringArrayProp("Extensions to include (default [\".osm\", \".idf\"])"),
			},
			Required: []string{"partial_name"},
		},
	}
}

// getModelSummaryTool returns the tool definition for get_model_summary
func getModelSummaryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_model_summary",
		Description: "Get object counts and headline statistics for the current model",
		InputSchema: noArgSchema(),
	}
}

// getBuildingInfoTool returns the tool definition for get_building_info
func getBuildingInfoTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_building_info",
		Description: "Get the building object's attributes from the current model",
		InputSchema: noArgSchema(),
	}
}

// listSpacesTool returns the tool definition for list_spaces
func listSpacesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_spaces",
		Description: "List all spaces in the current model",
		InputSchema: noArgSchema(),
	}
}

// getSpaceDetailsTool returns the tool definition for get_space_details
func getSpaceDetailsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_space_details",
		Description: "Get detailed information about a specific space",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"space_name": stringProp("Name of the space to retrieve"),
			},
			Required: []string{"space_name"},
		},
	}
}

// listThermalZonesTool returns the tool definition for list_thermal_zones
func listThermalZonesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_thermal_zones",
		Description: "List all thermal zones in the current model",
		InputSchema: noArgSchema(),
	}
}

// getThermalZoneDetailsTool returns the tool definition for get_thermal_zone_details
func getThermalZoneDetailsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_thermal_zone_details",
		Description: "Get detailed information about a specific thermal zone",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"zone_name": stringProp("Name of the thermal zone to retrieve"),
			},
			Required: []string{"zone_name"},
		},
	}
}

// listMaterialsTool returns the tool definition for list_materials
func listMaterialsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_materials",
		Description: "List all opaque materials (standard and massless) in the current model",
		InputSchema: noArgSchema(),
	}
}

// listAirLoopsTool returns the tool definition for list_air_loops
func listAirLoopsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_air_loops",
		Description: "List all air loop HVAC systems in the current model",
		InputSchema: noArgSchema(),
	}
}

// listPeopleLoadsTool returns the tool definition for list_people_loads
func listPeopleLoadsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_people_loads",
		Description: "List all people (occupancy) loads in the current model",
		InputSchema: noArgSchema(),
	}
}

// listLightingLoadsTool returns the tool definition for list_lighting_loads
func listLightingLoadsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_lighting_loads",
		Description: "List all lighting loads in the current model",
		InputSchema: noArgSchema(),
	}
}

// listElectricEquipmentTool returns the tool definition for list_electric_equipment
func listElectricEquipmentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_electric_equipment",
		Description: "List all electric equipment loads in the current model",
		InputSchema: noArgSchema(),
	}
}

// listScheduleRulesetsTool returns the tool definition for list_schedule_rulesets
func listScheduleRulesetsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_schedule_rulesets",
		Description: "List all schedule rulesets in the current model",
		InputSchema: noArgSchema(),
	}
}

// getTimeseriesFromSQLTool returns the tool definition for get_timeseries_from_sql
func getTimeseriesFromSQLTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_timeseries_from_sql",
		Description: "Read report variables from an EnergyPlus output (eplusout.sql) file; with no variable filter, lists what is available",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"sql_path":      stringProp("Path to the EnergyPlus SQLite output file"),
				"key":           stringProp("Report variable key, usually a zone or surface name (optional)"),
				"variable_name": stringProp("Report variable name, e.g. 'Zone Mean Air Temperature' (optional)"),
				"units":         stringProp("Report variable units filter (optional)"),
				"frequency": map[string]interface{}{
					"type":        "string",
					"description": "Reporting frequency",
					"enum":        []string{"timestep", "hourly", "daily", "monthly", "runperiod", "annual"},
					"default":     "hourly",
				},
				"partial_match": boolProp("Match key/name/units as substrings instead of exactly", false),
			},
			Required: []string{"sql_path"},
		},
	}
}

// getServerInfoTool returns the tool definition for get_server_info
func getServerInfoTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_server_info",
		Description: "Get server configuration, search paths and build information",
		InputSchema: noArgSchema(),
	}
}

// getCurrentModelStatusTool returns the tool definition for get_current_model_status
func getCurrentModelStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_current_model_status",
		Description: "Get status of the currently loaded model",
		InputSchema: noArgSchema(),
	}
}
