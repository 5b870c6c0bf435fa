package mcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bldgsim/osmodel-mcp/internal/model"
	"github.com/bldgsim/osmodel-mcp/internal/pathres"
	"github.com/bldgsim/osmodel-mcp/internal/respond"
	"github.com/bldgsim/osmodel-mcp/internal/results"
)

// Tool handlers. Every handler returns its payload as tool result text and
// reports failures as {"status":"error",...} data rather than transport
// errors, so the client always receives readable diagnostics instead of a
// protocol fault.

func (s *Server) handleLoadOSMModel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return text(respond.Error("invalid arguments")), nil
	}
	filePath, _ := args["file_path"].(string)
	s.log.Info().Str("tool", "load_osm_model").Str("file_path", filePath).Msg("tool called")

	resolved, errResult := s.resolveInput(filePath, []string{".osm"})
	if errResult != nil {
		return errResult, nil
	}

	m, err := model.ParseFile(resolved)
	if err != nil {
		return text(respond.Error(fmt.Sprintf("failed to load OSM file: %v", err))), nil
	}

	s.session.Load(m, resolved)
	s.log.Info().Str("path", resolved).Msg("model loaded")

	return text(respond.EnsureJSON(map[string]any{
		"status":     "success",
		"message":    fmt.Sprintf("Successfully loaded OSM file: %s", filepath.Base(resolved)),
		"file_path":  resolved,
		"model_info": m.Summary(),
	})), nil
}

func (s *Server) handleSaveOSMModel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := arguments(request)
	filePath := getStringDefault(args, "file_path", "")
	s.log.Info().Str("tool", "save_osm_model").Str("file_path", filePath).Msg("tool called")

	m, currentPath, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}

	savePath := currentPath
	if filePath != "" {
		if ext := filepath.Ext(filePath); ext != "" && !strings.EqualFold(ext, ".osm") {
			return text(respond.Error(fmt.Sprintf("OSM file must have extension .osm, got %s", ext))), nil
		}
		var err error
		savePath, err = s.resolver().ResolveOutput(filePath, s.cfg.Paths.OutputDir)
		if err != nil {
			return text(respond.Error(err.Error())), nil
		}
	}

	if err := m.Save(savePath); err != nil {
		return text(respond.Error(fmt.Sprintf("failed to save OSM file: %v", err))), nil
	}

	return text(respond.EnsureJSON(map[string]any{
		"status":    "success",
		"message":   fmt.Sprintf("Model saved to %s", filepath.Base(savePath)),
		"file_path": savePath,
	})), nil
}

func (s *Server) handleConvertToIDF(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := arguments(request)
	outputPath := getStringDefault(args, "output_path", "")
	s.log.Info().Str("tool", "convert_to_idf").Str("output_path", outputPath).Msg("tool called")

	m, currentPath, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(currentPath), filepath.Ext(currentPath))
		outputPath = base + ".idf"
	}
	resolved, err := s.resolver().ResolveOutput(outputPath, s.cfg.Paths.OutputDir)
	if err != nil {
		return text(respond.Error(err.Error())), nil
	}

	if err := m.SaveIDF(resolved); err != nil {
		return text(respond.Error(fmt.Sprintf("failed to convert to IDF: %v", err))), nil
	}

	return text(respond.EnsureJSON(map[string]any{
		"status":    "success",
		"message":   fmt.Sprintf("Model converted to IDF: %s", filepath.Base(resolved)),
		"file_path": resolved,
	})), nil
}

func (s *Server) handleCopyFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return text(respond.Error("invalid arguments")), nil
	}
	sourcePath, _ := args["source_path"].(string)
	targetPath, _ := args["target_path"].(string)
	overwrite := getBoolDefault(args, "overwrite", false)
	fileTypes := getStringSlice(args, "file_types")
	s.log.Info().Str("tool", "copy_file").
		Str("source", sourcePath).Str("target", targetPath).Bool("overwrite", overwrite).
		Msg("tool called")

	source, errResult := s.resolveInput(sourcePath, fileTypes)
	if errResult != nil {
		return errResult, nil
	}

	target, err := s.resolver().ResolveOutput(targetPath, s.cfg.Paths.OutputDir)
	if err != nil {
		return text(respond.Error(err.Error())), nil
	}

	if _, err := os.Stat(target); err == nil && !overwrite {
		return text(respond.Error(fmt.Sprintf(
			"target file already exists: %s (set overwrite to replace it)", target))), nil
	}

	written, err := copyFile(source, target)
	if err != nil {
		return text(respond.Error(fmt.Sprintf("failed to copy file: %v", err))), nil
	}

	return text(respond.EnsureJSON(map[string]any{
		"status":      "success",
		"message":     fmt.Sprintf("Copied %s to %s", filepath.Base(source), target),
		"source_path": source,
		"target_path": target,
		"size_bytes":  written,
	})), nil
}

func (s *Server) handleFindModelFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return text(respond.Error("invalid arguments")), nil
	}
	partial, _ := args["partial_name"].(string)
	if strings.TrimSpace(partial) == "" {
		return text(respond.Error("partial_name parameter is required")), nil
	}
	exts := getStringSlice(args, "extensions")
	if len(exts) == 0 {
		exts = []string{".osm", ".idf"}
	}
	s.log.Info().Str("tool", "find_model_files").Str("partial_name", partial).Msg("tool called")

	matches := pathres.FindByName(partial, exts, s.cfg.SearchRoots())
	return text(respond.EnsureJSON(map[string]any{
		"status":  "success",
		"count":   len(matches),
		"matches": matches,
	})), nil
}

func (s *Server) handleGetModelSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "get_model_summary").Msg("tool called")
	m, path, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}
	return text(respond.EnsureJSON(map[string]any{
		"status":    "success",
		"file_path": path,
		"summary":   m.Summary(),
	})), nil
}

func (s *Server) handleGetBuildingInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "get_building_info").Msg("tool called")
	m, _, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}
	info := m.BuildingInfo()
	if info == nil {
		return text(respond.Error("model has no building object")), nil
	}
	return text(respond.EnsureJSON(map[string]any{
		"status":   "success",
		"building": info,
	})), nil
}

func (s *Server) handleListSpaces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_spaces").Msg("tool called")
	return s.listResult("spaces", func(m *model.Model) []map[string]any { return m.Spaces() })
}

func (s *Server) handleGetSpaceDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := arguments(request)
	name, _ := args["space_name"].(string)
	s.log.Info().Str("tool", "get_space_details").Str("space_name", name).Msg("tool called")

	m, _, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}
	info, found := m.SpaceByName(name)
	if !found {
		return text(respond.Error(fmt.Sprintf("no space found with name: %s", name))), nil
	}
	return text(respond.EnsureJSON(map[string]any{
		"status": "success",
		"space":  info,
	})), nil
}

func (s *Server) handleListThermalZones(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_thermal_zones").Msg("tool called")
	return s.listResult("thermal_zones", func(m *model.Model) []map[string]any { return m.ThermalZones() })
}

func (s *Server) handleGetThermalZoneDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := arguments(request)
	name, _ := args["zone_name"].(string)
	s.log.Info().Str("tool", "get_thermal_zone_details").Str("zone_name", name).Msg("tool called")

	m, _, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}
	info, found := m.ThermalZoneByName(name)
	if !found {
		return text(respond.Error(fmt.Sprintf("no thermal zone found with name: %s", name))), nil
	}
	return text(respond.EnsureJSON(map[string]any{
		"status":       "success",
		"thermal_zone": info,
	})), nil
}

func (s *Server) handleListMaterials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_materials").Msg("tool called")
	return s.listResult("materials", func(m *model.Model) []map[string]any { return m.Materials() })
}

func (s *Server) handleListAirLoops(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_air_loops").Msg("tool called")
	return s.listResult("air_loops", func(m *model.Model) []map[string]any { return m.AirLoops() })
}

func (s *Server) handleListPeopleLoads(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_people_loads").Msg("tool called")
	return s.listResult("people_loads", func(m *model.Model) []map[string]any { return m.PeopleLoads() })
}

func (s *Server) handleListLightingLoads(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_lighting_loads").Msg("tool called")
	return s.listResult("lighting_loads", func(m *model.Model) []map[string]any { return m.LightingLoads() })
}

func (s *Server) handleListElectricEquipment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_electric_equipment").Msg("tool called")
	return s.listResult("electric_equipment", func(m *model.Model) []map[string]any { return m.ElectricEquipmentLoads() })
}

func (s *Server) handleListScheduleRulesets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "list_schedule_rulesets").Msg("tool called")
	return s.listResult("schedule_rulesets", func(m *model.Model) []map[string]any { return m.ScheduleRulesets() })
}

func (s *Server) handleGetTimeseriesFromSQL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return text(respond.Error("invalid arguments")), nil
	}
	sqlPath, _ := args["sql_path"].(string)
	filter := results.Variable{
		Key:   getStringDefault(args, "key", ""),
		Name:  getStringDefault(args, "variable_name", ""),
		Units: getStringDefault(args, "units", ""),
	}
	frequency := getStringDefault(args, "frequency", results.FreqHourly)
	alike := getBoolDefault(args, "partial_match", false)
	s.log.Info().Str("tool", "get_timeseries_from_sql").
		Str("sql_path", sqlPath).Str("frequency", frequency).Msg("tool called")

	resolved, errResult := s.resolveInput(sqlPath, []string{".sql"})
	if errResult != nil {
		return errResult, nil
	}

	reader, err := results.Open(resolved)
	if err != nil {
		return text(respond.Error(err.Error())), nil
	}
	defer func() { _ = reader.Close() }()

	// With no filter the tool lists what is available instead of dumping
	// every series in the file.
	if filter == (results.Variable{}) {
		vars, err := reader.Variables(ctx, frequency)
		if err != nil {
			return text(respond.Error(err.Error())), nil
		}
		return text(respond.EnsureJSON(map[string]any{
			"status":    "success",
			"file_path": resolved,
			"frequency": frequency,
			"count":     len(vars),
			"variables": vars,
		})), nil
	}

	series, err := reader.Timeseries(ctx, filter, frequency, alike)
	if err != nil {
		return text(respond.Error(err.Error())), nil
	}
	return text(respond.EnsureJSON(map[string]any{
		"status":    "success",
		"file_path": resolved,
		"frequency": frequency,
		"count":     len(series),
		"series":    series,
	})), nil
}

func (s *Server) handleGetServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "get_server_info").Msg("tool called")
	info := s.cfg.Info()
	info["server"].(map[string]any)["version"] = ServerVersion
	info["results_reader"] = map[string]any{
		"build_mode": results.BuildMode,
		"driver":     results.DriverName,
	}
	return text(respond.EnsureJSON(map[string]any{
		"status":        "success",
		"configuration": info,
	})), nil
}

func (s *Server) handleGetCurrentModelStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Info().Str("tool", "get_current_model_status").Msg("tool called")
	if !s.session.Loaded() {
		return text(respond.EnsureJSON(map[string]any{
			"status":       "success",
			"model_loaded": false,
			"message":      "No model currently loaded. Use load_osm_model to load a model.",
		})), nil
	}
	return text(respond.EnsureJSON(map[string]any{
		"status":       "success",
		"model_loaded": true,
		"file_path":    s.session.Path(),
		"message":      "Model is loaded and ready for operations.",
	})), nil
}

// Helper functions

func text(s string) *mcp.CallToolResult {
	return mcp.NewToolResultText(s)
}

func arguments(request mcp.CallToolRequest) (map[string]interface{}, bool) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, ok || request.Params.Arguments == nil
}

// resolveInput resolves a user-supplied path, turning malformed requests and
// misses into ready-to-return error results.
func (s *Server) resolveInput(path string, exts []string) (string, *mcp.CallToolResult) {
	res, err := s.resolver().Resolve(pathres.Request{Path: path, Extensions: exts})
	if err != nil {
		return "", text(respond.Error(err.Error()))
	}
	if !res.Found {
		return "", text(respond.EnsureJSON(map[string]any{
			"status":             "error",
			"error":              fmt.Sprintf("file not found: %s", path),
			"searched_locations": res.Probed,
			"suggestions":        res.Suggestions,
		}))
	}
	return res.Path, nil
}

// requireModel fetches the current model or builds the standard error result.
func (s *Server) requireModel() (*model.Model, string, *mcp.CallToolResult) {
	m, path, err := s.session.Current()
	if err != nil {
		return nil, "", text(respond.Error(err.Error()))
	}
	return m, path, nil
}

// listResult is the shared shape of every list_* tool.
func (s *Server) listResult(key string, collect func(*model.Model) []map[string]any) (*mcp.CallToolResult, error) {
	m, _, errResult := s.requireModel()
	if errResult != nil {
		return errResult, nil
	}
	items := collect(m)
	return text(respond.EnsureJSON(map[string]any{
		"status": "success",
		"count":  len(items),
		key:      items,
	})), nil
}

func copyFile(source, target string) (int64, error) {
	in, err := os.Open(source)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(target)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return written, err
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string-array parameter; JSON arrays arrive as
// []interface{}.
func getStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
