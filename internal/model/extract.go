package model

import "strconv"

// Inspection accessors. Each returns plain key/value data ready for the
// response normalizer; field positions follow the OSM object definitions.

// Summary returns object counts and headline identification for the model.
func (m *Model) Summary() map[string]any {
	summary := map[string]any{
		"version":            m.VersionString(),
		"spaces":             len(m.ObjectsOfType(TypeSpace)),
		"thermal_zones":      len(m.ObjectsOfType(TypeThermalZone)),
		"materials":          len(m.ObjectsOfType(TypeMaterial)) + len(m.ObjectsOfType(TypeMaterialNoMass)),
		"air_loops":          len(m.ObjectsOfType(TypeAirLoop)),
		"people_loads":       len(m.ObjectsOfType(TypePeople)),
		"lighting_loads":     len(m.ObjectsOfType(TypeLights)),
		"electric_equipment": len(m.ObjectsOfType(TypeElectricEquipment)),
		"schedule_rulesets":  len(m.ObjectsOfType(TypeScheduleRuleset)),
		"space_types":        len(m.ObjectsOfType(TypeSpaceType)),
		"building_stories":   len(m.ObjectsOfType(TypeBuildingStory)),
		"total_objects":      len(m.objects),
	}
	if b := m.Building(); b != nil {
		summary["building_name"] = b.Name()
	}
	return summary
}

// BuildingInfo returns the OS:Building object's attributes, or nil when the
// model has no building.
func (m *Model) BuildingInfo() map[string]any {
	b := m.Building()
	if b == nil {
		return nil
	}
	return map[string]any{
		"name":                     b.Name(),
		"building_sector_type":     b.Field(2),
		"north_axis_deg":           numeric(b.Field(3)),
		"space_type":               m.RefName(b.Field(9)),
		"default_construction_set": m.RefName(b.Field(10)),
		"default_schedule_set":     m.RefName(b.Field(11)),
		"standards_building_type":  b.Field(12),
	}
}

func (m *Model) spaceInfo(o *Object) map[string]any {
	return map[string]any{
		"handle":                          o.Handle(),
		"name":                            o.Name(),
		"space_type":                      m.RefName(o.Field(2)),
		"default_construction_set":        m.RefName(o.Field(3)),
		"default_schedule_set":            m.RefName(o.Field(4)),
		"direction_of_relative_north_deg": numeric(o.Field(5)),
		"x_origin_m":                      numeric(o.Field(6)),
		"y_origin_m":                      numeric(o.Field(7)),
		"z_origin_m":                      numeric(o.Field(8)),
		"building_story":                  m.RefName(o.Field(9)),
		"thermal_zone":                    m.RefName(o.Field(10)),
		"part_of_total_floor_area":        o.Field(11),
	}
}

// Spaces returns every OS:Space as a key/value record.
func (m *Model) Spaces() []map[string]any {
	return m.collect(TypeSpace, m.spaceInfo)
}

// SpaceByName looks up a space by its name field.
func (m *Model) SpaceByName(name string) (map[string]any, bool) {
	return m.findNamed(TypeSpace, name, m.spaceInfo)
}

func (m *Model) zoneInfo(o *Object) map[string]any {
	info := map[string]any{
		"handle":           o.Handle(),
		"name":             o.Name(),
		"multiplier":       numeric(o.Field(2)),
		"ceiling_height_m": numeric(o.Field(3)),
		"volume_m3":        numeric(o.Field(4)),
	}

	// Spaces reference their zone, not the other way around.
	var spaces []string
	for _, sp := range m.ObjectsOfType(TypeSpace) {
		if sp.Field(10) == o.Handle() {
			spaces = append(spaces, sp.Name())
		}
	}
	info["spaces"] = spaces
	return info
}

// ThermalZones returns every OS:ThermalZone with its attached spaces.
func (m *Model) ThermalZones() []map[string]any {
	return m.collect(TypeThermalZone, m.zoneInfo)
}

// ThermalZoneByName looks up a thermal zone by name.
func (m *Model) ThermalZoneByName(name string) (map[string]any, bool) {
	return m.findNamed(TypeThermalZone, name, m.zoneInfo)
}

// Materials returns standard and massless opaque materials.
func (m *Model) Materials() []map[string]any {
	out := m.collect(TypeMaterial, func(o *Object) map[string]any {
		return map[string]any{
			"name":                    o.Name(),
			"type":                    "standard",
			"roughness":               o.Field(2),
			"thickness_m":             numeric(o.Field(3)),
			"conductivity_w_per_mk":   numeric(o.Field(4)),
			"density_kg_per_m3":       numeric(o.Field(5)),
			"specific_heat_j_per_kgk": numeric(o.Field(6)),
		}
	})
	out = append(out, m.collect(TypeMaterialNoMass, func(o *Object) map[string]any {
		return map[string]any{
			"name":                         o.Name(),
			"type":                         "no_mass",
			"roughness":                    o.Field(2),
			"thermal_resistance_m2k_per_w": numeric(o.Field(3)),
		}
	})...)
	return out
}

// AirLoops returns every OS:AirLoopHVAC system.
func (m *Model) AirLoops() []map[string]any {
	return m.collect(TypeAirLoop, func(o *Object) map[string]any {
		return map[string]any{
			"name":                                 o.Name(),
			"availability_schedule":                m.RefName(o.Field(3)),
			"design_supply_air_flow_rate_m3_per_s": o.Field(5),
		}
	})
}

// PeopleLoads returns occupancy loads joined with their definitions.
func (m *Model) PeopleLoads() []map[string]any {
	return m.collect(TypePeople, func(o *Object) map[string]any {
		info := map[string]any{
			"name":                      o.Name(),
			"space_or_space_type":       m.RefName(o.Field(3)),
			"number_of_people_schedule": m.RefName(o.Field(4)),
			"activity_schedule":         m.RefName(o.Field(5)),
		}
		if def := m.ByHandle(o.Field(2)); def != nil {
			info["definition"] = def.Name()
			info["calculation_method"] = def.Field(2)
			info["number_of_people"] = numeric(def.Field(3))
			info["people_per_floor_area"] = numeric(def.Field(4))
		}
		return info
	})
}

// LightingLoads returns lighting loads joined with their definitions.
func (m *Model) LightingLoads() []map[string]any {
	return m.collect(TypeLights, func(o *Object) map[string]any {
		info := map[string]any{
			"name":                o.Name(),
			"space_or_space_type": m.RefName(o.Field(3)),
			"schedule":            m.RefName(o.Field(4)),
		}
		if def := m.ByHandle(o.Field(2)); def != nil {
			info["definition"] = def.Name()
			info["calculation_method"] = def.Field(2)
			info["lighting_level_w"] = numeric(def.Field(3))
			info["watts_per_floor_area"] = numeric(def.Field(4))
			info["return_air_fraction"] = numeric(def.Field(8))
		}
		return info
	})
}

// ElectricEquipmentLoads returns plug loads joined with their definitions.
func (m *Model) ElectricEquipmentLoads() []map[string]any {
	return m.collect(TypeElectricEquipment, func(o *Object) map[string]any {
		info := map[string]any{
			"name":                o.Name(),
			"space_or_space_type": m.RefName(o.Field(3)),
			"schedule":            m.RefName(o.Field(4)),
		}
		if def := m.ByHandle(o.Field(2)); def != nil {
			info["definition"] = def.Name()
			info["calculation_method"] = def.Field(2)
			info["design_level_w"] = numeric(def.Field(3))
			info["watts_per_floor_area"] = numeric(def.Field(4))
		}
		return info
	})
}

// ScheduleRulesets returns every OS:Schedule:Ruleset.
func (m *Model) ScheduleRulesets() []map[string]any {
	return m.collect(TypeScheduleRuleset, func(o *Object) map[string]any {
		return map[string]any{
			"name":                 o.Name(),
			"schedule_type_limits": m.RefName(o.Field(2)),
			"default_day_schedule": m.RefName(o.Field(3)),
		}
	})
}

func (m *Model) collect(objType string, info func(*Object) map[string]any) []map[string]any {
	objs := m.ObjectsOfType(objType)
	out := make([]map[string]any, 0, len(objs))
	for _, o := range objs {
		out = append(out, info(o))
	}
	return out
}

func (m *Model) findNamed(objType, name string, info func(*Object) map[string]any) (map[string]any, bool) {
	for _, o := range m.ObjectsOfType(objType) {
		if o.Name() == name {
			return info(o), true
		}
	}
	return nil, false
}

// numeric parses a field as a float where possible; OSM mixes numbers with
// keywords like "autocalculate", which stay strings.
func numeric(s string) any {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
