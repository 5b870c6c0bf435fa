package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureOSM = `
OS:Version,
  {v1},                                   !- Handle
  3.7.0;                                  !- Version Identifier

OS:Building,
  {b1},                                   !- Handle
  Small Office,                           !- Name
  Office,                                 !- Building Sector Type
  30,                                     !- North Axis {deg}
  ,                                       !- Nominal Floor to Ceiling Height {m}
  1,                                      !- Standards Number of Stories
  ,                                       !- Standards Number of Living Units
  ,                                       !- Relocatable
  ,                                       !- Nominal Floor to Roof Height {m}
  {st1},                                  !- Space Type Name
  ,                                       !- Default Construction Set Name
  ,                                       !- Default Schedule Set Name
  Office;                                 !- Standards Building Type

OS:SpaceType,
  {st1},                                  !- Handle
  Open Office;                            !- Name

OS:BuildingStory,
  {bs1},                                  !- Handle
  Ground Floor;                           !- Name

OS:ThermalZone,
  {tz1},                                  !- Handle
  Zone 1,                                 !- Name
  1,                                      !- Multiplier
  3,                                      !- Ceiling Height {m}
  300;                                    !- Volume {m3}

OS:Space,
  {sp1},                                  !- Handle
  Office 101,                             !- Name
  {st1},                                  !- Space Type Name
  ,                                       !- Default Construction Set Name
  ,                                       !- Default Schedule Set Name
  0,                                      !- Direction of Relative North {deg}
  0,                                      !- X Origin {m}
  0,                                      !- Y Origin {m}
  0,                                      !- Z Origin {m}
  {bs1},                                  !- Building Story Name
  {tz1},                                  !- Thermal Zone Name
  Yes;                                    !- Part of Total Floor Area

OS:Space,
  {sp2},                                  !- Handle
  Office 102,                             !- Name
  {st1},                                  !- Space Type Name
  ,                                       !- Default Construction Set Name
  ,                                       !- Default Schedule Set Name
  0,                                      !- Direction of Relative North {deg}
  10,                                     !- X Origin {m}
  0,                                      !- Y Origin {m}
  0,                                      !- Z Origin {m}
  {bs1},                                  !- Building Story Name
  {tz1},                                  !- Thermal Zone Name
  Yes;                                    !- Part of Total Floor Area

OS:Material,
  {m1},                                   !- Handle
  Gypsum Board,                           !- Name
  MediumSmooth,                           !- Roughness
  0.0127,                                 !- Thickness {m}
  0.16,                                   !- Conductivity {W/m-K}
  800,                                    !- Density {kg/m3}
  1090;                                   !- Specific Heat {J/kg-K}

OS:Material:NoMass,
  {m2},                                   !- Handle
  Carpet Pad,                             !- Name
  Rough,                                  !- Roughness
  0.21648;                                !- Thermal Resistance {m2-K/W}

OS:ScheduleTypeLimits,
  {stl1},                                 !- Handle
  Fractional;                             !- Name

OS:Schedule:Day,
  {day1},                                 !- Handle
  Office Occupancy Default;               !- Name

OS:Schedule:Ruleset,
  {sch1},                                 !- Handle
  Office Occupancy,                       !- Name
  {stl1},                                 !- Schedule Type Limits Name
  {day1};                                 !- Default Day Schedule Name

OS:Lights:Definition,
  {ld1},                                  !- Handle
  Office Lights Def,                      !- Name
  Watts/Area,                             !- Design Level Calculation Method
  ,                                       !- Lighting Level {W}
  10.8,                                   !- Watts per Space Floor Area {W/m2}
  ,                                       !- Watts per Person {W/person}
  0.37,                                   !- Fraction Radiant
  0.18,                                   !- Fraction Visible
  0;                                      !- Return Air Fraction

OS:Lights,
  {l1},                                   !- Handle
  Office Lights,                          !- Name
  {ld1},                                  !- Lights Definition Name
  {st1},                                  !- Space or SpaceType Name
  {sch1};                                 !- Schedule Name

OS:People:Definition,
  {pd1},                                  !- Handle
  Office People Def,                      !- Name
  People/Area,                            !- Number of People Calculation Method
  ,                                       !- Number of People
  0.056;                                  !- People per Space Floor Area {person/m2}

OS:People,
  {p1},                                   !- Handle
  Office People,                          !- Name
  {pd1},                                  !- People Definition Name
  {st1},                                  !- Space or SpaceType Name
  {sch1},                                 !- Number of People Schedule Name
  {sch1};                                 !- Activity Level Schedule Name

OS:ElectricEquipment:Definition,
  {ed1},                                  !- Handle
  Office Equipment Def,                   !- Name
  Watts/Area,                             !- Design Level Calculation Method
  ,                                       !- Design Level {W}
  8.07;                                   !- Watts per Space Floor Area {W/m2}

OS:ElectricEquipment,
  {e1},                                   !- Handle
  Office Equipment,                       !- Name
  {ed1},                                  !- Equipment Definition Name
  {st1},                                  !- Space or SpaceType Name
  {sch1};                                 !- Schedule Name

OS:AirLoopHVAC,
  {al1},                                  !- Handle
  VAV System,                             !- Name
  ,                                       !- Controller List Name
  {sch1},                                 !- Availability Schedule
  ,                                       !- Availability Manager List Name
  autosize;                               !- Design Supply Air Flow Rate {m3/s}
`

func parseFixture(t *testing.T) *Model {
	t.Helper()
	m, err := Parse(strings.NewReader(fixtureOSM))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parseFixture(t)

	assert.Equal(t, "3.7.0", m.VersionString())
	assert.Len(t, m.ObjectsOfType(TypeSpace), 2)
	assert.Len(t, m.ObjectsOfType(TypeThermalZone), 1)

	b := m.Building()
	require.NotNil(t, b)
	assert.Equal(t, "Small Office", b.Name())
	assert.Equal(t, "{b1}", b.Handle())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"OnlyComments", "! just a comment\n! another\n"},
		{"EmptyType", ",field1,field2;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.osm")
	require.NoError(t, os.WriteFile(path, []byte(fixtureOSM), 0o644))

	m, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, m.ObjectsOfType(TypeSpace), 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.osm"))
	assert.Error(t, err)
}

func TestHandleReferences(t *testing.T) {
	m := parseFixture(t)

	assert.Equal(t, "Open Office", m.RefName("{st1}"))
	assert.Equal(t, "Zone 1", m.RefName("{tz1}"))
	// Dangling references resolve to empty, not the raw handle.
	assert.Equal(t, "", m.RefName("{nope}"))
	// Non-handle values pass through.
	assert.Equal(t, "plain", m.RefName("plain"))
}

func TestSummary(t *testing.T) {
	m := parseFixture(t)
	s := m.Summary()

	assert.Equal(t, "Small Office", s["building_name"])
	assert.Equal(t, "3.7.0", s["version"])
	assert.Equal(t, 2, s["spaces"])
	assert.Equal(t, 1, s["thermal_zones"])
	assert.Equal(t, 2, s["materials"])
	assert.Equal(t, 1, s["air_loops"])
	assert.Equal(t, 1, s["people_loads"])
	assert.Equal(t, 1, s["lighting_loads"])
	assert.Equal(t, 1, s["electric_equipment"])
	assert.Equal(t, 1, s["schedule_rulesets"])
}

func TestBuildingInfo(t *testing.T) {
	m := parseFixture(t)
	info := m.BuildingInfo()
	require.NotNil(t, info)

	assert.Equal(t, "Small Office", info["name"])
	assert.Equal(t, 30.0, info["north_axis_deg"])
	assert.Equal(t, "Open Office", info["space_type"])
	assert.Equal(t, "Office", info["standards_building_type"])
}

func TestSpaces(t *testing.T) {
	m := parseFixture(t)

	spaces := m.Spaces()
	require.Len(t, spaces, 2)
	assert.Equal(t, "Office 101", spaces[0]["name"])
	assert.Equal(t, "Zone 1", spaces[0]["thermal_zone"])
	assert.Equal(t, "Ground Floor", spaces[0]["building_story"])
	assert.Equal(t, "Open Office", spaces[0]["space_type"])

	info, found := m.SpaceByName("Office 102")
	require.True(t, found)
	assert.Equal(t, 10.0, info["x_origin_m"])

	_, found = m.SpaceByName("Basement")
	assert.False(t, found)
}

func TestThermalZones(t *testing.T) {
	m := parseFixture(t)

	zones := m.ThermalZones()
	require.Len(t, zones, 1)
	assert.Equal(t, "Zone 1", zones[0]["name"])
	assert.Equal(t, 300.0, zones[0]["volume_m3"])
	assert.ElementsMatch(t, []string{"Office 101", "Office 102"}, zones[0]["spaces"])

	_, found := m.ThermalZoneByName("Zone 99")
	assert.False(t, found)
}

func TestMaterials(t *testing.T) {
	m := parseFixture(t)

	materials := m.Materials()
	require.Len(t, materials, 2)
	assert.Equal(t, "Gypsum Board", materials[0]["name"])
	assert.Equal(t, "standard", materials[0]["type"])
	assert.Equal(t, 0.16, materials[0]["conductivity_w_per_mk"])
	assert.Equal(t, "Carpet Pad", materials[1]["name"])
	assert.Equal(t, "no_mass", materials[1]["type"])
}

func TestLoads(t *testing.T) {
	m := parseFixture(t)

	people := m.PeopleLoads()
	require.Len(t, people, 1)
	assert.Equal(t, "Office People", people[0]["name"])
	assert.Equal(t, "Office People Def", people[0]["definition"])
	assert.Equal(t, 0.056, people[0]["people_per_floor_area"])

	lights := m.LightingLoads()
	require.Len(t, lights, 1)
	assert.Equal(t, 10.8, lights[0]["watts_per_floor_area"])
	assert.Equal(t, "Office Occupancy", lights[0]["schedule"])

	equip := m.ElectricEquipmentLoads()
	require.Len(t, equip, 1)
	assert.Equal(t, 8.07, equip[0]["watts_per_floor_area"])
}

func TestAirLoopsAndSchedules(t *testing.T) {
	m := parseFixture(t)

	loops := m.AirLoops()
	require.Len(t, loops, 1)
	assert.Equal(t, "VAV System", loops[0]["name"])
	assert.Equal(t, "Office Occupancy", loops[0]["availability_schedule"])
	assert.Equal(t, "autosize", loops[0]["design_supply_air_flow_rate_m3_per_s"])

	schedules := m.ScheduleRulesets()
	require.Len(t, schedules, 1)
	assert.Equal(t, "Office Occupancy", schedules[0]["name"])
	assert.Equal(t, "Fractional", schedules[0]["schedule_type_limits"])
	assert.Equal(t, "Office Occupancy Default", schedules[0]["default_day_schedule"])
}

func TestSaveRoundTrip(t *testing.T) {
	m := parseFixture(t)
	path := filepath.Join(t.TempDir(), "saved.osm")
	require.NoError(t, m.Save(path))

	reloaded, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Summary(), reloaded.Summary())
	assert.Equal(t, "Zone 1", reloaded.RefName("{tz1}"))
}

func TestWriteIDF(t *testing.T) {
	m := parseFixture(t)

	var b strings.Builder
	m.WriteIDF(&b)
	idf := b.String()

	assert.NotContains(t, idf, "OS:")
	assert.NotContains(t, idf, "{")
	assert.Contains(t, idf, "Building,")
	assert.Contains(t, idf, "Space,")
	// Handle references are replaced with names.
	assert.Contains(t, idf, "Zone 1")
	assert.Contains(t, idf, "Ground Floor")
	// OpenStudio-only bookkeeping objects are dropped.
	assert.NotContains(t, idf, "SpaceType,")
}

func TestSaveIDF(t *testing.T) {
	m := parseFixture(t)
	path := filepath.Join(t.TempDir(), "out.idf")
	require.NoError(t, m.SaveIDF(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Version,")
}
