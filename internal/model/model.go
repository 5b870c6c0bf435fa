package model

import (
	"fmt"
	"os"
	"strings"
)

// Known object type names used by the accessors.
const (
	TypeVersion             = "OS:Version"
	TypeBuilding            = "OS:Building"
	TypeSpace               = "OS:Space"
	TypeThermalZone         = "OS:ThermalZone"
	TypeMaterial            = "OS:Material"
	TypeMaterialNoMass      = "OS:Material:NoMass"
	TypeAirLoop             = "OS:AirLoopHVAC"
	TypePeople              = "OS:People"
	TypePeopleDefinition    = "OS:People:Definition"
	TypeLights              = "OS:Lights"
	TypeLightsDefinition    = "OS:Lights:Definition"
	TypeElectricEquipment   = "OS:ElectricEquipment"
	TypeElectricEquipDefn   = "OS:ElectricEquipment:Definition"
	TypeScheduleRuleset     = "OS:Schedule:Ruleset"
	TypeSpaceType           = "OS:SpaceType"
	TypeBuildingStory       = "OS:BuildingStory"
	TypeScheduleTypeLimits  = "OS:ScheduleTypeLimits"
	TypeDefaultConstruction = "OS:DefaultConstructionSet"
	TypeDefaultScheduleSet  = "OS:DefaultScheduleSet"
)

// Model is an in-memory OSM document: an ordered object list with type and
// handle indexes.
type Model struct {
	objects  []*Object
	byType   map[string][]*Object
	byHandle map[string]*Object
}

func newModel() *Model {
	return &Model{
		byType:   make(map[string][]*Object),
		byHandle: make(map[string]*Object),
	}
}

func (m *Model) add(o *Object) {
	m.objects = append(m.objects, o)
	key := strings.ToLower(o.Type)
	m.byType[key] = append(m.byType[key], o)
	if h := o.Handle(); h != "" {
		m.byHandle[h] = o
	}
}

// Objects returns the document's objects in file order.
func (m *Model) Objects() []*Object {
	return m.objects
}

// ObjectsOfType returns all objects of the given type, case-insensitively.
func (m *Model) ObjectsOfType(t string) []*Object {
	return m.byType[strings.ToLower(t)]
}

// ByHandle resolves a "{uuid}" handle to its object, or nil.
func (m *Model) ByHandle(handle string) *Object {
	return m.byHandle[handle]
}

// RefName dereferences a handle-valued field to the referenced object's
// name. Empty and dangling references yield "".
func (m *Model) RefName(handle string) string {
	if !isHandle(handle) {
		return handle
	}
	if o := m.ByHandle(handle); o != nil {
		return o.Name()
	}
	return ""
}

// Building returns the OS:Building object, or nil for buildingless files.
func (m *Model) Building() *Object {
	if objs := m.ObjectsOfType(TypeBuilding); len(objs) > 0 {
		return objs[0]
	}
	return nil
}

// VersionString returns the model's declared OpenStudio version.
func (m *Model) VersionString() string {
	if objs := m.ObjectsOfType(TypeVersion); len(objs) > 0 {
		v := objs[0]
		// Last field: version objects are (handle, version) or (version).
		return v.Field(len(v.Fields) - 1)
	}
	return ""
}

// Write serializes the model in OSM text form.
func (m *Model) Write(w *strings.Builder) {
	for _, o := range m.objects {
		w.WriteString(o.Type)
		if len(o.Fields) == 0 {
			w.WriteString(";\n\n")
			continue
		}
		w.WriteString(",\n")
		for i, f := range o.Fields {
			w.WriteString("  ")
			w.WriteString(f)
			if i == len(o.Fields)-1 {
				w.WriteString(";\n")
			} else {
				w.WriteString(",\n")
			}
		}
		w.WriteString("\n")
	}
}

// Save writes the model to disk at the given path.
func (m *Model) Save(path string) error {
	var b strings.Builder
	m.Write(&b)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}
