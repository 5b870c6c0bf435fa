package model

import (
	"fmt"
	"os"
	"strings"
)

// Object types that exist only for OpenStudio bookkeeping and have no
// EnergyPlus counterpart.
var idfSkip = map[string]bool{
	strings.ToLower(TypeSpaceType):                          true,
	strings.ToLower(TypeDefaultConstruction):                true,
	strings.ToLower(TypeDefaultScheduleSet):                 true,
	strings.ToLower("OS:Rendering:Color"):                   true,
	strings.ToLower("OS:StandardsInformation:Construction"): true,
	strings.ToLower("OS:YearDescription"):                   true,
	strings.ToLower("OS:Facility"):                          true,
}

// WriteIDF performs a structural translation of the model to EnergyPlus
// IDF text: the "OS:" type prefix and handle field are dropped, and handle
// references are replaced by the referenced object's name. This is a format
// translation only; no thermal semantics are interpreted.
func (m *Model) WriteIDF(w *strings.Builder) {
	for _, o := range m.objects {
		if !strings.HasPrefix(strings.ToLower(o.Type), "os:") {
			continue
		}
		if idfSkip[strings.ToLower(o.Type)] {
			continue
		}

		fields := o.Fields
		if isHandle(o.Field(0)) {
			fields = fields[1:]
		}

		w.WriteString(strings.TrimPrefix(o.Type, "OS:"))
		if len(fields) == 0 {
			w.WriteString(";\n\n")
			continue
		}
		w.WriteString(",\n")
		for i, f := range fields {
			if isHandle(f) {
				f = m.RefName(f)
			}
			w.WriteString("  ")
			w.WriteString(f)
			if i == len(fields)-1 {
				w.WriteString(";\n")
			} else {
				w.WriteString(",\n")
			}
		}
		w.WriteString("\n")
	}
}

// SaveIDF writes the IDF translation to disk.
func (m *Model) SaveIDF(path string) error {
	var b strings.Builder
	m.WriteIDF(&b)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save idf: %w", err)
	}
	return nil
}
