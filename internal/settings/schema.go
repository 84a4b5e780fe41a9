package settings

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// KeyMaxRefLookupDistance is the distance searched for a substitute marker
// when a reference has no location of its own.
const KeyMaxRefLookupDistance = "fMaxRefLookupDistance"

const (
	DefaultMaxLookupRadius = 25000.0
	MinMaxLookupRadius     = 0.0
	MaxMaxLookupRadius     = 150000.0
)

// KeySpec describes one float key of a section.
type KeySpec struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
	Comment string
}

// Clamp restricts v to [Min, Max]. NaN is replaced by the default.
func (k KeySpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = k.Default
	}
	return max(k.Min, min(k.Max, v))
}

// Schema is the expected key set of a single INI section.
type Schema struct {
	Section string
	Keys    []KeySpec
}

// General is the schema of ContainerDistributionFramework.ini.
var General = Schema{
	Section: "General",
	Keys: []KeySpec{
		{
			Name:    KeyMaxRefLookupDistance,
			Default: DefaultMaxLookupRadius,
			Min:     MinMaxLookupRadius,
			Max:     MaxMaxLookupRadius,
			Comment: "If a reference does not have a location specified, search this distance for a marker with a location to substitute.",
		},
	},
}

// sections returns every section of f named like s.Section, in file order.
// Section and key names are matched ignoring case, and case variants of the
// section are read as one section, the way the game's INI reader treats them.
func (s Schema) sections(f *ini.File) []*ini.Section {
	var found []*ini.Section
	for _, sec := range f.Sections() {
		if strings.EqualFold(sec.Name(), s.Section) {
			found = append(found, sec)
		}
	}
	return found
}

// NeedsRebuild reports whether the section in f differs from the schema,
// either by key count or by a missing expected key. f is not modified.
func (s Schema) NeedsRebuild(f *ini.File) bool {
	present := make(map[string]bool)
	for _, sec := range s.sections(f) {
		for _, name := range sec.KeyStrings() {
			present[strings.ToLower(name)] = true
		}
	}
	if len(present) != len(s.Keys) {
		return true
	}
	for _, k := range s.Keys {
		if !present[strings.ToLower(k.Name)] {
			return true
		}
	}
	return false
}

// WriteDefaults drops every case variant of the section and rewrites every
// key with its default value and comment.
func (s Schema) WriteDefaults(f *ini.File) error {
	for _, sec := range s.sections(f) {
		f.DeleteSection(sec.Name())
	}
	sec, err := f.NewSection(s.Section)
	if err != nil {
		return err
	}
	for _, k := range s.Keys {
		key, err := sec.NewKey(k.Name, formatFloat(k.Default))
		if err != nil {
			return err
		}
		key.Comment = k.Comment
	}
	return nil
}

// Spec returns the KeySpec for name.
func (s Schema) Spec(name string) (KeySpec, bool) {
	for _, k := range s.Keys {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return KeySpec{}, false
}

// Float returns the value of name, or its default when the section, the key
// or a parseable value is missing. When the key appears more than once the
// last occurrence wins. The result is not clamped.
func (s Schema) Float(f *ini.File, name string) float64 {
	spec, _ := s.Spec(name)

	var last *ini.Key
	for _, sec := range s.sections(f) {
		for _, key := range sec.Keys() {
			if strings.EqualFold(key.Name(), name) {
				last = key
			}
		}
	}
	if last == nil {
		return spec.Default
	}
	v, err := last.Float64()
	if err != nil {
		return spec.Default
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
