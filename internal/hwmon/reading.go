package hwmon

import (
	"github.com/markusressel/hwtemp/internal/util"
)

const (
	AttributeInput    = "input"
	AttributeMax      = "max"
	AttributeCritical = "crit"
	AttributeLabel    = "label"

	chipNameFile = "name"
)

// Base identifies the family of attribute files of a single sensor,
// f.ex. "/sys/class/hwmon/hwmon0/temp1" for "temp1_input", "temp1_max", ...
type Base string

// Attribute returns the path of the given attribute file of this sensor.
func (b Base) Attribute(attribute string) string {
	return string(b) + "_" + attribute
}

func (b Base) String() string {
	return string(b)
}

// BaseSet is a set of unique sensor bases.
type BaseSet map[Base]struct{}

func NewBaseSet(bases ...Base) BaseSet {
	set := BaseSet{}
	for _, base := range bases {
		set.Add(base)
	}
	return set
}

func (s BaseSet) Add(base Base) {
	s[base] = struct{}{}
}

func (s BaseSet) Contains(base Base) bool {
	_, ok := s[base]
	return ok
}

func (s BaseSet) Len() int {
	return len(s)
}

// Sorted returns the bases in lexical order
func (s BaseSet) Sorted() []Base {
	return util.SortedKeys(s)
}

// Reading is the result of reading all attribute files of one sensor.
// Temperatures are in degrees Celsius.
type Reading struct {
	Name     string   `json:"name" yaml:"name"`
	Value    float64  `json:"value" yaml:"value"`
	High     *float64 `json:"high,omitempty" yaml:"high,omitempty"`
	Critical *float64 `json:"critical,omitempty" yaml:"critical,omitempty"`
	Label    *string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// DisplayLabel returns the label of the sensor if present, otherwise the given fallback.
func (r Reading) DisplayLabel(fallback string) string {
	if r.Label != nil && len(*r.Label) > 0 {
		return *r.Label
	}
	return fallback
}

// Result is the outcome of reading a single sensor: either Reading or Err is set.
type Result struct {
	Base    Base
	Reading *Reading
	Err     error
}

// Report is the serializable form of a Result.
type Report struct {
	Base    string   `json:"base" yaml:"base"`
	Reading *Reading `json:"reading,omitempty" yaml:"reading,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r Result) Report() Report {
	report := Report{
		Base:    r.Base.String(),
		Reading: r.Reading,
	}
	if r.Err != nil {
		report.Error = r.Err.Error()
	}
	return report
}

// Reports converts a list of results into their serializable form.
func Reports(results []Result) []Report {
	reports := make([]Report, 0, len(results))
	for _, result := range results {
		reports = append(reports, result.Report())
	}
	return reports
}
