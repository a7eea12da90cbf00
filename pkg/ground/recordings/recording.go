package recordings

import (
	"fmt"
	"sort"
	"strings"
)

// ComponentSet identifies one of the two recognized component triads
type ComponentSet string

const (
	// ComponentSetZRT is vertical, radial, transverse
	ComponentSetZRT ComponentSet = "ZRT"
	// ComponentSetZNE is vertical, north, east
	ComponentSetZNE ComponentSet = "ZNE"
)

// Recording is a set of co-located component seismograms sharing one sample
// interval and sample count. Only the {Z,R,T} and {Z,N,E} triads are valid.
type Recording struct {
	components map[string]*Seismogram
	set        ComponentSet
}

// NewRecording validates the component mapping and constructs a recording.
// Components may carry different units; rotation imposes its own unit rule on
// the horizontal pair when invoked.
func NewRecording(components map[string]*Seismogram) (*Recording, error) {
	if len(components) == 0 {
		return nil, NewInvalidComponentSetError("recording requires a non-empty component mapping")
	}

	set, err := componentSetOf(components)
	if err != nil {
		return nil, err
	}

	if err := checkConsistency(components); err != nil {
		return nil, err
	}

	owned := make(map[string]*Seismogram, len(components))
	for code, s := range components {
		owned[code] = s
	}

	return &Recording{components: owned, set: set}, nil
}

// componentSetOf matches the key set against the two recognized triads
func componentSetOf(components map[string]*Seismogram) (ComponentSet, error) {
	codes := make([]string, 0, len(components))
	for code := range components {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	joined := strings.Join(codes, "")

	switch joined {
	case "RTZ":
		return ComponentSetZRT, nil
	case "ENZ":
		return ComponentSetZNE, nil
	default:
		return "", NewInvalidComponentSetError(fmt.Sprintf(
			"component codes {%s} form neither {Z,R,T} nor {Z,N,E}", strings.Join(codes, ",")))
	}
}

// checkConsistency requires identical time delta and sample count everywhere
func checkConsistency(components map[string]*Seismogram) error {
	var refCode string
	var ref *Seismogram
	for code, s := range components {
		if ref == nil {
			refCode, ref = code, s
			continue
		}
		if s.TimeDelta() != ref.TimeDelta() {
			return NewInconsistentComponentsError(fmt.Sprintf(
				"component %s has time delta %g, component %s has %g",
				code, s.TimeDelta(), refCode, ref.TimeDelta()))
		}
		if s.SampleCount() != ref.SampleCount() {
			return NewInconsistentComponentsError(fmt.Sprintf(
				"component %s has %d samples, component %s has %d",
				code, s.SampleCount(), refCode, ref.SampleCount()))
		}
	}
	return nil
}

// ComponentSet returns which of the two triads the recording carries
func (r *Recording) ComponentSet() ComponentSet {
	return r.set
}

// Component returns the seismogram for a component code
func (r *Recording) Component(code string) (*Seismogram, bool) {
	s, ok := r.components[code]
	return s, ok
}

// ComponentCodes returns the component codes in sorted order
func (r *Recording) ComponentCodes() []string {
	codes := make([]string, 0, len(r.components))
	for code := range r.components {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// TimeDelta returns the shared sample interval in seconds
func (r *Recording) TimeDelta() float64 {
	for _, s := range r.components {
		return s.TimeDelta()
	}
	return 0
}

// SampleCount returns the shared sample count
func (r *Recording) SampleCount() int {
	for _, s := range r.components {
		return s.SampleCount()
	}
	return 0
}
