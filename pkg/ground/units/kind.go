package units

import "fmt"

// Kind identifies which physical quantity a ground-motion record carries
type Kind int

const (
	Displacement Kind = iota
	Velocity
	Acceleration
)

// kindInfo holds the fixed reference data for one kind
type kindInfo struct {
	name      string
	short     string
	canonical string
}

var kindTable = map[Kind]kindInfo{
	Displacement: {name: "displacement", short: "dis", canonical: "m"},
	Velocity:     {name: "velocity", short: "vel", canonical: "m/s"},
	Acceleration: {name: "acceleration", short: "acc", canonical: "m/s2"},
}

// String returns the full display name of the kind
func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Short returns the three-letter selector used in service requests
func (k Kind) Short() string {
	return kindTable[k].short
}

// CanonicalUnit returns the SI unit every scale factor is relative to
func (k Kind) CanonicalUnit() string {
	return kindTable[k].canonical
}

// IsValid reports whether k is one of the three recognized kinds
func (k Kind) IsValid() bool {
	_, ok := kindTable[k]
	return ok
}

// ParseKind resolves a kind from its display name or three-letter selector
func ParseKind(s string) (Kind, error) {
	for k, info := range kindTable {
		if s == info.name || s == info.short {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown ground-motion kind: %q", s)
}
