// Package units maps ground-motion unit strings to their physical kind and
// converts values between units of the same kind. The tables are fixed
// reference data; conversion across kinds is never performed implicitly.
package units

// unitEntry binds a unit string to its kind and its scale factor relative to
// the canonical SI unit of that kind.
type unitEntry struct {
	kind  Kind
	scale float64
}

// standardGravity in m/s2, the conventional value for the unit "g"
const standardGravity = 9.80665

var unitTable = map[string]unitEntry{
	// displacement
	"m":  {Displacement, 1},
	"dm": {Displacement, 1e-1},
	"cm": {Displacement, 1e-2},
	"mm": {Displacement, 1e-3},
	"um": {Displacement, 1e-6},
	"nm": {Displacement, 1e-9},

	// velocity
	"m/s":  {Velocity, 1},
	"dm/s": {Velocity, 1e-1},
	"cm/s": {Velocity, 1e-2},
	"mm/s": {Velocity, 1e-3},
	"um/s": {Velocity, 1e-6},

	// acceleration
	"m/s2":  {Acceleration, 1},
	"dm/s2": {Acceleration, 1e-1},
	"cm/s2": {Acceleration, 1e-2},
	"mm/s2": {Acceleration, 1e-3},
	"um/s2": {Acceleration, 1e-6},
	"g":     {Acceleration, standardGravity},
	"gal":   {Acceleration, 1e-2},
	"mgal":  {Acceleration, 1e-5},
}

// KindOf returns the kind a unit string belongs to
func KindOf(unit string) (Kind, error) {
	entry, ok := unitTable[unit]
	if !ok {
		return 0, NewUnsupportedUnitError(unit)
	}
	return entry.kind, nil
}

// IsValid reports whether some kind recognizes the unit string
func IsValid(unit string) bool {
	_, ok := unitTable[unit]
	return ok
}

// Convert rescales value from one unit to another of the same kind.
// The conversion is linear: value * scale(from) / scale(to).
func Convert(value float64, from, to string) (float64, error) {
	fromEntry, ok := unitTable[from]
	if !ok {
		return 0, NewUnsupportedUnitError(from)
	}
	toEntry, ok := unitTable[to]
	if !ok {
		return 0, NewUnsupportedUnitError(to)
	}
	if fromEntry.kind != toEntry.kind {
		return 0, NewIncompatibleUnitError(to,
			"cannot convert "+fromEntry.kind.String()+" unit "+from+
				" to "+toEntry.kind.String()+" unit "+to)
	}
	return value * (fromEntry.scale / toEntry.scale), nil
}

// Scale returns the factor that converts one unit of `unit` to the canonical
// SI unit of its kind.
func Scale(unit string) (float64, error) {
	entry, ok := unitTable[unit]
	if !ok {
		return 0, NewUnsupportedUnitError(unit)
	}
	return entry.scale, nil
}
