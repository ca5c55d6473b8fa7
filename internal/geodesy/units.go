package geodesy

import (
	"math"
)

//go:generate enumer -text -type Unit -trimprefix Unit

// Unit of an angle, a length or a scale
type Unit int

const (
	UnitUNDEFINED Unit = iota
	UnitRADIAN
	UnitDEGREE
	UnitGRAD
	UnitDMS // packed ddd.mmsss
	UnitDM  // packed ddd.mmmm
	UnitMINUTE
	UnitSECOND
	UnitMICRORADIAN
	UnitMETER
	UnitKILOMETER
	UnitMILLIMETER
	UnitPPM
	UnitUNITLESS
)

type unitFamily int

const (
	familyNone unitFamily = iota
	familyAngle
	familyLength
	familyScale
)

// factor to the base unit of the family (radian, meter, unitless). Packed units are handled apart.
var unitFactors = map[Unit]float64{
	UnitRADIAN:      1,
	UnitDEGREE:      math.Pi / 180,
	UnitGRAD:        math.Pi / 200,
	UnitMINUTE:      math.Pi / 10800,
	UnitSECOND:      math.Pi / 648000,
	UnitMICRORADIAN: 1e-6,
	UnitMETER:       1,
	UnitKILOMETER:   1000,
	UnitMILLIMETER:  1e-3,
	UnitPPM:         1e-6,
	UnitUNITLESS:    1,
}

func (u Unit) family() unitFamily {
	switch u {
	case UnitRADIAN, UnitDEGREE, UnitGRAD, UnitDMS, UnitDM, UnitMINUTE, UnitSECOND, UnitMICRORADIAN:
		return familyAngle
	case UnitMETER, UnitKILOMETER, UnitMILLIMETER:
		return familyLength
	case UnitPPM, UnitUNITLESS:
		return familyScale
	}
	return familyNone
}

// IsAngular returns true if the unit measures an angle
func (u Unit) IsAngular() bool {
	return u.family() == familyAngle
}

// IsLinear returns true if the unit measures a length
func (u Unit) IsLinear() bool {
	return u.family() == familyLength
}

// UnitConvert converts a value between two units of the same family
func UnitConvert(v float64, from, to Unit) (float64, error) {
	ff, ft := from.family(), to.family()
	if ff == familyNone || ft == familyNone {
		return 0, NewInvalidArgument("cannot convert from %s to %s: unknown unit", from, to)
	}
	if ff != ft {
		return 0, NewInvalidArgument("cannot convert from %s to %s: incompatible units", from, to)
	}
	if from == to {
		return v, nil
	}
	switch from {
	case UnitDMS:
		v, from = dmsToDegrees(v), UnitDEGREE
	case UnitDM:
		v, from = dmToDegrees(v), UnitDEGREE
	}
	if from == to {
		return v, nil
	}
	switch to {
	case UnitDMS:
		return degreesToDMS(convertFactor(v, from, UnitDEGREE)), nil
	case UnitDM:
		return degreesToDM(convertFactor(v, from, UnitDEGREE)), nil
	}
	return convertFactor(v, from, to), nil
}

func convertFactor(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	// degrees and radians are by far the most frequent pair: keep them to a single rounding
	switch {
	case from == UnitDEGREE && to == UnitRADIAN:
		return v * math.Pi / 180
	case from == UnitRADIAN && to == UnitDEGREE:
		return v * 180 / math.Pi
	}
	return v * unitFactors[from] / unitFactors[to]
}

// DegToRad converts degrees to radians
func DegToRad(v float64) float64 {
	return v * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(v float64) float64 {
	return v * 180 / math.Pi
}

func splitSign(v float64) (float64, float64) {
	if v < 0 {
		return -1, -v
	}
	return 1, v
}

func dmsToDegrees(v float64) float64 {
	sign, v := splitSign(v)
	d := math.Floor(v + 1e-12)
	r := (v - d) * 100
	m := math.Floor(r + 1e-9)
	s := math.Max((r-m)*100, 0)
	return sign * (d + m/60 + s/3600)
}

func dmToDegrees(v float64) float64 {
	sign, v := splitSign(v)
	d := math.Floor(v + 1e-12)
	m := math.Max((v-d)*100, 0)
	return sign * (d + m/60)
}

func degreesToDMS(v float64) float64 {
	sign, v := splitSign(v)
	d := math.Floor(v)
	r := (v - d) * 60
	m := math.Floor(r)
	s := (r - m) * 60
	if s >= 60-1e-9 {
		s, m = 0, m+1
	}
	if m >= 60 {
		m, d = m-60, d+1
	}
	return sign * (d + m/100 + s/10000)
}

func degreesToDM(v float64) float64 {
	sign, v := splitSign(v)
	d := math.Floor(v)
	m := (v - d) * 60
	if m >= 60-1e-9 {
		m, d = 0, d+1
	}
	return sign * (d + m/100)
}
