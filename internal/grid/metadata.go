package grid

import (
	"fmt"
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"go.uber.org/multierr"
)

// Metadata of a grid. Coordinates of the nodes are in degrees, east and north positive.
type Metadata struct {
	Name        string
	Description string
	Path        string
	Format      Format

	// Bounds of the nodes (centers)
	West, East   float64
	South, North float64
	// Increments between nodes
	StepLon, StepLat float64
	// Declared dimensions, checked against the bounds and increments when not zero
	Cols, Rows int

	Layout NodeLayout
	// ValuesPerNode used by the transformations (1: height, 2: lon/lat shifts, 3: geocentric translations)
	ValuesPerNode int
	// StoredValues per node record, at least ValuesPerNode (extra values are skipped)
	StoredValues int
	ValueUnit    geodesy.Unit
	// Binary formats only
	ValueType ValueType
	Encoding  Encoding

	Interpolation Interpolation
	// SplineWindow is the number of nodes along each axis used by the spline interpolation
	SplineWindow int

	HasUnknownValue bool
	UnknownValue    float64
	// UnknownAsZero replaces unknown values by zero instead of failing
	UnknownAsZero bool
	// PrecisionCode: each node record ends with a precision code
	PrecisionCode bool
	// Authoritative grids hold values expressed at nodes of the target frame
	Authoritative bool

	// NTv2 shift grids store the latitude shift first and longitude shifts positive westward
	LatFirst     bool
	WestPositive bool
}

// MinSplineWindow is the smallest window of the spline interpolation
const MinSplineWindow = 4

const maxStoredValues = 8

// defaults returns the metadata every file of the format starts from
func defaults(f Format) Metadata {
	m := Metadata{
		Format:        f,
		ValuesPerNode: 1,
		ValueUnit:     geodesy.UnitMETER,
		Interpolation: InterpolationBILINEAR,
		SplineWindow:  MinSplineWindow,
	}
	switch f {
	case FormatTAC, FormatTBC:
		m.Layout = NodeLayoutSWNORTHEAST
		m.ValuesPerNode = 3
		m.PrecisionCode = true
		m.HasUnknownValue, m.UnknownValue = true, 9999
		m.ValueType, m.Encoding = ValueTypeFLOAT64, EncodingLITTLEENDIAN
	case FormatNTV2ASCII, FormatNTV2BINARY:
		m.Layout = NodeLayoutSEWESTNORTH
		m.ValuesPerNode, m.StoredValues = 2, 4
		m.ValueUnit = geodesy.UnitSECOND
		m.ValueType, m.Encoding = ValueTypeFLOAT32, EncodingLITTLEENDIAN
		m.LatFirst, m.WestPositive = true, true
	case FormatGRAVSOFT:
		m.Layout = NodeLayoutNWEASTSOUTH
		m.HasUnknownValue, m.UnknownValue = true, 9999
	case FormatEGM:
		m.Layout = NodeLayoutNWEASTSOUTH
		m.Interpolation = InterpolationSPLINE
	case FormatESRI:
		m.Layout = NodeLayoutNWEASTSOUTH
		m.HasUnknownValue, m.UnknownValue = true, -9999
	case FormatGTXASCII, FormatGTXBINARY:
		m.Layout = NodeLayoutSWEASTNORTH
		m.HasUnknownValue, m.UnknownValue = true, -88.8888
		m.ValueType, m.Encoding = ValueTypeFLOAT32, EncodingBIGENDIAN
	case FormatSURFER:
		m.Layout = NodeLayoutSWEASTNORTH
		m.HasUnknownValue, m.UnknownValue = true, 1.70141e38
	case FormatDIS:
		m.Layout = NodeLayoutSWEASTNORTH
		m.HasUnknownValue, m.UnknownValue = true, 9999
	case FormatGDAL:
		m.Layout = NodeLayoutNWEASTSOUTH
		m.ValueType = ValueTypeFLOAT64
	}
	return m
}

// dimension returns the number of nodes between min and max, or an error if the increment does not divide the extent
func dimension(min, max, step float64) (int, error) {
	n := (max - min) / step
	r := math.Round(n)
	if math.Abs(n-r) > 1e-6*math.Max(1, r) {
		return 0, fmt.Errorf("increment %g does not divide extent [%g, %g]", step, min, max)
	}
	return int(r) + 1, nil
}

// Size returns the number of columns and rows computed from the bounds and increments
func (m *Metadata) Size() (cols, rows int, err error) {
	if cols, err = dimension(m.West, m.East, m.StepLon); err != nil {
		return 0, 0, err
	}
	if rows, err = dimension(m.South, m.North, m.StepLat); err != nil {
		return 0, 0, err
	}
	return cols, rows, nil
}

// recordValues returns the number of values of a node record
func (m *Metadata) recordValues() int {
	if m.StoredValues > m.ValuesPerNode {
		return m.StoredValues
	}
	return m.ValuesPerNode
}

// Validate checks every field and returns all the violations at once
func (m *Metadata) Validate() error {
	var err error
	fieldErr := func(field, desc string, a ...interface{}) {
		err = multierr.Append(err, geodesy.NewFieldError(field, desc, a...))
	}
	if m.Format == FormatUNDEFINED {
		fieldErr("format", "undefined format")
	}
	if !finite(m.West, m.East, m.South, m.North) {
		fieldErr("bounds", "bounds must be finite")
	}
	if !(m.West < m.East) {
		fieldErr("west", "west (%g) must be lower than east (%g)", m.West, m.East)
	}
	if !(m.South < m.North) {
		fieldErr("south", "south (%g) must be lower than north (%g)", m.South, m.North)
	}
	if m.South < -90 || m.North > 90 {
		fieldErr("north", "latitudes out of [-90, 90]: [%g, %g]", m.South, m.North)
	}
	if !(m.StepLon > 0) {
		fieldErr("step_lon", "increment must be positive (got %g)", m.StepLon)
	}
	if !(m.StepLat > 0) {
		fieldErr("step_lat", "increment must be positive (got %g)", m.StepLat)
	}
	if m.West < m.East && m.StepLon > 0 {
		if cols, e := dimension(m.West, m.East, m.StepLon); e != nil {
			fieldErr("cols", "%v", e)
		} else if m.Cols != 0 && cols != m.Cols {
			fieldErr("cols", "declared %d columns, computed %d", m.Cols, cols)
		} else if cols < 2 {
			fieldErr("cols", "at least 2 columns are required")
		}
	}
	if m.South < m.North && m.StepLat > 0 {
		if rows, e := dimension(m.South, m.North, m.StepLat); e != nil {
			fieldErr("rows", "%v", e)
		} else if m.Rows != 0 && rows != m.Rows {
			fieldErr("rows", "declared %d rows, computed %d", m.Rows, rows)
		} else if rows < 2 {
			fieldErr("rows", "at least 2 rows are required")
		}
	}
	if m.Layout <= NodeLayoutUNDEFINED || m.Layout > NodeLayoutNEWESTSOUTH {
		fieldErr("node_layout", "invalid node layout %s", m.Layout)
	}
	if m.ValuesPerNode < 1 || m.ValuesPerNode > 3 {
		fieldErr("values_per_node", "must be 1, 2 or 3 (got %d)", m.ValuesPerNode)
	}
	if m.StoredValues != 0 && m.StoredValues < m.ValuesPerNode {
		fieldErr("stored_values", "%d stored values cannot hold %d values per node", m.StoredValues, m.ValuesPerNode)
	}
	if m.StoredValues > maxStoredValues {
		fieldErr("stored_values", "at most %d values per node record (got %d)", maxStoredValues, m.StoredValues)
	}
	if !m.ValueUnit.IsLinear() && !m.ValueUnit.IsAngular() {
		fieldErr("value_unit", "invalid unit %s", m.ValueUnit)
	}
	if m.Format.IsBinary() {
		if m.ValueType.Size() == 0 {
			fieldErr("value_type", "invalid value type %s", m.ValueType)
		}
		if m.Encoding != EncodingLITTLEENDIAN && m.Encoding != EncodingBIGENDIAN {
			fieldErr("encoding", "invalid encoding %s", m.Encoding)
		}
	}
	switch m.Interpolation {
	case InterpolationBILINEAR:
	case InterpolationSPLINE:
		if m.SplineWindow < MinSplineWindow {
			fieldErr("spline_window", "window must be at least %d (got %d)", MinSplineWindow, m.SplineWindow)
		} else if cols, rows, e := m.Size(); e == nil && (cols < m.SplineWindow || rows < m.SplineWindow) {
			fieldErr("spline_window", "window %d larger than the grid (%dx%d)", m.SplineWindow, cols, rows)
		}
	default:
		fieldErr("interpolation", "invalid interpolation %s", m.Interpolation)
	}
	return err
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// String returns a multi-line description of the metadata
func (m Metadata) String() string {
	s := fmt.Sprintf("name: %s\nformat: %s\npath: %s\n", m.Name, m.Format, m.Path)
	if m.Description != "" {
		s += fmt.Sprintf("description: %s\n", m.Description)
	}
	s += fmt.Sprintf("bounds: W %.9f E %.9f S %.9f N %.9f\nincrements: %.9f x %.9f\n", m.West, m.East, m.South, m.North, m.StepLon, m.StepLat)
	if cols, rows, err := m.Size(); err == nil {
		s += fmt.Sprintf("size: %d x %d\n", cols, rows)
	}
	s += fmt.Sprintf("layout: %s\nvalues: %d (%s)\ninterpolation: %s\n", m.Layout, m.ValuesPerNode, m.ValueUnit, m.Interpolation)
	if m.Format.IsBinary() {
		s += fmt.Sprintf("value type: %s %s\n", m.ValueType, m.Encoding)
	}
	if m.HasUnknownValue {
		s += fmt.Sprintf("unknown value: %g (as zero: %t)\n", m.UnknownValue, m.UnknownAsZero)
	}
	s += fmt.Sprintf("precision code: %t\nauthoritative: %t\n", m.PrecisionCode, m.Authoritative)
	return s
}
