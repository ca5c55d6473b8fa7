package grid

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"go.uber.org/multierr"
)

const endOfHeader = "END_OF_HEADER"

// keyword of the TAC and TBC headers
type keyword struct {
	name string
	set  func(m *Metadata, v string) error
	get  func(m *Metadata) string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func floatKeyword(name string, field func(m *Metadata) *float64) keyword {
	return keyword{
		name: name,
		set: func(m *Metadata, v string) (err error) {
			*field(m), err = strconv.ParseFloat(v, 64)
			return
		},
		get: func(m *Metadata) string { return formatFloat(*field(m)) },
	}
}

func intKeyword(name string, field func(m *Metadata) *int) keyword {
	return keyword{
		name: name,
		set: func(m *Metadata, v string) (err error) {
			*field(m), err = strconv.Atoi(v)
			return
		},
		get: func(m *Metadata) string { return strconv.Itoa(*field(m)) },
	}
}

func boolKeyword(name string, field func(m *Metadata) *bool) keyword {
	return keyword{
		name: name,
		set: func(m *Metadata, v string) (err error) {
			*field(m), err = strconv.ParseBool(v)
			return
		},
		get: func(m *Metadata) string { return strconv.FormatBool(*field(m)) },
	}
}

func stringKeyword(name string, field func(m *Metadata) *string) keyword {
	return keyword{
		name: name,
		set: func(m *Metadata, v string) error {
			*field(m) = v
			return nil
		},
		get: func(m *Metadata) string { return *field(m) },
	}
}

// headerKeywords in the order of the TBC header
var headerKeywords = []keyword{
	stringKeyword("NAME", func(m *Metadata) *string { return &m.Name }),
	stringKeyword("DESCRIPTION", func(m *Metadata) *string { return &m.Description }),
	floatKeyword("WEST", func(m *Metadata) *float64 { return &m.West }),
	floatKeyword("EAST", func(m *Metadata) *float64 { return &m.East }),
	floatKeyword("SOUTH", func(m *Metadata) *float64 { return &m.South }),
	floatKeyword("NORTH", func(m *Metadata) *float64 { return &m.North }),
	floatKeyword("STEP_LON", func(m *Metadata) *float64 { return &m.StepLon }),
	floatKeyword("STEP_LAT", func(m *Metadata) *float64 { return &m.StepLat }),
	intKeyword("COLS", func(m *Metadata) *int { return &m.Cols }),
	intKeyword("ROWS", func(m *Metadata) *int { return &m.Rows }),
	{
		name: "NODE_LAYOUT",
		set:  func(m *Metadata, v string) (err error) { m.Layout, err = NodeLayoutString(strings.ToUpper(v)); return },
		get:  func(m *Metadata) string { return m.Layout.String() },
	},
	intKeyword("VALUES_PER_NODE", func(m *Metadata) *int { return &m.ValuesPerNode }),
	intKeyword("STORED_VALUES", func(m *Metadata) *int { return &m.StoredValues }),
	{
		name: "VALUE_UNIT",
		set: func(m *Metadata, v string) (err error) {
			m.ValueUnit, err = geodesy.UnitString(strings.ToUpper(v))
			return
		},
		get: func(m *Metadata) string { return m.ValueUnit.String() },
	},
	{
		name: "VALUE_TYPE",
		set: func(m *Metadata, v string) (err error) {
			m.ValueType, err = ValueTypeString(strings.ToUpper(v))
			return
		},
		get: func(m *Metadata) string { return m.ValueType.String() },
	},
	{
		name: "ENCODING",
		set:  func(m *Metadata, v string) (err error) { m.Encoding, err = EncodingString(strings.ToUpper(v)); return },
		get:  func(m *Metadata) string { return m.Encoding.String() },
	},
	{
		name: "INTERPOLATION",
		set: func(m *Metadata, v string) (err error) {
			m.Interpolation, err = InterpolationString(strings.ToUpper(v))
			return
		},
		get: func(m *Metadata) string { return m.Interpolation.String() },
	},
	intKeyword("SPLINE_WINDOW", func(m *Metadata) *int { return &m.SplineWindow }),
	{
		name: "UNKNOWN_VALUE",
		set: func(m *Metadata, v string) (err error) {
			if strings.EqualFold(v, "NONE") {
				m.HasUnknownValue = false
				return nil
			}
			m.HasUnknownValue = true
			m.UnknownValue, err = strconv.ParseFloat(v, 64)
			return
		},
		get: func(m *Metadata) string {
			if !m.HasUnknownValue {
				return "NONE"
			}
			return formatFloat(m.UnknownValue)
		},
	},
	boolKeyword("UNKNOWN_AS_ZERO", func(m *Metadata) *bool { return &m.UnknownAsZero }),
	boolKeyword("PRECISION_CODE", func(m *Metadata) *bool { return &m.PrecisionCode }),
	boolKeyword("AUTHORITATIVE", func(m *Metadata) *bool { return &m.Authoritative }),
}

var keywordIndex = func() map[string]int {
	idx := make(map[string]int, len(headerKeywords))
	for i, k := range headerKeywords {
		idx[k.name] = i
	}
	return idx
}()

// setKeyword parses the value of a header keyword into the metadata
func setKeyword(path string, m *Metadata, name, value string) error {
	i, ok := keywordIndex[strings.ToUpper(name)]
	if !ok {
		return geodesy.NewHeaderError(path, name, "")
	}
	if err := headerKeywords[i].set(m, value); err != nil {
		return geodesy.NewHeaderError(path, name, "%s: invalid value %q for %s", path, value, name)
	}
	return nil
}

// tacHeader parses "KEYWORD value" lines up to END_OF_HEADER. Every malformed keyword is reported.
func tacHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	var errs error
	for {
		line, err := r.nextLine()
		if err == io.EOF {
			return multierr.Append(errs, geodesy.NewHeaderError(r.path, endOfHeader, "%s: %s not found", r.path, endOfHeader))
		}
		if err != nil {
			return err
		}
		key, value := keyValue(line)
		if strings.EqualFold(key, endOfHeader) {
			return errs
		}
		errs = multierr.Append(errs, setKeyword(r.path, m, key, value))
	}
}
