package geodesy

import (
	"errors"
	"fmt"

	"github.com/joomcode/errorx"
)

type ErrorCode int

const (
	LoadError ErrorCode = iota
	HeaderError
	ValidationError
	DuplicateID
	UnknownReference
	TransfoNotFound
	OutOfGrid
	UnknownValue
	NonConvergence
	Singularity
	InvalidArgument
)

// TransfoNotFoundMsg is the message reported when no transformation covers a point
const TransfoNotFoundMsg = "TRANSFO_NOT_FOUND_FOR_THIS_POINT"

var (
	// Errors is the namespace of every error raised by the conversion engine
	Errors = errorx.NewNamespace("geodesy")

	// Recoverable is the trait of query-time errors: the point is reported and the caller carries on
	Recoverable = errorx.RegisterTrait("recoverable")

	PropertyKeyword = errorx.RegisterProperty("keyword")
	PropertyFile    = errorx.RegisterProperty("file")
	PropertyField   = errorx.RegisterProperty("field")
)

var errorTypes = [...]*errorx.Type{
	LoadError:        Errors.NewType("load"),
	HeaderError:      Errors.NewType("header"),
	ValidationError:  Errors.NewType("validation"),
	DuplicateID:      Errors.NewType("duplicate_id"),
	UnknownReference: Errors.NewType("unknown_reference"),
	TransfoNotFound:  Errors.NewType("transfo_not_found", Recoverable),
	OutOfGrid:        Errors.NewType("out_of_grid", Recoverable),
	UnknownValue:     Errors.NewType("unknown_value", Recoverable),
	NonConvergence:   Errors.NewType("non_convergence"),
	Singularity:      Errors.NewType("singularity"),
	InvalidArgument:  Errors.NewType("invalid_argument"),
}

// NewLoadError creates a new error stating that a file cannot be loaded
func NewLoadError(file, desc string, a ...interface{}) error {
	return errorTypes[LoadError].New(desc, a...).WithProperty(PropertyFile, file)
}

// NewHeaderError creates a new error naming the offending header keyword and file
func NewHeaderError(file, keyword, desc string, a ...interface{}) error {
	if desc == "" {
		desc = fmt.Sprintf("invalid keyword %q in %s", keyword, file)
	}
	return errorTypes[HeaderError].New(desc, a...).
		WithProperty(PropertyFile, file).
		WithProperty(PropertyKeyword, keyword)
}

// NewValidationError creates a new validation error
func NewValidationError(desc string, a ...interface{}) error {
	return errorTypes[ValidationError].New(desc, a...)
}

// NewFieldError creates a new validation error on a single field
func NewFieldError(field, desc string, a ...interface{}) error {
	return errorTypes[ValidationError].New(field+": "+desc, a...).WithProperty(PropertyField, field)
}

// NewDuplicateID creates a new error stating that an entity id is defined twice
func NewDuplicateID(entity, id string) error {
	return errorTypes[DuplicateID].New("%s with id: %s is defined twice", entity, id).WithProperty(PropertyField, "id")
}

// NewUnknownReference creates a new error stating that a cross-reference cannot be resolved
func NewUnknownReference(entity, id, field, ref string) error {
	return errorTypes[UnknownReference].New("%s %s: %s references unknown %q", entity, id, field, ref).
		WithProperty(PropertyField, field)
}

// NewTransfoNotFound creates a new error stating that no transformation covers the point (degrees)
func NewTransfoNotFound(lon, lat float64) error {
	return errorTypes[TransfoNotFound].New("%s (lon: %.9f, lat: %.9f)", TransfoNotFoundMsg, lon, lat)
}

// NewOutOfGrid creates a new error stating that a point is more than one increment outside a grid
func NewOutOfGrid(file string, lon, lat float64) error {
	return errorTypes[OutOfGrid].New("point (%.9f, %.9f) is out of grid", lon, lat).WithProperty(PropertyFile, file)
}

// NewUnknownValue creates a new error stating that an interpolation node holds the unknown value
func NewUnknownValue(file string, col, row int) error {
	return errorTypes[UnknownValue].New("node (%d, %d) holds the unknown value", col, row).WithProperty(PropertyFile, file)
}

// NewNonConvergence creates a new error stating that a bounded iteration has been exhausted
func NewNonConvergence(desc string, a ...interface{}) error {
	return errorTypes[NonConvergence].New(desc, a...)
}

// NewSingularity creates a new error stating that a formula is singular at this point
func NewSingularity(desc string, a ...interface{}) error {
	return errorTypes[Singularity].New(desc, a...)
}

// NewInvalidArgument creates a new error on a wrong argument or a call in the wrong state
func NewInvalidArgument(desc string, a ...interface{}) error {
	return errorTypes[InvalidArgument].New(desc, a...)
}

// Wrap decorates err with the given code
func Wrap(code ErrorCode, err error, desc string, a ...interface{}) error {
	return errorTypes[code].Wrap(err, desc, a...)
}

// IsError tests whether the error or one of its causes has the given code
func IsError(err error, code ErrorCode) bool {
	return findError(err, func(e *errorx.Error) bool { return e.IsOfType(errorTypes[code]) }) != nil
}

// IsRecoverable tests whether the error is a query-time error
func IsRecoverable(err error) bool {
	return findError(err, func(e *errorx.Error) bool { return e.HasTrait(Recoverable) }) != nil
}

// ErrorProperty returns the first value of the property found in the error chain
func ErrorProperty(err error, p errorx.Property) (string, bool) {
	e := findError(err, func(e *errorx.Error) bool {
		_, ok := e.Property(p)
		return ok
	})
	if e == nil {
		return "", false
	}
	v, _ := e.Property(p)
	return fmt.Sprint(v), true
}

func findError(err error, match func(*errorx.Error) bool) *errorx.Error {
	for err != nil {
		var xerr *errorx.Error
		if !errors.As(err, &xerr) {
			return nil
		}
		if match(xerr) {
			return xerr
		}
		err = xerr.Cause()
	}
	return nil
}
