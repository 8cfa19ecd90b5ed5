package disease

import (
	"errors"
	"fmt"
)

// ID identifies one of the five supported diseases.
type ID string

const (
	Diabetes ID = "diabetes"
	Heart    ID = "heart"
	Liver    ID = "liver"
	Kidney   ID = "kidney"
	Stroke   ID = "stroke"
)

// IDs returns the supported disease ids in a stable order.
func IDs() []ID {
	return []ID{Diabetes, Heart, Liver, Kidney, Stroke}
}

// ErrUnknown is returned when a disease id is outside the supported set.
var ErrUnknown = errors.New("unknown disease")

// InvalidInputError reports a submitted field that is missing or cannot be
// coerced to a number.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: field %q %s", e.Field, e.Reason)
}
