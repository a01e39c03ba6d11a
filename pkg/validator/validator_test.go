package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string  `validate:"required"`
	Lat  float64 `validate:"latitude"`
	Day  string  `validate:"date_any"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&sample{Name: "route", Lat: 4.6, Day: "2024-05-01"})
	assert.Empty(t, errs)

	errs = ValidateStruct(&sample{Lat: 120, Day: "not a date"})
	require.Len(t, errs, 3)
	assert.Equal(t, "sample.Name", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "latitude", errs[1].Tag)
	assert.Equal(t, "date_any", errs[2].Tag)
	assert.Contains(t, errs[0].Error(), "sample.Name")
}

func TestValidateStruct_EmptyDateAllowed(t *testing.T) {
	errs := ValidateStruct(&sample{Name: "x"})
	assert.Empty(t, errs)
}
