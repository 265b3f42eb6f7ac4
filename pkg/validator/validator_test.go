package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name     string  `validate:"required"`
	Email    string  `validate:"required,email"`
	Price    float64 `validate:"gte=0"`
	Quantity int     `validate:"required,gte=1"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(sampleInput{
		Name: "Widget", Email: "a@b.com", Price: 9.99, Quantity: 1,
	})
	assert.Empty(t, errs)
}

func TestValidateStructCollectsPerFieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleInput{Price: -1})
	require.Len(t, errs, 4)

	byField := map[string]*FieldError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "Name is required", byField["Name"].Message)
	assert.Equal(t, "required", byField["Name"].Tag)
	assert.Equal(t, "Price must be non-negative", byField["Price"].Message)
	assert.Equal(t, "Quantity is required", byField["Quantity"].Message)
}

func TestValidateStructEmailMessage(t *testing.T) {
	errs := ValidateStruct(sampleInput{
		Name: "Widget", Email: "nope", Price: 1, Quantity: 1,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid email address", errs[0].Message)
}
