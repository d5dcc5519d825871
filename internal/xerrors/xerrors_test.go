package xerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputErrorFormatsWithAndWithoutLine(t *testing.T) {
	err := NewInputError("toy.ctt", 12, "bad field %d", 3)
	assert.Equal(t, "toy.ctt:12: bad field 3", err.Error())

	err2 := NewInputError("toy.ctt", 0, "missing header")
	assert.Equal(t, "toy.ctt: missing header", err2.Error())
}

func TestCategorizedUnwrapsThroughStack(t *testing.T) {
	err := NewConfigError("sa.cooling_rate", "must be in (0,1)")

	var cat Categorized
	require.True(t, errors.As(err, &cat))
	assert.Equal(t, CategoryConfig, cat.Category())

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "sa.cooling_rate", ce.Key)
}

func TestInfeasibleErrorCategory(t *testing.T) {
	err := NewInfeasibleError(7)
	var cat Categorized
	require.True(t, errors.As(err, &cat))
	assert.Equal(t, CategoryInfeasible, cat.Category())
	assert.Contains(t, err.Error(), "7 attempt")
}

func TestInvariantViolationReturnsErrorWhenNotDebug(t *testing.T) {
	old := Debug
	Debug = false
	defer func() { Debug = old }()

	err := NewInvariantViolation("table %s out of sync", "sumCR")
	var cat Categorized
	require.True(t, errors.As(err, &cat))
	assert.Equal(t, CategoryInternal, cat.Category())
}

func TestInvariantViolationPanicsWhenDebug(t *testing.T) {
	old := Debug
	Debug = true
	defer func() { Debug = old }()

	assert.Panics(t, func() { NewInvariantViolation("should never happen") })
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "input", CategoryInput.String())
	assert.Equal(t, "config", CategoryConfig.String())
	assert.Equal(t, "infeasible", CategoryInfeasible.String())
	assert.Equal(t, "internal", CategoryInternal.String())
}
