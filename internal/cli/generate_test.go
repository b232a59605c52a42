package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lockbox/internal/generator"
)

func TestParseClasses(t *testing.T) {
	got, err := parseClasses("uld")
	require.NoError(t, err)
	assert.Equal(t, generator.Classes{Upper: true, Lower: true, Digit: true}, got)

	got, err = parseClasses("s")
	require.NoError(t, err)
	assert.Equal(t, generator.Classes{Symbol: true}, got)

	_, err = parseClasses("x")
	assert.Error(t, err)

	// empty spec selects nothing; the generator rejects it downstream
	got, err = parseClasses("")
	require.NoError(t, err)
	assert.Equal(t, generator.Classes{}, got)
}
