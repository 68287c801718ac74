package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berkingurcan/siglife-api/internal/pkg/idgen"
)

func TestPrefixedGenerator(t *testing.T) {
	gen := idgen.NewPrefixed("hist")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "hist_"))
	assert.NotEqual(t, first, second)

	parts := strings.Split(first, "_")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")
	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("das")

	first := gen.Generate()
	second := gen.Generate()
	assert.NotEqual(t, first, second)

	require.True(t, strings.HasPrefix(first, "das_"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "das_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("")
	_, err = uuid.Parse(bare.Generate())
	assert.NoError(t, err)
}
