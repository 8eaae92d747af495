package resolvedtype_test

import (
	"testing"

	"github.com/NickyBoy89/genresolve/resolvedtype"
	"github.com/NickyBoy89/genresolve/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArrayClass(t *testing.T) {
	loader := loadFixtures(t)

	matrix, err := resolvedtype.FromArrayClass(class(t, loader, "int[][]"))
	require.NoError(t, err)
	assert.Equal(t, "int[][]", matrix.Description())
	assert.Equal(t, "[[I", matrix.AssignableType().Name())
	require.Len(t, matrix.TypeParameters(), 1)
	assert.Same(t, matrix.ComponentType(), matrix.TypeParameters()[0])
	assert.False(t, matrix.IsAbstract())
	assert.False(t, matrix.IsWildcard())

	_, err = resolvedtype.FromArrayClass(class(t, loader, "java.lang.String"))
	assert.ErrorIs(t, err, resolvedtype.ErrUnsupportedOperation)
}

func TestArrayOfWildcardHasNoAssignableType(t *testing.T) {
	array, err := resolvedtype.ArrayTypeOf(resolvedtype.Wildcard())
	require.NoError(t, err)
	assert.Equal(t, "?[]", array.Description())
	assert.Nil(t, array.AssignableType())

	_, err = resolvedtype.ArrayTypeOf(nil)
	assert.ErrorIs(t, err, validate.ErrNilArgument)
}

func TestWildcard(t *testing.T) {
	wildcard := resolvedtype.Wildcard()
	assert.True(t, wildcard.IsWildcard())
	assert.False(t, wildcard.IsPublic())
	assert.False(t, wildcard.IsAbstract())
	assert.False(t, wildcard.IsInterface())
	assert.Nil(t, wildcard.AssignableType())
	assert.Empty(t, wildcard.TypeParameters())
	assert.Equal(t, "?", wildcard.SimpleDescription())
}

func TestTypeVariableNames(t *testing.T) {
	loader := loadFixtures(t)

	names := resolvedtype.TypeVariableNamesOf(class(t, loader, "java.util.HashMap"))
	assert.Equal(t, []resolvedtype.TypeVariableName{
		resolvedtype.TypeVariableNameOf("K"),
		resolvedtype.TypeVariableNameOf("V"),
	}, names)
	assert.Equal(t, resolvedtype.TypeVariableNameOf("K"), names[0])
	assert.Equal(t, "V", names[1].String())
}
