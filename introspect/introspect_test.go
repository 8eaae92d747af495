package introspect_test

import (
	"testing"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierString(t *testing.T) {
	assert.Equal(t, "public static final", (introspect.Final | introspect.Static | introspect.Public).String())
	assert.Equal(t, "private transient", (introspect.Transient | introspect.Private).String())
	assert.Equal(t, "", introspect.Modifier(0).String())
}

func TestModifierOf(t *testing.T) {
	mod, ok := introspect.ModifierOf("abstract")
	require.True(t, ok)
	assert.True(t, mod.IsAbstract())

	_, ok = introspect.ModifierOf("default")
	assert.False(t, ok)
}

func TestPrimitiveClasses(t *testing.T) {
	intClass, ok := introspect.Primitive("int")
	require.True(t, ok)
	assert.Equal(t, "int", intClass.Name())
	assert.True(t, intClass.IsPrimitive())
	assert.True(t, intClass.Modifiers().IsAbstract(), "the JVM reports primitives as abstract")

	_, ok = introspect.Primitive("Integer")
	assert.False(t, ok)
}

func TestArrayClasses(t *testing.T) {
	intClass, _ := introspect.Primitive("int")
	intArray := introspect.ArrayOf(intClass)

	assert.Same(t, intArray, introspect.ArrayOf(intClass))
	assert.True(t, intArray.IsArray())
	assert.Equal(t, "[I", intArray.Name())
	assert.Equal(t, "int[]", intArray.TypeName())
	assert.Equal(t, "int[]", intArray.SimpleName())

	matrix := introspect.ArrayOf(intArray)
	assert.Equal(t, "[[I", matrix.Name())
	assert.Equal(t, "int[][]", matrix.TypeName())
	assert.Equal(t, intArray, matrix.ComponentType())
	assert.True(t, matrix.Modifiers().IsFinal())
}

func TestGenericTypeNames(t *testing.T) {
	variable := &introspect.TypeVariable{Name: "T"}
	assert.Equal(t, "T", variable.TypeName())
	assert.Equal(t, "T[]", (&introspect.GenericArrayType{Component: variable}).TypeName())
	assert.Equal(t, "?", (&introspect.WildcardType{}).TypeName())
	assert.Equal(t, "? super T", (&introspect.WildcardType{Lower: []introspect.Type{variable}}).TypeName())

	intClass, _ := introspect.Primitive("int")
	bounded := &introspect.TypeVariable{Name: "N", Bounds: []introspect.Type{intClass}}
	assert.Equal(t, "N extends int", bounded.BoundsString())
}
