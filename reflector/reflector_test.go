package reflector

import (
	"sync"
	"testing"

	"github.com/NickyBoy89/genresolve/classpath"
	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/parsing"
	"github.com/NickyBoy89/genresolve/resolvedtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairSource = `
package demo;

import java.util.List;

public class Pair<K, V> {
    private K key;
    private List<V> values;
}
`

func newReflector(t *testing.T) (*Reflector, *classpath.Loader) {
	t.Helper()
	loader, err := classpath.New()
	require.NoError(t, err)
	require.NoError(t, loader.Load(parsing.SourceFile{Name: "Pair.java", Source: []byte(pairSource)}))
	return New(loader), loader
}

func TestResolveByName(t *testing.T) {
	reflector, _ := newReflector(t)

	tests := []struct {
		text string
		want string
	}{
		{"String", "java.lang.String"},
		{"int", "int"},
		{"int[]", "int[]"},
		{"java.util.List<String>", "java.util.List<java.lang.String>"},
		{"demo.Pair<Integer, java.util.List<String>>", "demo.Pair<java.lang.Integer, java.util.List<java.lang.String>>"},
		{"java.util.List<?>", "java.util.List<?>"},
		{"java.util.List<? extends Number>", "java.util.List<?>"},
		{"java.util.List<String>[]", "java.util.List<java.lang.String>[]"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			resolved, err := reflector.ResolveName(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved.Description())
		})
	}
}

func TestResolvedTypesAreCached(t *testing.T) {
	reflector, loader := newReflector(t)
	pair, err := loader.ForName("demo.Pair")
	require.NoError(t, err)

	byClass, err := reflector.Resolve(Of(pair, Named("String"), Named("java.lang.Long")))
	require.NoError(t, err)
	byName, err := reflector.ResolveName("demo.Pair<java.lang.String, Long>")
	require.NoError(t, err)
	assert.Same(t, byClass, byName)

	classType := byClass.(*resolvedtype.ClassType)
	fields, err := classType.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "java.lang.String", fields[0].Type().Description())
	assert.Equal(t, "java.util.List<java.lang.Long>", fields[1].Type().Description())

	_, err = reflector.ResolveName("String")
	require.NoError(t, err)
	registered := reflector.RegisteredTypes()
	require.Len(t, registered, 2)
	assert.Same(t, byClass, registered[0])
	assert.Equal(t, "java.lang.String", registered[1].Description())
}

func TestConcurrentResolveRegistersOnce(t *testing.T) {
	reflector, _ := newReflector(t)

	const workers = 8
	results := make([]resolvedtype.ResolvedType, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = reflector.ResolveName("java.util.Map<String, Integer>")
		}(i)
	}
	wg.Wait()

	for _, result := range results[1:] {
		assert.Same(t, results[0], result)
	}
	assert.Len(t, reflector.RegisteredTypes(), 1)
}

func TestArgumentCountIsValidated(t *testing.T) {
	reflector, _ := newReflector(t)

	_, err := reflector.ResolveName("demo.Pair<String>")
	require.ErrorIs(t, err, ErrGenericType)
	assert.Contains(t, err.Error(), "[K, V]")

	_, err = reflector.ResolveName("java.util.List")
	assert.ErrorIs(t, err, ErrGenericType)

	_, err = reflector.ResolveName("com.example.Missing")
	assert.ErrorIs(t, err, classpath.ErrClassNotFound)
	assert.Empty(t, reflector.RegisteredTypes())
}

func TestOtherGenericTypes(t *testing.T) {
	reflector, loader := newReflector(t)

	wildcard, err := reflector.Resolve(Wildcard())
	require.NoError(t, err)
	assert.True(t, wildcard.IsWildcard())

	array, err := reflector.ResolveClass(mustClass(t, loader, "String[][]"))
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String[][]", array.Description())

	pair, err := reflector.ResolveName("demo.Pair<String, Integer>")
	require.NoError(t, err)
	same, err := reflector.Resolve(FromResolved(pair))
	require.NoError(t, err)
	assert.Same(t, pair, same)

	declared := mustClass(t, loader, "demo.Pair").DeclaredFields()[1].GenericType
	values, err := reflector.Resolve(FromReflection(declared, pair.(*resolvedtype.ClassType)))
	require.NoError(t, err)
	assert.Equal(t, "java.util.List<java.lang.Integer>", values.Description())

	_, err = reflector.Resolve(nil)
	assert.Error(t, err)
}

func mustClass(t *testing.T, loader *classpath.Loader, name string) introspect.Class {
	t.Helper()
	class, err := loader.ForName(name)
	require.NoError(t, err)
	return class
}
