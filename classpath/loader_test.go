package classpath

import (
	"testing"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(t *testing.T, sources map[string]string) *Loader {
	t.Helper()
	loader, err := New()
	require.NoError(t, err)

	var files []parsing.SourceFile
	for name, source := range sources {
		files = append(files, parsing.SourceFile{Name: name, Source: []byte(source)})
	}
	require.NoError(t, loader.Load(files...))
	return loader
}

func forName(t *testing.T, loader *Loader, name string) introspect.Class {
	t.Helper()
	class, err := loader.ForName(name)
	require.NoError(t, err)
	return class
}

func TestForName(t *testing.T) {
	loader := newLoader(t, nil)

	tests := []struct {
		name     string
		wantName string
	}{
		{"int", "int"},
		{"void", "void"},
		{"java.lang.String", "java.lang.String"},
		{"String", "java.lang.String"},
		{"java.util.Map$Entry", "java.util.Map$Entry"},
		{"java.util.Map.Entry", "java.util.Map$Entry"},
		{"int[]", "[I"},
		{"String[][]", "[[Ljava.lang.String;"},
		{"[I", "[I"},
		{"[[J", "[[J"},
		{"[Ljava.lang.String;", "[Ljava.lang.String;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, forName(t, loader, tt.name).Name())
		})
	}

	_, err := loader.ForName("com.example.Nowhere")
	assert.ErrorIs(t, err, ErrClassNotFound)
	_, err = loader.ForName("[Q")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestClassesAreSorted(t *testing.T) {
	loader := newLoader(t, nil)
	classes := loader.Classes()
	require.NotEmpty(t, classes)
	for i := 1; i < len(classes); i++ {
		assert.Less(t, classes[i-1].Name(), classes[i].Name())
	}
}

func TestBundledCollections(t *testing.T) {
	loader := newLoader(t, nil)

	list := forName(t, loader, "java.util.List")
	assert.True(t, list.IsInterface())
	assert.Nil(t, list.GenericSuperclass())
	require.Len(t, list.GenericInterfaces(), 1)
	assert.Equal(t, "java.util.Collection<E>", list.GenericInterfaces()[0].TypeName())

	hashMap := forName(t, loader, "java.util.HashMap")
	var entrySet *introspect.Method
	for _, method := range hashMap.DeclaredMethods() {
		if method.Name == "entrySet" {
			entrySet = method
		}
	}
	require.NotNil(t, entrySet)
	assert.Equal(t, "java.util.Set<java.util.Map$Entry<K, V>>", entrySet.GenericReturnType.TypeName())

	enum := forName(t, loader, "java.lang.Enum")
	require.Len(t, enum.TypeParameters(), 1)
	assert.Equal(t, "E extends java.lang.Enum<E>", enum.TypeParameters()[0].BoundsString())
}

func TestLinkGenericDeclarations(t *testing.T) {
	loader := newLoader(t, map[string]string{"Box.java": `
package demo;

import java.util.List;
import java.util.function.*;

public class Box<T extends Comparable<T>> {
    private List<T> items;
    public Box(T first) {}
    public <R> R map(Function<? super T, ? extends R> fn, T... extra) { return null; }
    public T[] toArray() { return null; }

    class Inner {
        T value;
    }
}
`})

	box := forName(t, loader, "demo.Box")
	assert.Equal(t, "Box", box.SimpleName())
	assert.Equal(t, "demo", box.PackageName())
	assert.Equal(t, introspect.ObjectClassName, box.GenericSuperclass().TypeName())

	variable := box.TypeParameters()[0]
	assert.Equal(t, "T extends java.lang.Comparable<T>", variable.BoundsString())
	bound := variable.Bounds[0].(*introspect.ParameterizedType)
	assert.Same(t, variable, bound.Args[0])

	fields := box.DeclaredFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "java.util.List<T>", fields[0].GenericType.TypeName())

	constructors := box.DeclaredConstructors()
	require.Len(t, constructors, 1)
	assert.Equal(t, "public demo.Box(T)", constructors[0].ToGenericString())

	methods := box.DeclaredMethods()
	require.Len(t, methods, 2)
	assert.Equal(t,
		"public <R> R demo.Box.map(java.util.function.Function<? super T, ? extends R>,T...)",
		methods[0].ToGenericString())
	assert.True(t, methods[0].IsVarArgs())
	assert.IsType(t, &introspect.GenericArrayType{}, methods[1].GenericReturnType)

	inner := forName(t, loader, "demo.Box.Inner")
	assert.Equal(t, "demo.Box$Inner", inner.Name())
	assert.Same(t, box, inner.EnclosingClass())
	var value *introspect.Field
	for _, field := range inner.DeclaredFields() {
		if field.Name == "value" {
			value = field
		}
	}
	require.NotNil(t, value)
	assert.Same(t, variable, value.GenericType)
}

func TestLinkEnumsAndAnonymousClasses(t *testing.T) {
	loader := newLoader(t, map[string]string{"Color.java": `
package demo;

public enum Color {
    RED, GREEN;

    static Runnable task = new Runnable() {
        public void run() {}
    };
}
`})

	color := forName(t, loader, "demo.Color")
	assert.True(t, color.IsEnum())
	assert.Equal(t, "java.lang.Enum<demo.Color>", color.GenericSuperclass().TypeName())

	anonymous := forName(t, loader, "demo.Color$1")
	assert.True(t, anonymous.IsAnonymousClass())
	assert.Equal(t, "", anonymous.SimpleName())
	assert.Equal(t, introspect.ObjectClassName, anonymous.GenericSuperclass().TypeName())
	require.Len(t, anonymous.GenericInterfaces(), 1)
	assert.Equal(t, "java.lang.Runnable", anonymous.GenericInterfaces()[0].TypeName())
}

func TestMissingClassesAreRecorded(t *testing.T) {
	loader := newLoader(t, map[string]string{"Uses.java": `
package demo;

class Uses {
    Unknown<String> thing;
}
`})

	assert.Equal(t, []string{"Unknown"}, loader.Missing())
	uses := forName(t, loader, "demo.Uses")
	assert.Equal(t, "Unknown", uses.DeclaredFields()[0].GenericType.TypeName())
}

func TestLoadRejectsDuplicates(t *testing.T) {
	loader := newLoader(t, nil)
	err := loader.Load(
		parsing.SourceFile{Name: "A.java", Source: []byte("package dup; class A {}")},
		parsing.SourceFile{Name: "Again.java", Source: []byte("package dup; class A {} class B {}")},
	)
	require.Error(t, err)

	_, err = loader.ForName("dup.A")
	assert.ErrorIs(t, err, ErrClassNotFound)
}
