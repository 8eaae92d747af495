package main

import (
	"strings"
	"testing"

	"github.com/NickyBoy89/genresolve/resolvedtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructName(t *testing.T) {
	loader := loadDemo(t)
	tests := []struct {
		text string
		want string
	}{
		{"demo.Order<String>", "OrderString"},
		{"demo.Pair<String, java.util.List<Long>>", "PairStringListLong"},
		{"String[]", "StringArray"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			resolved, err := resolveArgs(loader, []string{tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, StructName(resolved))
		})
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "Name", FieldName("name"))
	assert.Equal(t, "Values", FieldName("$values"))
	assert.Equal(t, "Max_size", FieldName("max_size"))
	assert.Equal(t, "", FieldName("$"))
}

func TestGenerateStructs(t *testing.T) {
	loader := loadDemo(t)
	resolved, err := resolveArgs(loader, []string{"demo.Order", "String"})
	require.NoError(t, err)

	decls, err := GenerateStructs(resolved.(*resolvedtype.ClassType))
	require.NoError(t, err)
	require.Len(t, decls, 2)

	source, err := RenderGoFile("model", decls)
	require.NoError(t, err)
	// Compare with alignment collapsed
	normalized := strings.Join(strings.Fields(source), " ")

	assert.True(t, strings.HasPrefix(normalized, "package model"))
	for _, want := range []string{
		"type OrderString struct {",
		"Id int64",
		"Quantity *int32",
		"Item string",
		"History []string",
		"Lines map[string]*Line",
		"Note *string",
		"Codes []int32",
		"Parent *OrderString",
		"type Line struct { Sku string Price float64 }",
	} {
		assert.Contains(t, normalized, want)
	}
	assert.NotContains(t, normalized, "Cache")
	assert.NotContains(t, normalized, "COUNT")
}
