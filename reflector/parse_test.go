package reflector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenericType(t *testing.T) {
	tests := []struct {
		text    string
		wantKey string
	}{
		{"String", "String"},
		{"  java.lang.String ", "java.lang.String"},
		{"int[]", "int[]"},
		{"?", "?"},
		{"? super Integer", "?"},
		{"Map<String,Integer>", "Map<String, Integer>"},
		{"Map<String, List<Map<K, V>>>", "Map<String, List<Map<K, V>>>"},
		{"List<String>[][]", "List<String>[][]"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			generic, err := ParseGenericType(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, generic.Key())
		})
	}
}

func TestParseGenericTypeErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"List<String",
		"List<String>>",
		"Map<String,>",
		"Map<, String>",
		"List<String> trailing",
		"two words",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseGenericType(text)
			assert.ErrorIs(t, err, ErrGenericType)
		})
	}
}

func TestSplitTypeArguments(t *testing.T) {
	assert.Equal(t, []string{"A", "B<C, D>", "E"}, splitTypeArguments("A, B<C, D>, E"))
	assert.Nil(t, splitTypeArguments("A<B"))
	assert.Nil(t, splitTypeArguments("A>"))
}
