package gouast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/om/", "ॐ"},
		{"ka/nu/", "kaṅ"},
		{"k/a", "kā"},
		{"k/a/", "kā"},
		{"vi/sl//nl/u", "viṣṇu"},
		{"/n/u", "ñu"},
		{"/nu", "ṅ"},
		{"a/au/", "aã"},
		{"//", ""},
		{"/", ""},
		{"ab/", "ab"},
		{"/x/", ""},
		{"/x/k", "k"},
		{"a/xyz", "a"},
		// Case is not folded here
		{"/OM/", ""},
		{"Ka", "Ka"},
		{"bhūrbhuvaḥ", "bhūrbhuvaḥ"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, DecodeEscapes(test.input), test.input)
	}
}

func TestDecodeEscapesAllTokens(t *testing.T) {
	for token, ch := range escapeTokens {
		assert.Equal(t, string(ch), DecodeEscapes("/"+token+"/"), token)

		looked, ok := LookupEscape(token)
		assert.True(t, ok)
		assert.Equal(t, ch, looked)
	}

	_, ok := LookupEscape("zz")
	assert.False(t, ok)
}
