package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varnamproject/gouast/gouast"
	"github.com/varnamproject/gouast/vst"
)

func TestConvertText(t *testing.T) {
	result, err := convertText(gouast.MODE_DEVANAGARI, "/om/  namaḥ\nk/a\n")
	require.NoError(t, err)
	assert.Equal(t, "ॐ नमः\nका\n", result)

	result, err = convertText(gouast.MODE_IAST, "")
	require.NoError(t, err)
	assert.Equal(t, "", result)

	_, err = convertText("x", "ka")
	assert.ErrorIs(t, err, gouast.ErrInvalidMode)
}

func TestLastError(t *testing.T) {
	setLastError(nil)
	assert.Equal(t, "", getLastError())

	_, err := convertText("x", "ka")
	setLastError(err)
	assert.Contains(t, getLastError(), "invalid mode")

	setLastError(nil)
	assert.Equal(t, "", getLastError())
}

func TestCompileVST(t *testing.T) {
	vstPath := filepath.Join(t.TempDir(), "uast.vst")
	require.NoError(t, compileVST(context.Background(), vstPath, "uast-c"))

	file, err := vst.Open(vstPath)
	require.NoError(t, err)
	defer file.Close()

	sd, err := file.SchemeDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "uast-c", sd.Identifier)

	glyph, ok, err := file.LookupGlyph(context.Background(), gouast.UAST_SYMBOL_CONSONANT, "ḻ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ळ", glyph)
}
