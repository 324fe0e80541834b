package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binweight/binweight/internal/sizeattr"
)

func init() {
	color.NoColor = true
}

func sample() sizeattr.Contributors {
	return sizeattr.Contributors{
		"@source_files;/home/proj/src;foo.c;@function: f": 140,
		"@source_files;/home/proj/src;bar.c;@function: g": 60,
	}
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), Options{Format: FormatCSV}))
	assert.Equal(t, strings.Join([]string{
		"bytes,key",
		"140,@source_files;/home/proj/src;foo.c;@function: f",
		"60,@source_files;/home/proj/src;bar.c;@function: g",
		"",
	}, "\n"), buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), Options{Format: FormatJSON}))
	assert.Equal(t, strings.Join([]string{
		"{",
		`  "@source_files;/home/proj/src;bar.c;@function: g": 60,`,
		`  "@source_files;/home/proj/src;foo.c;@function: f": 140`,
		"}",
		"",
	}, "\n"), buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), Options{Format: FormatTable, TextSize: 400}))
	out := buf.String()
	assert.Contains(t, out, "140 B  @source_files;/home/proj/src;foo.c;@function: f")
	assert.Contains(t, out, "60 B  @source_files;/home/proj/src;bar.c;@function: g")
	assert.Contains(t, out, "total over 2 keys")
	assert.Contains(t, out, "(50.0%) attributed")
	// largest contributor comes first
	assert.Less(t, strings.Index(out, "foo.c"), strings.Index(out, "bar.c"))
}

func TestRenderTableTop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), Options{Format: FormatTable, Top: 1}))
	out := buf.String()
	assert.Contains(t, out, "foo.c")
	assert.NotContains(t, out, "bar.c")
	assert.Contains(t, out, "... 1 more rows")
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sample(), Options{Format: "xml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, UnknownFormatError)
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.5 KiB", humanBytes(1536))
	assert.Equal(t, "2.0 MiB", humanBytes(2<<20))
}
