package formatter

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/treegram"
)

func sampleTree() *treegram.Tree {
	return &treegram.Tree{Name: "array", Children: []treegram.Result{
		treegram.Text("1"),
		&treegram.Tree{Name: "array", Children: []treegram.Result{
			treegram.Text("5"),
			treegram.Text("7"),
		}},
	}}
}

func TestIndent(t *testing.T) {
	const want = `array:
    1
    array:
        5
        7`

	assert.Equal(t, want, Indent(sampleTree()))
}

func TestIndentSplicedAndText(t *testing.T) {
	spliced := &treegram.Spliced{Children: []treegram.Result{
		treegram.Text("a"),
		treegram.Text("b"),
	}}

	assert.Equal(t, "a\nb", Indent(spliced))
	assert.Equal(t, "x", Indent(treegram.Text("x")))
	assert.Equal(t, "<discarded>", Indent(treegram.Discarded))
}

func TestJSON(t *testing.T) {
	out, err := JSON(sampleTree())
	assert.NoError(t, err)
	assert.Equal(t,
		`{"name":"array","children":["1",{"name":"array","children":["5","7"]}]}`,
		out)
}

func TestYAML(t *testing.T) {
	out, err := YAML(sampleTree())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "name: array"), "got %q", out)
	assert.True(t, strings.Contains(out, "children:"), "got %q", out)
}

func TestXML(t *testing.T) {
	out, err := XML(sampleTree())
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, `<node name="array">`), "got %q", out)
	assert.True(t, strings.Contains(out, `<text>5</text>`), "got %q", out)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleTree(), "toml")
	assert.IsError(t, err, ErrUnknownFormat)
}

func TestRenderDispatch(t *testing.T) {
	for _, format := range []string{"tree", "json", "yaml", "xml"} {
		out, err := Render(sampleTree(), format)
		assert.NoError(t, err)
		assert.NotEqual(t, "", out)
	}
}
