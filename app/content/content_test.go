package content

import (
	"testing"

	"github.com/go-pkgz/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/showcase/app/enum"
)

func TestDefault(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "How does it work?", doc.Title)
	assert.Equal(t, "rust", doc.Language)
	require.Len(t, doc.Steps, 4)
	assert.Empty(t, doc.Steps[0].Span)
	assert.Equal(t, "callback", doc.Steps[1].Span)
	assert.Equal(t, "setter", doc.Steps[2].Span)
	assert.Equal(t, "getter", doc.Steps[3].Span)
}

func TestDocument_Annotated(t *testing.T) {
	doc := Document{Listing: "let ([[getter:count]], [[setter:set_count]]) = x;\n{[[getter:count]]}"}
	plain, anns := doc.Annotated()
	assert.Equal(t, "let (count, set_count) = x;\n{count}", plain)
	require.Len(t, anns, 3)

	assert.Equal(t, enum.PhaseGetter, anns[0].Span)
	assert.Equal(t, "count", plain[anns[0].Start:anns[0].End])
	assert.Equal(t, enum.PhaseSetter, anns[1].Span)
	assert.Equal(t, "set_count", plain[anns[1].Start:anns[1].End])
	assert.Equal(t, enum.PhaseGetter, anns[2].Span)
	assert.Equal(t, "count", plain[anns[2].Start:anns[2].End])
}

func TestDocument_AnnotatedDefault(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)
	plain, anns := doc.Annotated()
	assert.NotContains(t, plain, "[[")
	assert.Contains(t, plain, "on:click=move")
	assert.Len(t, anns, 5)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "valid", data: "listing: \"[[callback:click]]\"\nsteps:\n  - text: one\n"},
		{name: "bad yaml", data: "listing: [", wantErr: "parse yaml"},
		{name: "empty listing", data: "steps:\n  - text: one\n", wantErr: "listing is empty"},
		{name: "no steps", data: "listing: code\n", wantErr: "no steps"},
		{name: "unknown marker span", data: "listing: \"[[foo:click]]\"\nsteps:\n  - text: one\n", wantErr: `unknown span "foo"`},
		{name: "idle is not a span", data: "listing: code\nsteps:\n  - span: idle\n    text: one\n", wantErr: `unknown span "idle"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads default", func(t *testing.T) {
		doc, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "How does it work?", doc.Title)
	})

	t.Run("from file", func(t *testing.T) {
		path := testutils.WriteTestFile(t, "title: custom\nlisting: \"x [[setter:y]]\"\nsteps:\n  - text: one\n")
		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "custom", doc.Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/content.yml")
		assert.Error(t, err)
	})
}
