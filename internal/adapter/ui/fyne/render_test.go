package fyne

import (
	"testing"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/helpabout/internal/about"
	"github.com/tejashwikalptaru/helpabout/internal/adapter/translation"
	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/logger"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	test.NewTempApp(t)
	return NewRenderer(logger.NewTestLogger(), NewIconSet())
}

// collect returns every canvas object of obj in depth-first order.
func collect(obj fyneapp.CanvasObject) []fyneapp.CanvasObject {
	objects := []fyneapp.CanvasObject{obj}
	if c, ok := obj.(*fyneapp.Container); ok {
		for _, child := range c.Objects {
			objects = append(objects, collect(child)...)
		}
	}
	return objects
}

func TestRenderer_Text(t *testing.T) {
	r := newTestRenderer(t)

	label, ok := r.Render(domain.Text("hello")).(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "hello", label.Text)
	assert.False(t, label.TextStyle.Bold)
}

func TestRenderer_VersionIsBold(t *testing.T) {
	r := newTestRenderer(t)

	obj := r.Render(domain.Span(about.ClassVersion, domain.Text("Version 1.0")))
	box, ok := obj.(*fyneapp.Container)
	require.True(t, ok)
	require.Len(t, box.Objects, 1)

	label, ok := box.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.True(t, label.TextStyle.Bold)
}

func TestRenderer_Links(t *testing.T) {
	r := newTestRenderer(t)

	link, ok := r.Render(domain.Anchor("", "docs", "https://example.com/docs")).(*widget.Hyperlink)
	require.True(t, ok)
	assert.Equal(t, "docs", link.Text)
	assert.Equal(t, "https://example.com/docs", link.URL.String())

	// Relative or malformed targets degrade to plain text
	for _, target := range []string{"relative/path", "http://[::1"} {
		label, ok := r.Render(domain.Anchor("", "broken", target)).(*widget.Label)
		require.True(t, ok, target)
		assert.Equal(t, "broken", label.Text)
	}
}

func TestRenderer_Icons(t *testing.T) {
	r := newTestRenderer(t)

	ref := domain.IconRef{Name: domain.IconJupyterlabWordmark, Width: 196}
	img, ok := r.Render(domain.Icon(ref)).(*canvas.Image)
	require.True(t, ok)
	assert.Equal(t, r.icons.Size(ref), img.MinSize())

	missing, ok := r.Render(domain.Icon(domain.IconRef{Name: "missing", Width: 10})).(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, fyneapp.NewSize(10, 10), missing.MinSize())

	padded, ok := r.Render(domain.Icon(domain.IconRef{Name: domain.IconJupyter, Width: 58, Margin: "7px 9.5px"})).(*fyneapp.Container)
	require.True(t, ok)
	require.Len(t, padded.Objects, 1)
	assert.IsType(t, &canvas.Image{}, padded.Objects[0])
}

func TestRenderer_AboutContent(t *testing.T) {
	r := newTestRenderer(t)
	content := about.BuildContent(translation.NewNullTranslator().Load(about.TextDomain), "3.0.0")

	var labels []string
	var urls []string
	var images int
	for _, obj := range append(collect(r.Render(content.Header)), collect(r.Render(content.Body))...) {
		switch o := obj.(type) {
		case *widget.Label:
			labels = append(labels, o.Text)
		case *widget.Hyperlink:
			urls = append(urls, o.URL.String())
		case *canvas.Image:
			images++
		}
	}

	assert.Equal(t, 2, images)
	assert.Equal(t, []string{"Version 3.0.0", "© 2015-2021 Project Jupyter Contributors"}, labels)
	assert.Equal(t, []string{about.ContributorsURL, about.JupyterURL}, urls)
}
