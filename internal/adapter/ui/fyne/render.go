package fyne

import (
	"image/color"
	"log/slog"
	"net/url"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
)

// classVersion marks the version line; it is rendered bold.
const classVersion = "jp-About-version"

// Renderer turns display trees into Fyne canvas objects.
//
// Spans become horizontal boxes and divs vertical boxes. Links open in the
// system browser through widget.Hyperlink.
type Renderer struct {
	logger *slog.Logger
	icons  *IconSet
}

// NewRenderer creates a renderer resolving icons through icons.
func NewRenderer(logger *slog.Logger, icons *IconSet) *Renderer {
	return &Renderer{logger: logger, icons: icons}
}

// Render builds the canvas object for node.
func (r *Renderer) Render(node domain.Node) fyneapp.CanvasObject {
	return r.render(node, false)
}

func (r *Renderer) render(node domain.Node, bold bool) fyneapp.CanvasObject {
	bold = bold || node.HasClass(classVersion)

	switch node.Kind {
	case domain.NodeSpan:
		return container.NewHBox(r.renderChildren(node.Children, bold)...)
	case domain.NodeDiv:
		return container.NewVBox(r.renderChildren(node.Children, bold)...)
	case domain.NodeText:
		label := widget.NewLabel(node.Text)
		label.TextStyle = fyneapp.TextStyle{Bold: bold}
		return label
	case domain.NodeLink:
		return r.renderLink(node)
	case domain.NodeIcon:
		return r.renderIcon(node.Icon)
	default:
		r.logger.Warn("unknown display node", slog.String("kind", string(node.Kind)))
		return container.NewHBox()
	}
}

func (r *Renderer) renderChildren(children []domain.Node, bold bool) []fyneapp.CanvasObject {
	objects := make([]fyneapp.CanvasObject, 0, len(children))
	for _, child := range children {
		objects = append(objects, r.render(child, bold))
	}
	return objects
}

func (r *Renderer) renderLink(node domain.Node) fyneapp.CanvasObject {
	target, err := url.Parse(node.URL)
	if err != nil || target.Scheme == "" {
		r.logger.Warn("link rendered as text",
			slog.String("url", node.URL),
			slog.Any("error", err))
		return widget.NewLabel(node.Text)
	}
	return widget.NewHyperlink(node.Text, target)
}

func (r *Renderer) renderIcon(ref domain.IconRef) fyneapp.CanvasObject {
	size := r.icons.Size(ref)

	var obj fyneapp.CanvasObject
	if resource, ok := r.icons.Lookup(ref.Name); ok {
		img := canvas.NewImageFromResource(resource)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(size)
		obj = img
	} else {
		r.logger.Warn("missing icon", slog.String("icon", ref.Name))
		placeholder := canvas.NewRectangle(color.Transparent)
		placeholder.SetMinSize(size)
		obj = placeholder
	}

	m := parseMargin(ref.Margin)
	if m == (insets{}) {
		return obj
	}
	return container.New(layout.NewCustomPaddedLayout(m.top, m.bottom, m.left, m.right), obj)
}
