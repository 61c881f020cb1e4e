package fyne

import (
	"strconv"
	"strings"
	"sync"

	fyneapp "fyne.io/fyne/v2"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/res"
)

// defaultIconSize is used when an icon reference gives neither width nor height.
const defaultIconSize float32 = 32

// IconSet resolves icon names to Fyne resources.
type IconSet struct {
	mu    sync.RWMutex
	icons map[string]icon
}

type icon struct {
	resource fyneapp.Resource
	aspect   float32 // width / height
}

// NewIconSet returns a set holding the bundled logo and wordmark.
func NewIconSet() *IconSet {
	s := &IconSet{icons: make(map[string]icon)}
	s.Register(domain.IconJupyter, res.ResourceJupyterSvg, res.JupyterAspect)
	s.Register(domain.IconJupyterlabWordmark, res.ResourceJupyterlabWordmarkSvg, res.JupyterlabWordmarkAspect)
	return s
}

// Register adds or replaces an icon. A non-positive aspect is treated as square.
func (s *IconSet) Register(name string, resource fyneapp.Resource, aspect float32) {
	if aspect <= 0 {
		aspect = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icons[name] = icon{resource: resource, aspect: aspect}
}

// Lookup returns the resource registered under name.
func (s *IconSet) Lookup(name string) (fyneapp.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.icons[name]
	return i.resource, ok
}

// Size resolves the display size of ref, filling an "auto" dimension from the
// icon's aspect ratio.
func (s *IconSet) Size(ref domain.IconRef) fyneapp.Size {
	s.mu.RLock()
	aspect := float32(1)
	if i, ok := s.icons[ref.Name]; ok {
		aspect = i.aspect
	}
	s.mu.RUnlock()

	w, h := ref.Width, ref.Height
	switch {
	case w > 0 && h > 0:
	case w > 0:
		h = w / aspect
	case h > 0:
		w = h * aspect
	default:
		h = defaultIconSize
		w = h * aspect
	}
	return fyneapp.NewSize(w, h)
}

// insets is a CSS-style margin in pixels.
type insets struct {
	top, right, bottom, left float32
}

// parseMargin reads CSS margin shorthand ("7px", "7px 9.5px", "1 2 3", "1 2 3 4").
// Unparseable values give zero insets.
func parseMargin(margin string) insets {
	fields := strings.Fields(margin)
	values := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 32)
		if err != nil {
			return insets{}
		}
		values = append(values, float32(v))
	}

	switch len(values) {
	case 1:
		return insets{values[0], values[0], values[0], values[0]}
	case 2:
		return insets{values[0], values[1], values[0], values[1]}
	case 3:
		return insets{values[0], values[1], values[2], values[1]}
	case 4:
		return insets{values[0], values[1], values[2], values[3]}
	default:
		return insets{}
	}
}
