// Package res bundles the static resources of the application.
package res

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed jupyter.svg
var jupyterSvg []byte

//go:embed jupyterlab-wordmark.svg
var jupyterlabWordmarkSvg []byte

// ResourceJupyterSvg is the project logo.
var ResourceJupyterSvg = fyne.NewStaticResource("jupyter.svg", jupyterSvg)

// ResourceJupyterlabWordmarkSvg is the application wordmark.
var ResourceJupyterlabWordmarkSvg = fyne.NewStaticResource("jupyterlab-wordmark.svg", jupyterlabWordmarkSvg)

// Intrinsic aspect ratios (width / height) of the SVGs above.
const (
	JupyterAspect            float32 = 44.0 / 51.0
	JupyterlabWordmarkAspect float32 = 200.0 / 39.0
)
