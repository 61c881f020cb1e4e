package about

import (
	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// External link targets.
const (
	JupyterURL      = "https://jupyter.org/about.html"
	ContributorsURL = "https://github.com/jupyterlab/jupyterlab/graphs/contributors"
)

// Style hooks understood by renderers.
const (
	ClassHeader        = "jp-About-header"
	ClassHeaderInfo    = "jp-About-header-info"
	ClassVersionInfo   = "jp-About-version-info"
	ClassVersion       = "jp-About-version"
	ClassBody          = "jp-About-body"
	ClassExternalLinks = "jp-About-externalLinks"
	ClassCopyright     = "jp-About-copyright"
	ClassFlatButton    = "jp-Button-flat"
	ClassDismissButton = "jp-About-button jp-mod-reject jp-mod-styled"
)

// VersionLabel formats the version line of the dialog header.
func VersionLabel(trans ports.TranslationBundle, version string) string {
	return trans.Gettext("Version %1", version)
}

// Header builds the dialog title: logo, then wordmark over the version label.
func Header(versionLabel string) domain.Node {
	versionInfo := domain.Span(ClassVersionInfo,
		domain.Span(ClassVersion, domain.Text(versionLabel)),
	)
	return domain.Span(ClassHeader,
		domain.Icon(domain.IconRef{Name: domain.IconJupyter, Width: 58, Margin: "7px 9.5px"}),
		domain.Div(ClassHeaderInfo,
			domain.Icon(domain.IconRef{Name: domain.IconJupyterlabWordmark, Width: 196}),
			versionInfo,
		),
	)
}

// Links returns the two external links, contributor list first.
func Links(trans ports.TranslationBundle) []domain.Link {
	return []domain.Link{
		{Label: trans.Gettext("CONTRIBUTOR LIST"), URL: ContributorsURL},
		{Label: trans.Gettext("ABOUT PROJECT JUPYTER"), URL: JupyterURL},
	}
}

// CopyrightLabel returns the localized copyright line.
func CopyrightLabel(trans ports.TranslationBundle) string {
	return trans.Gettext("© 2015-2021 Project Jupyter Contributors")
}

// DismissLabel returns the localized label of the only dialog button.
func DismissLabel(trans ports.TranslationBundle) string {
	return trans.Gettext("Dismiss")
}

// Body builds the dialog body: the external links, then the copyright line.
func Body(links []domain.Link, copyright string) domain.Node {
	anchors := make([]domain.Node, 0, len(links))
	for _, link := range links {
		anchors = append(anchors, domain.Anchor(ClassFlatButton, link.Label, link.URL))
	}
	return domain.Div(ClassBody,
		domain.Span(ClassExternalLinks, anchors...),
		domain.Span(ClassCopyright, domain.Text(copyright)),
	)
}

// BuildContent assembles the complete About dialog content for version.
// It has no side effects; the same inputs always give an equal value.
func BuildContent(trans ports.TranslationBundle, version string) domain.AboutDialogContent {
	versionLabel := VersionLabel(trans, version)
	links := Links(trans)
	copyright := CopyrightLabel(trans)

	return domain.AboutDialogContent{
		VersionLabel:   versionLabel,
		Header:         Header(versionLabel),
		Links:          links,
		Body:           Body(links, copyright),
		CopyrightLabel: copyright,
		DismissLabel:   DismissLabel(trans),
	}
}

// DialogOptions turns content into a dialog request with a single dismiss button
// created by dialogs.
func DialogOptions(content domain.AboutDialogContent, dialogs ports.DialogService) domain.DialogOptions {
	return domain.DialogOptions{
		Title: content.Header,
		Body:  content.Body,
		Buttons: []domain.Button{
			dialogs.CreateButton(domain.ButtonOptions{
				Label:     content.DismissLabel,
				ClassName: ClassDismissButton,
			}),
		},
	}
}
