package ports

// Translator hands out translation bundles per text domain.
type Translator interface {
	// Load returns the bundle for a text domain (e.g., "jupyterlab").
	// Unknown domains yield a bundle that echoes its keys.
	Load(domain string) TranslationBundle

	// Locale returns the locale the translator resolved to (e.g., "en", "de").
	Locale() string
}

// TranslationBundle localizes messages of a single text domain.
type TranslationBundle interface {
	// Gettext returns the localized form of msgid with %1, %2, ... replaced
	// positionally by args.
	Gettext(msgid string, args ...any) string
}
