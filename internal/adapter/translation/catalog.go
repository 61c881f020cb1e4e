// Package translation provides translators backed by embedded message catalogs.
//
// Catalogs live under locales/<text domain>/<language>.json as flat
// message-id to translation maps. Message ids are the English source strings,
// so any text is a valid id, including go-i18n's reserved field names.
package translation

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

//go:embed locales
var catalogFS embed.FS

// embeddedBundles parses the embedded catalogs once.
var embeddedBundles = sync.OnceValues(func() (map[string]*i18n.Bundle, error) {
	return loadBundles(catalogFS, "locales")
})

// DefaultLocale is used when no locale is requested or the requested one has no catalog.
var DefaultLocale = language.English

// CatalogTranslator implements ports.Translator on top of go-i18n bundles, one per text domain.
type CatalogTranslator struct {
	logger  *slog.Logger
	locale  language.Tag
	domains map[string]*catalogBundle
}

type catalogBundle struct {
	localizer *i18n.Localizer
}

// NewCatalogTranslator loads the embedded catalogs and resolves locale against them.
// An empty or unknown locale falls back to DefaultLocale with a warning.
//
// Returns an error only if an embedded catalog cannot be parsed.
func NewCatalogTranslator(logger *slog.Logger, locale string) (*CatalogTranslator, error) {
	bundles, err := embeddedBundles()
	if err != nil {
		return nil, err
	}
	return newCatalogTranslator(logger, bundles, locale), nil
}

// newCatalogTranslator builds a translator over already loaded bundles, which
// are only read from here on.
func newCatalogTranslator(logger *slog.Logger, bundles map[string]*i18n.Bundle, locale string) *CatalogTranslator {
	tag, err := resolveLocale(supportedTags(bundles), locale)
	if err != nil {
		logger.Warn("falling back to default locale",
			slog.String("requested", locale),
			slog.String("locale", DefaultLocale.String()),
			slog.Any("error", err))
		tag = DefaultLocale
	}

	t := &CatalogTranslator{
		logger:  logger,
		locale:  tag,
		domains: make(map[string]*catalogBundle, len(bundles)),
	}
	for name, bundle := range bundles {
		t.domains[name] = &catalogBundle{localizer: i18n.NewLocalizer(bundle, tag.String())}
	}

	logger.Debug("translator ready",
		slog.String("locale", tag.String()),
		slog.Int("domains", len(t.domains)))
	return t
}

// Load returns the bundle of a text domain. Unknown domains echo their message ids.
func (t *CatalogTranslator) Load(textDomain string) ports.TranslationBundle {
	if b, ok := t.domains[textDomain]; ok {
		return b
	}
	t.logger.Debug("no catalog for text domain", slog.String("domain", textDomain))
	return nullBundle{}
}

// Locale returns the resolved locale as a BCP 47 tag.
func (t *CatalogTranslator) Locale() string {
	return t.locale.String()
}

// Gettext localizes msgid and substitutes positional arguments.
// Missing translations fall back to msgid itself.
func (b *catalogBundle) Gettext(msgid string, args ...any) string {
	msg, err := b.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      msgid,
		DefaultMessage: &i18n.Message{ID: msgid, Other: msgid},
	})
	if err != nil || msg == "" {
		msg = msgid
	}
	return Substitute(msg, args...)
}

// loadBundles reads root/<domain>/<lang>.json into one bundle per domain.
func loadBundles(fsys fs.FS, root string) (map[string]*i18n.Bundle, error) {
	dirs, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogs: %w", err)
	}

	bundles := make(map[string]*i18n.Bundle)
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		bundle := i18n.NewBundle(DefaultLocale)

		files, err := fs.ReadDir(fsys, path.Join(root, dir.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", dir.Name(), err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
				continue
			}
			p := path.Join(root, dir.Name(), file.Name())
			if err := loadCatalog(bundle, fsys, p); err != nil {
				return nil, fmt.Errorf("failed to parse catalog %s: %w", p, err)
			}
		}
		bundles[dir.Name()] = bundle
	}
	return bundles, nil
}

// loadCatalog adds one flat catalog file to bundle. The file name is the language tag.
//
// Entries become explicit messages instead of going through go-i18n's file
// parser, which reads keys such as "Other" or "Description" as message fields.
func loadCatalog(bundle *i18n.Bundle, fsys fs.FS, p string) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return err
	}

	tag, err := language.Parse(strings.TrimSuffix(path.Base(p), ".json"))
	if err != nil {
		return fmt.Errorf("invalid language in file name: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	messages := make([]*i18n.Message, 0, len(entries))
	for id, translation := range entries {
		messages = append(messages, &i18n.Message{ID: id, Other: translation})
	}
	return bundle.AddMessages(tag, messages...)
}

// supportedTags lists DefaultLocale first, then every other language found in any domain.
func supportedTags(bundles map[string]*i18n.Bundle) []language.Tag {
	tags := []language.Tag{DefaultLocale}
	seen := map[language.Tag]bool{DefaultLocale: true}
	for _, bundle := range bundles {
		for _, tag := range bundle.LanguageTags() {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// ResolveLocale reports which catalog locale the translator would use for locale.
func ResolveLocale(locale string) (string, error) {
	bundles, err := embeddedBundles()
	if err != nil {
		return "", err
	}
	tag, err := resolveLocale(supportedTags(bundles), locale)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

func resolveLocale(supported []language.Tag, locale string) (language.Tag, error) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return DefaultLocale, nil
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", domain.ErrUnknownLocale, locale, err)
	}

	_, index, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	return supported[index], nil
}

// normalizeLocale turns POSIX locale names (de_DE.UTF-8, fr_FR@euro) into BCP 47 form.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

var _ ports.Translator = (*CatalogTranslator)(nil)
