package translation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// NullTranslator echoes message ids, with positional arguments substituted.
// It stands in for a real translator in tests and when catalogs are disabled.
type NullTranslator struct{}

// NewNullTranslator returns a NullTranslator.
func NewNullTranslator() NullTranslator {
	return NullTranslator{}
}

// Load returns an echoing bundle for any text domain.
func (NullTranslator) Load(string) ports.TranslationBundle {
	return nullBundle{}
}

// Locale always reports the default locale.
func (NullTranslator) Locale() string {
	return DefaultLocale.String()
}

type nullBundle struct{}

func (nullBundle) Gettext(msgid string, args ...any) string {
	return Substitute(msgid, args...)
}

// Substitute replaces %1, %2, ... in format with the corresponding args.
// Placeholders without an argument are left as they are; replaced text is not rescanned.
func Substitute(format string, args ...any) string {
	if len(args) == 0 || !strings.Contains(format, "%") {
		return format
	}

	// Higher indexes first so %10 wins over %1.
	pairs := make([]string, 0, 2*len(args))
	for i := len(args); i >= 1; i-- {
		pairs = append(pairs, "%"+strconv.Itoa(i), fmt.Sprint(args[i-1]))
	}
	return strings.NewReplacer(pairs...).Replace(format)
}

var _ ports.Translator = NullTranslator{}
