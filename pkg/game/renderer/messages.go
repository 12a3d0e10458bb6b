package renderer

import (
	"github.com/leonelquinteros/gotext"
)

// DefaultDomain is the catalog domain looked up under the locale directory.
const DefaultDomain = "default"

// InitLocale loads the message catalog for lang from dir
// (dir/lang/LC_MESSAGES/default.po or dir/lang/default.po). Without a
// catalog every message falls back to its English source text.
func InitLocale(dir, lang string) {
	gotext.Configure(dir, lang, DefaultDomain)
}

// T returns the translation of msgid formatted with vars.
func T(msgid string, vars ...any) string {
	return gotext.Get(msgid, vars...)
}

// TN returns the singular or plural translation for n.
func TN(msgid, plural string, n int, vars ...any) string {
	return gotext.GetN(msgid, plural, n, vars...)
}
