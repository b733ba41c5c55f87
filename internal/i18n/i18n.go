// Package i18n holds the console message catalogs. Codes double as error
// and validation identifiers, so an untranslated code is printed as is.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the language used when none is configured or matched.
const Default = "id"

var supported = []language.Tag{language.Indonesian, language.English}

var matcher = language.NewMatcher(supported)

// DetectLanguage picks a supported language from a preference list such as
// "en-US,en;q=0.9" or a LANG value like "en_US.UTF-8".
func DetectLanguage(pref string) string {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return Default
	}
	if i := strings.IndexByte(pref, '.'); i > 0 && !strings.Contains(pref, ",") {
		pref = pref[:i]
	}
	pref = strings.ReplaceAll(pref, "_", "-")
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// Tag is the language tag used for number formatting.
func Tag(lang string) language.Tag {
	if lang == "en" {
		return language.English
	}
	return language.Indonesian
}

// T translates code, falling back to the default language and then to the
// code itself.
func T(lang, code string) string {
	if m, ok := catalogs[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalogs[Default][code]; ok {
		return s
	}
	return code
}

// Has reports whether code is translated in lang.
func Has(lang, code string) bool {
	_, ok := catalogs[lang][code]
	return ok
}
