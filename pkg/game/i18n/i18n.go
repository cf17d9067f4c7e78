// Package i18n loads the embedded translations that back every gotext.Get call.
package i18n

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested language has no catalogue
const DefaultLanguage = "en"

const domain = "default"

//go:embed locales/*.po
var catalogues embed.FS

// Init installs the catalogue for lang as gotext's global storage.
// Unknown languages fall back to DefaultLanguage and return an error describing the fallback.
func Init(lang string) error {
	data, err := catalogues.ReadFile("locales/" + lang + ".po")
	if err != nil {
		install(DefaultLanguage, mustRead(DefaultLanguage))
		return fmt.Errorf("no translations for %q, using %q", lang, DefaultLanguage)
	}
	install(lang, data)
	return nil
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, _ := catalogues.ReadDir("locales")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(".po")])
	}
	return langs
}

func install(lang string, data []byte) {
	po := gotext.NewPo()
	po.Parse(data)

	loc := gotext.NewLocale("", lang)
	loc.AddTranslator(domain, po)
	gotext.SetStorage(loc)
}

func mustRead(lang string) []byte {
	data, err := catalogues.ReadFile("locales/" + lang + ".po")
	if err != nil {
		panic(err)
	}
	return data
}
