// Package i18n holds the player-facing message catalog.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language, or an unknown one, is requested.
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

var (
	mu      sync.RWMutex
	current = mustLoad(DefaultLanguage)
)

// get is used for runtime key lookups; keys are not format strings.
var get = (*gotext.Po).Get

// Use switches the active catalog to the embedded language lang.
func Use(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := fs.ReadFile(locales, "locales/"+lang+".po")
	if err != nil {
		return fmt.Errorf("i18n: unknown language %q: %w", lang, err)
	}
	set(parse(data))
	return nil
}

// UseFile switches the active catalog to a .po file on disk.
func UseFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}
	set(parse(data))
	return nil
}

// T translates key, formatting it with args when given. Unknown keys are
// returned unchanged.
func T(key string, args ...any) string {
	mu.RLock()
	po := current
	mu.RUnlock()
	return get(po, key, args...)
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, _ := fs.ReadDir(locales, "locales")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(".po")])
	}
	return langs
}

func set(po *gotext.Po) {
	mu.Lock()
	current = po
	mu.Unlock()
}

func parse(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

func mustLoad(lang string) *gotext.Po {
	data, err := fs.ReadFile(locales, "locales/"+lang+".po")
	if err != nil {
		panic(err)
	}
	return parse(data)
}
