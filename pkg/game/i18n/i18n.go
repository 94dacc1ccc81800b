// Package i18n resolves message keys against embedded gettext catalogues.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en_GB"

//go:embed locales/*.po
var locales embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Po
	active  string
)

func init() {
	if err := Load(DefaultLocale); err != nil {
		panic(err)
	}
}

// Load makes locale the active catalogue
func Load(locale string) error {
	po, err := parse(locale)
	if err != nil {
		return err
	}

	mu.Lock()
	current = po
	active = locale
	mu.Unlock()
	return nil
}

func parse(locale string) (*gotext.Po, error) {
	buf, err := locales.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q (available: %s)", locale, strings.Join(Available(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(buf)
	return po, nil
}

// Active returns the name of the loaded locale
func Active() string {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// Available lists the embedded locales
func Available() []string {
	entries, _ := locales.ReadDir("locales")

	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// T translates key and formats it with args. Unknown keys come back as the
// key itself.
func T(key string, args ...any) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	return po.Get(key, args...)
}
