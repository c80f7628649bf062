// Package catalog loads the text shown to the player and registers it with
// golang.org/x/text/message.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, name := range paths {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		if err := b.add(name, file); err != nil {
			return nil, err
		}
	}

	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(name string, file catalogFile) error {
	wantLocale := path.Base(path.Dir(name))
	wantNamespace := strings.TrimSuffix(path.Base(name), path.Ext(name))

	locale := strings.TrimSpace(file.Locale)
	if locale != wantLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", name, locale, wantLocale)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != wantNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match filename %q", name, namespace, wantNamespace)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", name)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("catalog %s: key %q must start with %q", name, key, namespace+".")
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", name, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// HasLocale reports whether locale was loaded.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the loaded locales, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns the raw message for key, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if messages, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if v, ok := messages[key]; ok {
			return v, true
		}
	}
	v, ok := b.locales[BaseLocale][key]
	return v, ok
}

// Register makes every message available to x/text/message printers.
// Locales missing a key get the base locale's text.
func (b *Bundle) Register() error {
	base := b.locales[BaseLocale]
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key, fallback := range base {
			text, ok := b.locales[locale][key]
			if !ok {
				text = fallback
			}
			if err := message.SetString(tag, key, text); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// Printer returns a printer for locale, or for BaseLocale if locale is unknown.
func (b *Bundle) Printer(locale string) *message.Printer {
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	return message.NewPrinter(language.MustParse(locale))
}

// Text formats key for locale.
func (b *Bundle) Text(locale, key string, args ...any) string {
	return b.Printer(locale).Sprintf(key, args...)
}
