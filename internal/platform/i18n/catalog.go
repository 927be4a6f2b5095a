package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
)

const catalogGlob = "locales/active.*.toml"

//go:embed locales/*.toml
var embeddedLocales embed.FS

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Resolver holds one materialized table per supported language.
type Resolver struct {
	tables   [languageCount][keyCount]string
	bundle   *goi18n.Bundle
	reported sync.Map
}

// DefaultResolver returns the process-wide resolver built from the embedded
// catalogs. It panics when the embedded catalogs are invalid.
func DefaultResolver() *Resolver {
	defaultOnce.Do(func() {
		resolver, err := Load(embeddedLocales)
		if err != nil {
			panic(fmt.Sprintf("i18n: load embedded catalogs: %v", err))
		}
		defaultResolver = resolver
	})
	return defaultResolver
}

// Load reads every locales/active.<lang>.toml file from fsys.
//
// The base language (English) must define every Key. Other languages may
// omit keys; omissions are logged once here and resolve to the key string at
// lookup time. Unknown message IDs and unsupported languages are errors.
func Load(fsys fs.FS) (*Resolver, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := goi18n.NewBundle(Default.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	resolver := &Resolver{bundle: bundle}
	var loaded [languageCount]bool
	for _, p := range paths {
		file, err := bundle.LoadMessageFileFS(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", p, err)
		}
		lang, ok := ParseLanguage(file.Tag.String())
		if !ok {
			return nil, fmt.Errorf("catalog %s: unsupported language %q", p, file.Tag.String())
		}
		if loaded[lang] {
			return nil, fmt.Errorf("catalog %s: duplicate catalog for %s", p, lang)
		}
		loaded[lang] = true
		for _, msg := range file.Messages {
			key, ok := ParseKey(msg.ID)
			if !ok {
				return nil, fmt.Errorf("catalog %s: unknown message id %q", p, msg.ID)
			}
			resolver.tables[lang][key] = msg.Other
		}
	}

	if missing := resolver.Missing(Default); len(missing) > 0 {
		return nil, fmt.Errorf("base catalog %s is missing keys: %s", Default, joinKeys(missing))
	}
	for _, lang := range Languages() {
		if lang == Default {
			continue
		}
		if !loaded[lang] {
			log.Printf("i18n: no catalog for language=%s, falling back to keys", lang)
			continue
		}
		if missing := resolver.Missing(lang); len(missing) > 0 {
			log.Printf("i18n: catalog incomplete language=%s missing=%s", lang, joinKeys(missing))
		}
	}
	return resolver, nil
}

// Text returns the display string for key in lang, or the key's identifier
// when the language table has no entry.
func (r *Resolver) Text(key Key, lang Language) string {
	if key >= keyCount {
		return ""
	}
	if !lang.Supported() {
		lang = Default
	}
	if value := r.tables[lang][key]; value != "" {
		return value
	}
	return keyNames[key]
}

// Translate resolves an identifier that may not belong to the key set. An
// unknown identifier is returned unchanged.
func (r *Resolver) Translate(name string, lang Language) string {
	key, ok := ParseKey(name)
	if !ok {
		if _, seen := r.reported.LoadOrStore(name, struct{}{}); !seen {
			log.Printf("i18n: unknown translation key=%q", name)
		}
		return name
	}
	return r.Text(key, lang)
}

// Format renders a templated message such as Welcome with data.
func (r *Resolver) Format(key Key, lang Language, data map[string]any) string {
	if key >= keyCount {
		return ""
	}
	if !lang.Supported() {
		lang = Default
	}
	if r.tables[lang][key] == "" {
		return keyNames[key]
	}
	localizer := goi18n.NewLocalizer(r.bundle, lang.Code())
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    keyNames[key],
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed key=%s language=%s: %v", key, lang, err)
		return r.tables[lang][key]
	}
	return msg
}

// Missing lists the keys lang has no entry for.
func (r *Resolver) Missing(lang Language) []Key {
	if !lang.Supported() {
		return Keys()
	}
	var missing []Key
	for idx, value := range r.tables[lang] {
		if value == "" {
			missing = append(missing, Key(idx))
		}
	}
	return missing
}

func joinKeys(keys []Key) string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.String())
	}
	return strings.Join(names, ",")
}
