package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when WithDefaultLanguage is not given.
const DefaultLanguage = "en"

// Translator renders catalog messages for a language.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger

	mu        sync.RWMutex
	langs     []string
	matchable []string
	matcher   language.Matcher
}

// NewTranslator creates a Translator from the translations returned by adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, trans := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if trans == nil {
			return nil, fmt.Errorf("%w: nil translations for language %q", ErrInvalidCatalog, lang)
		}
	}

	t.translations = translations
	t.buildMatcher()
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.langs)
	return t, nil
}

// buildMatcher indexes the loaded languages for negotiation. The default
// language goes first so that it wins when nothing matches.
func (t *Translator) buildMatcher() {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	ordered := make([]string, 0, len(langs)+1)
	ordered = append(ordered, t.defaultLang)
	tags := []language.Tag{language.Make(t.defaultLang)}
	for _, lang := range langs {
		if lang == t.defaultLang {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			t.logger.Warn("skipping unparsable language code", "lang", lang, "error", err)
			continue
		}
		ordered = append(ordered, lang)
		tags = append(tags, tag)
	}

	t.langs = langs
	t.matcher = language.NewMatcher(tags)
	t.matchable = ordered
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// Match returns the supported language that best fits the preferred tags,
// in order of preference. Tags may be BCP 47 codes ("de-CH") or full
// Accept-Language values. Unparsable tags are skipped.
func (t *Translator) Match(tags ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var preferred []language.Tag
	for _, raw := range tags {
		parsed, _, err := language.ParseAcceptLanguage(raw)
		if err != nil {
			continue
		}
		preferred = append(preferred, parsed...)
	}
	if len(preferred) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(preferred...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.matchable[idx]
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. A key missing in lang is looked up in the
// default language; if it is missing there too, T returns the key (or ""
// when fallback to key is disabled).
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.resolve(lang, key); ok {
		return namedSprintf(tmpl, buildParams(args))
	}
	if t.fallbackToKey {
		return namedSprintf(key, buildParams(args))
	}
	return ""
}

// TranslateError renders err in lang when its chain holds a Translatable
// with a known key. Any other error is returned as err.Error().
func (t *Translator) TranslateError(lang string, err error) string {
	if err == nil {
		return ""
	}

	var tr Translatable
	if !errors.As(err, &tr) {
		return err.Error()
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.resolve(lang, tr.TranslationKey())
	if !ok {
		return err.Error()
	}

	params := make(map[string]string, len(tr.TranslationValues()))
	for k, v := range tr.TranslationValues() {
		params[k] = fmt.Sprint(v)
	}
	return namedSprintf(tmpl, params)
}

// resolve finds the template for key in lang, then in the default language.
func (t *Translator) resolve(lang, key string) (string, bool) {
	if tmpl, ok := t.lookup(lang, key); ok {
		return tmpl, true
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, key); ok {
			return tmpl, true
		}
	}
	t.logger.Debug("translation not found", "lang", lang, "key", key)
	return "", false
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "argassert.empty" reads m["argassert"]["empty"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}
		current = currentMap
	}

	return nil, false
}

// buildParams converts name, value pairs into a map. An odd trailing
// argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders. Unknown placeholders are kept.
func namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
