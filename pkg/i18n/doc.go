// Package i18n renders localized messages from YAML catalogs, including
// messages for argument-check failures.
//
// Catalogs are YAML documents keyed by language, with nested maps addressed
// by dot-separated keys and %{name} placeholders:
//
//	en:
//	  argassert:
//	    empty: "%{label} is empty"
//
// A Translator loads catalogs through a TranslationAdapter (FSAdapter for any
// fs.FS, MapAdapter for in-memory data), negotiates languages with
// golang.org/x/text/language, and translates any error carrying a
// Translatable in its chain:
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), argassert.Translations(), ".")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//
//	lang := tr.Match("de-CH", "fr")              // "de"
//	_, err = argassert.NotEmptyString(name, "Name")
//	msg := tr.TranslateError(lang, err)          // "Name ist leer"
//
// A Translator is read-only after construction and safe for concurrent use.
package i18n
