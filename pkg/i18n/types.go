package i18n

import "context"

// Parser parses catalog content into translations keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles files with
	// the given extension. The leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// TranslationAdapter defines how translations are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Translatable is implemented by errors that can be rendered from a catalog,
// such as *argassert.Error.
type Translatable interface {
	TranslationKey() string
	TranslationValues() map[string]any
}
