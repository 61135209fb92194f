package argassert

import (
	"embed"
	"io/fs"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// Translations returns the bundled message catalogs, one YAML file per
// language, keyed by the Key* constants. Messages use the %{label},
// %{value} and %{bound} placeholders.
func Translations() fs.FS {
	sub, err := fs.Sub(translationsFS, "translations")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}
