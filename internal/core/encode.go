package core

import (
	"github.com/goccy/go-yaml"
)

// NewRecord builds a record from values instead of a literal. The values go
// through the same checks as a loaded literal.
func NewRecord(contentGlobs []string, theme Theme, plugins []string) (*Record, error) {
	r := &Record{
		contentGlobs: cloneStrings(contentGlobs),
		theme:        theme.Clone(),
		plugins:      cloneStrings(plugins),
	}

	if err := validate(r, true); err != nil {
		return nil, err
	}

	return r, nil
}

// Encode writes the record back out as a YAML literal that LoadBytes accepts.
// Map keys are sorted, so the output is stable across calls.
func (r *Record) Encode() ([]byte, error) {
	rf := recordFile{
		Content: r.ContentGlobs(),
		Theme:   themeBlock{Extend: newThemeFile(r.theme)},
		Plugins: r.Plugins(),
	}

	return yaml.MarshalWithOptions(rf, yaml.Indent(2), yaml.IndentSequence(true))
}

func newThemeFile(t Theme) themeFile {
	tf := themeFile{
		Colors:       make(paletteSet, len(t.Colors)),
		BorderRadius: make(tokenScale, len(t.BorderRadius)),
	}

	for name, palette := range t.Colors {
		shades := make(map[string]string, len(palette))
		for shade, value := range palette {
			shades[string(shade)] = value
		}
		tf.Colors[name] = shades
	}

	for token, value := range t.BorderRadius {
		tf.BorderRadius[token] = value
	}

	return tf
}
