package core

import (
	_ "embed"
	"sync"
)

const (
	embeddedSource  = "embedded:themecfg.yml"
	baseThemeSource = "embedded:base_theme.yml"
)

//go:embed assets/themecfg.yml
var embeddedRecord []byte

//go:embed assets/base_theme.yml
var embeddedBaseTheme []byte

// DefaultLiteral returns a copy of the record literal compiled into the
// binary.
func DefaultLiteral() []byte {
	out := make([]byte, len(embeddedRecord))
	copy(out, embeddedRecord)
	return out
}

var baseTheme = sync.OnceValue(func() Theme {
	t, err := decodeTheme(baseThemeSource, embeddedBaseTheme)
	if err != nil {
		panic("core: embedded base theme is invalid: " + err.Error())
	}

	return t
})

// BaseTheme returns the built-in default theme the record extends.
func BaseTheme() Theme {
	return baseTheme().Clone()
}
