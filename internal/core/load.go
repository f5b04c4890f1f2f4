package core

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"filippo.io/age"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/themecfg/pkgs/fcrypt"
)

// DuplicatePolicy selects what happens when a mapping declares the same key
// twice.
type DuplicatePolicy int

const (
	// DuplicateReject fails the load with a MalformedError.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateLastWins keeps the last declared value.
	DuplicateLastWins
)

type loadOptions struct {
	source      string
	duplicates  DuplicatePolicy
	valueChecks bool
	identity    age.Identity
}

// Option configures how a record literal is loaded.
type Option func(*loadOptions)

// WithSource sets the label used in error messages.
func WithSource(name string) Option {
	return func(o *loadOptions) { o.source = name }
}

// WithDuplicateKeys sets the duplicate key policy. The default is
// DuplicateReject.
func WithDuplicateKeys(p DuplicatePolicy) Option {
	return func(o *loadOptions) { o.duplicates = p }
}

// WithValueChecks toggles color and length syntax checks. When disabled the
// values are passed through uninspected and only the shape is checked.
func WithValueChecks(enabled bool) Option {
	return func(o *loadOptions) { o.valueChecks = enabled }
}

// WithIdentity sets the age identity used to read .age files.
func WithIdentity(id age.Identity) Option {
	return func(o *loadOptions) { o.identity = id }
}

func newLoadOptions(source string, opts []Option) loadOptions {
	o := loadOptions{
		source:      source,
		duplicates:  DuplicateReject,
		valueChecks: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// recordFile is the on-disk shape of a record literal.
type recordFile struct {
	Content globList   `yaml:"content"`
	Theme   themeBlock `yaml:"theme"`
	Plugins pluginList `yaml:"plugins"`
}

type themeBlock struct {
	Extend themeFile `yaml:"extend"`
}

type themeFile struct {
	Colors       paletteSet `yaml:"colors"`
	BorderRadius tokenScale `yaml:"borderRadius"`
}

func (tf themeFile) theme() Theme {
	t := Theme{
		Colors:       make(map[string]Palette, len(tf.Colors)),
		BorderRadius: make(map[string]string, len(tf.BorderRadius)),
	}

	for name, shades := range tf.Colors {
		p := make(Palette, len(shades))
		for shade, value := range shades {
			p[Shade(shade)] = value
		}
		t.Colors[name] = p
	}

	for token, value := range tf.BorderRadius {
		t.BorderRadius[token] = value
	}

	return t
}

// Load constructs the record from the literal compiled into the binary.
func Load(opts ...Option) (*Record, error) {
	return LoadBytes(embeddedRecord, append([]Option{WithSource(embeddedSource)}, opts...)...)
}

// LoadBytes constructs a record from a YAML literal.
func LoadBytes(data []byte, opts ...Option) (*Record, error) {
	o := newLoadOptions("", opts)
	return decodeRecord(data, o)
}

// LoadFile constructs a record from a single static file. Files ending in
// .age are decrypted with the identity set by WithIdentity before decoding.
func LoadFile(path string, opts ...Option) (*Record, error) {
	o := newLoadOptions(path, opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.HasSuffix(path, fcrypt.Ext) {
		if o.identity == nil {
			return nil, fmt.Errorf("%s is encrypted but no age identity was provided", path)
		}

		log.Debug().Str("path", path).Msg("decrypting config file")

		var buf bytes.Buffer
		if err := fcrypt.DecryptReader(bytes.NewReader(data), &buf, o.identity); err != nil {
			return nil, fmt.Errorf("failed to decrypt %s: %w", path, err)
		}
		data = buf.Bytes()
	}

	return decodeRecord(data, o)
}

func decodeRecord(data []byte, o loadOptions) (*Record, error) {
	decodeOpts := []yaml.DecodeOption{yaml.DisallowUnknownField()}
	if o.duplicates == DuplicateLastWins {
		decodeOpts = append(decodeOpts, yaml.AllowDuplicateMapKey())
	}

	var rf recordFile
	if err := yaml.UnmarshalWithOptions(data, &rf, decodeOpts...); err != nil {
		return nil, newDecodeError(o.source, "theme.extend.", err)
	}

	r := &Record{
		source:       o.source,
		contentGlobs: cloneStrings(rf.Content),
		theme:        rf.Theme.Extend.theme(),
		plugins:      cloneStrings(rf.Plugins),
	}

	if err := validate(r, o.valueChecks); err != nil {
		return nil, err
	}

	log.Debug().
		Str("source", o.source).
		Int("globs", len(r.contentGlobs)).
		Int("palettes", len(r.theme.Colors)).
		Int("radii", len(r.theme.BorderRadius)).
		Int("plugins", len(r.plugins)).
		Msg("record loaded")

	return r, nil
}

func decodeTheme(source string, data []byte) (Theme, error) {
	var tf themeFile
	if err := yaml.UnmarshalWithOptions(data, &tf, yaml.DisallowUnknownField()); err != nil {
		return Theme{}, newDecodeError(source, "", err)
	}

	t := tf.theme()
	if problems := checkTheme(t, "", true); len(problems) > 0 {
		return Theme{}, &MalformedError{Source: source, Problems: problems}
	}

	return t, nil
}
