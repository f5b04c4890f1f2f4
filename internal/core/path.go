package core

import (
	"strconv"
	"strings"
)

// Root keys of the record tree.
const (
	KeyContentGlobs    = "contentGlobs"
	KeyPluginList      = "pluginList"
	KeyThemeExtensions = "themeExtensions"
	KeyColors          = "colors"
	KeyBorderRadius    = "borderRadius"
)

var rootAliases = map[string]string{
	"content": KeyContentGlobs,
	"plugins": KeyPluginList,
}

// ParsePath splits a dotted path such as "colors.primary.DEFAULT" into keys.
// Empty segments are dropped.
func ParsePath(s string) []string {
	parts := strings.Split(s, ".")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Tree returns the record as nested maps and slices. Sequences are []string
// and mappings are map[string]any. The result is a fresh copy on every call.
func (r *Record) Tree() map[string]any {
	return map[string]any{
		KeyContentGlobs:    r.ContentGlobs(),
		KeyPluginList:      r.Plugins(),
		KeyThemeExtensions: ThemeTree(r.theme),
	}
}

// ThemeTree returns a theme as nested maps keyed like the record literal.
func ThemeTree(t Theme) map[string]any {
	colors := make(map[string]any, len(t.Colors))
	for name, palette := range t.Colors {
		shades := make(map[string]any, len(palette))
		for shade, value := range palette {
			shades[string(shade)] = value
		}
		colors[name] = shades
	}

	radius := make(map[string]any, len(t.BorderRadius))
	for token, value := range t.BorderRadius {
		radius[token] = value
	}

	return map[string]any{
		KeyColors:       colors,
		KeyBorderRadius: radius,
	}
}

// Get looks up the value at path. "colors" and "borderRadius" address the
// theme extensions directly, "content" and "plugins" are accepted for the
// sequence keys, and numeric segments index into sequences. A missing key
// reports false; Get never fails otherwise.
func (r *Record) Get(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	path = normalizePath(path)

	var cur any = r.Tree()
	for _, key := range path {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case []string:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}

	return cur, true
}

func normalizePath(path []string) []string {
	head := path[0]
	if alias, ok := rootAliases[head]; ok {
		head = alias
	}

	out := make([]string, 0, len(path)+1)
	switch head {
	case KeyColors, KeyBorderRadius:
		out = append(out, KeyThemeExtensions, head)
	default:
		out = append(out, head)
	}

	return append(out, path[1:]...)
}
