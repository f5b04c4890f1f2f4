package core

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	hexColorRe  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFuncRe = regexp.MustCompile(`(?i)^(?:rgba?|hsla?|hwb|lab|lch|oklab|oklch|color|color-mix|var)\(.+\)$`)
	lengthRe    = regexp.MustCompile(`(?i)^(?:\d+|\d*\.\d+)(?:px|rem|em|%|ch|ex|lh|rlh|vh|vw|vmin|vmax|svh|lvh|dvh|svw|lvw|dvw|cqw|cqh|cqi|cqb|cqmin|cqmax|pt|pc|in|cm|mm|q)$`)
	lengthFnRe  = regexp.MustCompile(`(?i)^(?:calc|var|min|max|clamp)\(.+\)$`)
)

var colorKeywords = func() map[string]struct{} {
	names := `transparent currentcolor inherit initial unset revert
aliceblue antiquewhite aqua aquamarine azure beige bisque black blanchedalmond
blue blueviolet brown burlywood cadetblue chartreuse chocolate coral
cornflowerblue cornsilk crimson cyan darkblue darkcyan darkgoldenrod darkgray
darkgreen darkgrey darkkhaki darkmagenta darkolivegreen darkorange darkorchid
darkred darksalmon darkseagreen darkslateblue darkslategray darkslategrey
darkturquoise darkviolet deeppink deepskyblue dimgray dimgrey dodgerblue
firebrick floralwhite forestgreen fuchsia gainsboro ghostwhite gold goldenrod
gray green greenyellow grey honeydew hotpink indianred indigo ivory khaki
lavender lavenderblush lawngreen lemonchiffon lightblue lightcoral lightcyan
lightgoldenrodyellow lightgray lightgreen lightgrey lightpink lightsalmon
lightseagreen lightskyblue lightslategray lightslategrey lightsteelblue
lightyellow lime limegreen linen magenta maroon mediumaquamarine mediumblue
mediumorchid mediumpurple mediumseagreen mediumslateblue mediumspringgreen
mediumturquoise mediumvioletred midnightblue mintcream mistyrose moccasin
navajowhite navy oldlace olive olivedrab orange orangered orchid palegoldenrod
palegreen paleturquoise palevioletred papayawhip peachpuff peru pink plum
powderblue purple rebeccapurple red rosybrown royalblue saddlebrown salmon
sandybrown seagreen seashell sienna silver skyblue slateblue slategray
slategrey snow springgreen steelblue tan teal thistle tomato turquoise violet
wheat white whitesmoke yellow yellowgreen`

	set := map[string]struct{}{}
	for _, n := range strings.Fields(names) {
		set[n] = struct{}{}
	}
	return set
}()

// IsColor reports whether v is a hex color or a CSS color expression.
func IsColor(v string) bool {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		return hexColorRe.MatchString(v)
	}

	if colorFuncRe.MatchString(v) {
		return true
	}

	_, ok := colorKeywords[strings.ToLower(v)]
	return ok
}

// IsLength reports whether v is a non-negative CSS length, a unitless zero or
// a math function producing one. border-radius rejects negative values.
func IsLength(v string) bool {
	v = strings.TrimSpace(v)
	if v == "0" {
		return true
	}

	return lengthRe.MatchString(v) || lengthFnRe.MatchString(v)
}

// Validate checks the shape and value syntax of a record. Records returned by
// the loaders have already passed it, except when value checks were disabled.
func Validate(r *Record) error {
	return validate(r, true)
}

func validate(r *Record, valueChecks bool) error {
	var problems []Problem

	for i, glob := range r.contentGlobs {
		if strings.TrimSpace(glob) == "" {
			problems = append(problems, Problem{Path: indexPath("content", i), Message: "content glob is empty"})
		}
	}

	problems = append(problems, checkTheme(r.theme, "theme.extend.", valueChecks)...)

	for i, ref := range r.plugins {
		if strings.TrimSpace(ref) == "" {
			problems = append(problems, Problem{Path: indexPath("plugins", i), Message: "plugin reference is empty"})
		}
	}

	if len(problems) > 0 {
		return &MalformedError{Source: r.source, Problems: problems}
	}

	return nil
}

func checkTheme(t Theme, prefix string, valueChecks bool) []Problem {
	var problems []Problem

	for _, name := range slices.Sorted(maps.Keys(t.Colors)) {
		path := prefix + "colors." + name
		palette := t.Colors[name]

		if strings.TrimSpace(name) == "" {
			problems = append(problems, Problem{Path: path, Message: "palette name is empty"})
		}

		if len(palette) == 0 {
			problems = append(problems, Problem{Path: path, Message: "palette defines no shades"})
		}

		for _, shade := range slices.Sorted(maps.Keys(palette)) {
			shadePath := path + "." + string(shade)
			if !shade.Valid() {
				problems = append(problems, Problem{
					Path:    shadePath,
					Message: "unknown shade, expected one of light, DEFAULT, dark",
				})
				continue
			}

			if valueChecks && !IsColor(palette[shade]) {
				problems = append(problems, Problem{
					Path:    shadePath,
					Message: "invalid color " + strconv.Quote(palette[shade]),
				})
			}
		}
	}

	for _, token := range slices.Sorted(maps.Keys(t.BorderRadius)) {
		path := prefix + "borderRadius." + token
		if strings.TrimSpace(token) == "" {
			problems = append(problems, Problem{Path: path, Message: "radius token is empty"})
		}

		if valueChecks && !IsLength(t.BorderRadius[token]) {
			problems = append(problems, Problem{
				Path:    path,
				Message: "invalid length " + strconv.Quote(t.BorderRadius[token]),
			})
		}
	}

	return problems
}

func indexPath(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}
