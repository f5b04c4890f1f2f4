package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/printer"
)

// ErrMalformedConfiguration is matched by every error produced while
// constructing a record from an invalid literal.
var ErrMalformedConfiguration = errors.New("malformed configuration")

// Problem is a single defect found in a record literal.
type Problem struct {
	Path    string // dotted key path, empty when unknown
	Line    int    // 1-based, zero when unknown
	Column  int
	Message string
}

func (p Problem) String() string {
	var sb strings.Builder
	if p.Path != "" {
		sb.WriteString(p.Path)
	}

	if p.Line > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "(line %d", p.Line)
		if p.Column > 0 {
			fmt.Fprintf(&sb, ", column %d", p.Column)
		}
		sb.WriteString(")")
	}

	if sb.Len() > 0 {
		sb.WriteString(": ")
	}

	sb.WriteString(p.Message)
	return sb.String()
}

// MalformedError reports every problem found in a record literal. Loading
// either fully succeeds or fails with one of these.
type MalformedError struct {
	Source   string
	Problems []Problem

	cause error // decode error from the yaml package, if any
}

// newDecodeError converts a decode failure. themePrefix is prepended to the
// paths of problems found inside the theme block.
func newDecodeError(source, themePrefix string, err error) *MalformedError {
	me := &MalformedError{Source: source, cause: err}

	var nerr *nodeError
	if errors.As(err, &nerr) {
		p := Problem{Path: nerr.path, Message: nerr.msg}
		if nerr.theme {
			p.Path = themePrefix + p.Path
		}
		if nerr.tk != nil && nerr.tk.Position != nil {
			p.Line = nerr.tk.Position.Line
			p.Column = nerr.tk.Position.Column
		}
		me.Problems = []Problem{p}
		return me
	}

	var yerr yaml.Error
	if errors.As(err, &yerr) {
		p := Problem{Message: yerr.GetMessage()}
		if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
			p.Line = tk.Position.Line
			p.Column = tk.Position.Column
		}
		me.Problems = []Problem{p}
		return me
	}

	me.Problems = []Problem{{Message: err.Error()}}
	return me
}

func (e *MalformedError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.String()
	}

	if e.Source == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedConfiguration, strings.Join(msgs, "; "))
	}

	return fmt.Sprintf("%s in %s: %s", ErrMalformedConfiguration, e.Source, strings.Join(msgs, "; "))
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedConfiguration
}

func (e *MalformedError) Unwrap() error {
	return e.cause
}

// Snippet renders the offending region of the source for decode errors. It
// returns an empty string for validation problems, which carry no source
// position.
func (e *MalformedError) Snippet(colored bool) string {
	if e.cause == nil {
		return ""
	}

	var nerr *nodeError
	if errors.As(e.cause, &nerr) {
		if nerr.tk == nil {
			return ""
		}
		var pp printer.Printer
		return pp.PrintErrorToken(nerr.tk, colored)
	}

	return yaml.FormatError(e.cause, colored, true)
}
