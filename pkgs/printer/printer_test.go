package printer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDeferredWriter_HoldsUntilFlush(t *testing.T) {
	var out bytes.Buffer
	dw := NewDeferredWriter(&out)

	_, _ = dw.Write([]byte("colors\n"))
	if out.Len() != 0 {
		t.Fatalf("output written before Flush: %q", out.String())
	}

	if err := dw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.String() != "colors\n" {
		t.Errorf("flushed = %q, want %q", out.String(), "colors\n")
	}

	if err := dw.Flush(); err != nil || out.String() != "colors\n" {
		t.Errorf("second Flush() wrote again: %q, %v", out.String(), err)
	}
}

func TestPrinter_CtxUsesContextWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithWriter(context.Background(), &buf)

	Ctx(ctx).List("Content", []string{"./templates/**/*.html"})

	if !strings.Contains(buf.String(), "./templates/**/*.html") {
		t.Errorf("output = %q, want the glob", buf.String())
	}
}

func TestPrinter_Output(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.List("Plugins", nil)
	p.StatusList("Validation", []StatusListItem{
		{Ok: true, Label: "themecfg.yml"},
		{Ok: false, Label: "broken.yml", Detail: "2 problems"},
	})
	p.ListTree("Colors", []Tree{
		{Label: "primary", Children: []Tree{{Label: "DEFAULT #10b981"}}},
	})
	p.KeyValueValidationError("broken.yml", []KeyValueError{
		{Key: "theme.extend.borderRadius.lg", Message: `invalid length "large"`},
		{Message: "syntax error"},
	})
	p.FatalError(errors.New("boom"))
	p.Text("module.exports = {};")

	out := buf.String()
	for _, want := range []string{
		"(none)", "themecfg.yml", "broken.yml", "2 problems", "primary", "DEFAULT #10b981",
		"theme.extend.borderRadius.lg", "(document)", "boom", "module.exports = {};",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
