// Package printer writes styled, human readable output for the CLI.
package printer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/themecfg/pkgs/styles"
)

// StatusListItem is one line of a StatusList.
type StatusListItem struct {
	Ok     bool
	Label  string
	Detail string
}

// Tree is a labelled node printed by ListTree.
type Tree struct {
	Label    string
	Children []Tree
}

// KeyValueError pairs a key path with what is wrong with it.
type KeyValueError struct {
	Key     string
	Message string
}

type Printer struct {
	writer io.Writer
	base   styles.RenderFunc
	light  styles.RenderFunc
}

func New(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		base:   styles.Padding,
		light:  styles.Subtle,
	}
}

// Ctx returns a copy of the printer that writes to the writer stored in ctx,
// if any.
func (p *Printer) Ctx(ctx context.Context) *Printer {
	w, ok := GetWriter(ctx)
	if !ok {
		return p
	}

	cp := *p
	cp.writer = w
	return &cp
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.writer, s)
}

func (p *Printer) LineBreak() {
	p.println("")
}

// Text writes s unstyled.
func (p *Printer) Text(s string) {
	p.println(s)
}

func (p *Printer) Title(title string) {
	p.println(styles.Accent(title))
}

func (p *Printer) FatalError(err error) {
	p.println(styles.ErrorBox("Error", err.Error()))
}

func (p *Printer) List(title string, items []string) {
	p.Title(title)
	if len(items) == 0 {
		p.println(p.light("(none)"))
		return
	}

	for _, item := range items {
		p.println(p.base(styles.Dot + " " + item))
	}
}

func (p *Printer) StatusList(title string, items []StatusListItem) {
	p.Title(title)
	for _, item := range items {
		mark := styles.Success(styles.Check)
		if !item.Ok {
			mark = styles.Padding(styles.Error(styles.Cross))
		}

		line := mark + " " + item.Label
		if item.Detail != "" {
			line += p.light(item.Detail)
		}
		p.println(line)
	}
}

func (p *Printer) ListTree(title string, list []Tree) {
	p.Title(title)
	if len(list) == 0 {
		p.println(p.light("(none)"))
		return
	}

	for _, node := range list {
		p.writeTree(node, 0)
	}
}

func (p *Printer) writeTree(node Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	bullet := styles.Dot
	if depth > 0 {
		bullet = styles.Arrow
	}

	p.println(p.base(indent + bullet + " " + node.Label))
	for _, child := range node.Children {
		p.writeTree(child, depth+1)
	}
}

func (p *Printer) KeyValueValidationError(title string, errs []KeyValueError) {
	p.println(styles.Padding(styles.Error(styles.Cross + " " + title)))
	for _, e := range errs {
		key := e.Key
		if key == "" {
			key = "(document)"
		}
		p.println(p.base("  " + styles.Bold(key) + " " + e.Message))
	}
}
