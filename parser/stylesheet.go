/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"fmt"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// ErrMalformedStylesheet is returned when CSS text contains syntax errors.
var ErrMalformedStylesheet = errors.New("malformed stylesheet")

// Declaration is a custom property declaration found in a stylesheet.
type Declaration struct {
	// Name is the property name without its leading dashes.
	Name  string `json:"name"`
	Value string `json:"value"`

	// Line is the 1-based source line of the declaration.
	Line int `json:"line"`
}

// ExtractStylesheet returns every custom property declaration in css,
// in source order. Regular properties are ignored.
func ExtractStylesheet(css []byte) ([]Declaration, error) {
	tree, err := parseCSS(css)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var decls []Declaration
	walk(tree.RootNode(), func(n *ts.Node) {
		if n.Kind() != "declaration" {
			return
		}
		if d, ok := customProperty(n, css); ok {
			decls = append(decls, d)
		}
	})
	return decls, nil
}

// CheckStylesheet reports the first syntax error in css, if any.
func CheckStylesheet(css []byte) error {
	tree, err := parseCSS(css)
	if err != nil {
		return err
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	var bad *ts.Node
	walk(root, func(n *ts.Node) {
		if bad == nil && (n.IsError() || n.IsMissing()) {
			bad = n
		}
	})
	if bad == nil {
		return ErrMalformedStylesheet
	}
	return fmt.Errorf("%w: line %d: unexpected %q", ErrMalformedStylesheet,
		bad.StartPosition().Row+1, bad.Utf8Text(css))
}

// RenderBatch formats declarations in the batch paste format accepted by
// ParseBatch, one per line.
func RenderBatch(decls []Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		fmt.Fprintf(&b, "--%s: %s;\n", d.Name, d.Value)
	}
	return b.String()
}

func parseCSS(css []byte) (*ts.Tree, error) {
	p := ts.NewParser()
	defer p.Close()
	if err := p.SetLanguage(ts.NewLanguage(tree_sitter_css.Language())); err != nil {
		return nil, fmt.Errorf("loading css grammar: %w", err)
	}
	tree := p.Parse(css, nil)
	if tree == nil {
		return nil, ErrMalformedStylesheet
	}
	return tree, nil
}

func walk(n *ts.Node, visit func(*ts.Node)) {
	visit(n)
	for i := uint(0); i < n.ChildCount(); i++ {
		walk(n.Child(i), visit)
	}
}

// customProperty reads a declaration node of the form
// (declaration (property_name) ":" value... ";").
func customProperty(n *ts.Node, src []byte) (Declaration, bool) {
	var name string
	var start, end uint
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "property_name":
			name = child.Utf8Text(src)
		case ":":
			start = child.EndByte()
			end = n.EndByte()
		case ";":
			end = child.StartByte()
		}
	}
	if !strings.HasPrefix(name, "--") || start == 0 || end < start {
		return Declaration{}, false
	}
	value := strings.Join(strings.Fields(string(src[start:end])), " ")
	if value == "" {
		return Declaration{}, false
	}
	return Declaration{
		Name:  strings.TrimPrefix(name, "--"),
		Value: value,
		Line:  int(n.StartPosition().Row) + 1,
	}, true
}
