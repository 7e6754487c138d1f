// Package formatter renders parse trees for human and machine consumption:
// an indented outline (optionally colorized), JSON, YAML, and XML.
package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/shibukawa/treegram"
)

// ErrUnknownFormat is returned when a format name is not one of
// tree, json, yaml, xml.
var ErrUnknownFormat = errors.New("unknown output format")

// Render formats r in the named format.
func Render(r treegram.Result, format string) (string, error) {
	switch format {
	case "tree":
		return Indent(r), nil
	case "json":
		return JSON(r)
	case "yaml":
		return YAML(r)
	case "xml":
		return XML(r)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Indent renders r as an indented outline, one node name or matched text
// per line, children four spaces deeper than their parent.
func Indent(r treegram.Result) string {
	var sb strings.Builder
	writeIndent(&sb, r, "")

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeIndent(sb *strings.Builder, r treegram.Result, indent string) {
	switch v := r.(type) {
	case treegram.Text:
		sb.WriteString(indent)
		sb.WriteString(string(v))
		sb.WriteString("\n")
	case *treegram.Tree:
		sb.WriteString(indent)
		sb.WriteString(v.Name)
		sb.WriteString(":\n")

		for _, c := range v.Children {
			writeIndent(sb, c, indent+"    ")
		}
	case *treegram.Spliced:
		for _, c := range v.Children {
			writeIndent(sb, c, indent)
		}
	default:
		sb.WriteString(indent)
		sb.WriteString("<discarded>\n")
	}
}

// WriteColorTree writes the indented outline with node names and matched
// text in distinct colors.
func WriteColorTree(w io.Writer, r treegram.Result) {
	name := color.New(color.FgCyan, color.Bold)
	text := color.New(color.FgGreen)

	writeColor(w, r, "", name, text)
}

func writeColor(w io.Writer, r treegram.Result, indent string, name, text *color.Color) {
	switch v := r.(type) {
	case treegram.Text:
		text.Fprintf(w, "%s%s\n", indent, string(v))
	case *treegram.Tree:
		name.Fprintf(w, "%s%s:\n", indent, v.Name)

		for _, c := range v.Children {
			writeColor(w, c, indent+"    ", name, text)
		}
	case *treegram.Spliced:
		for _, c := range v.Children {
			writeColor(w, c, indent, name, text)
		}
	default:
		fmt.Fprintf(w, "%s<discarded>\n", indent)
	}
}

// treeValue is the serialization shape shared by JSON and YAML: trees become
// objects with name and children, matched text becomes plain strings.
type treeValue struct {
	Name     string `json:"name" yaml:"name"`
	Children []any  `json:"children" yaml:"children"`
}

func toValue(r treegram.Result) any {
	switch v := r.(type) {
	case treegram.Text:
		return string(v)
	case *treegram.Tree:
		children := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, toValue(c))
		}

		return treeValue{Name: v.Name, Children: children}
	case *treegram.Spliced:
		children := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, toValue(c))
		}

		return children
	default:
		return nil
	}
}

// JSON renders r as a compact JSON document.
func JSON(r treegram.Result) (string, error) {
	b, err := json.Marshal(toValue(r))
	if err != nil {
		return "", fmt.Errorf("failed to marshal tree to JSON: %w", err)
	}

	return string(b), nil
}

// YAML renders r as a YAML document.
func YAML(r treegram.Result) (string, error) {
	b, err := yaml.Marshal(toValue(r))
	if err != nil {
		return "", fmt.Errorf("failed to marshal tree to YAML: %w", err)
	}

	return string(b), nil
}

// XML renders r as an indented XML document: <node name="..."> elements for
// trees, <text> elements for matched text.
func XML(r treegram.Result) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	addElement(&doc.Element, r)
	doc.Indent(2)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize tree to XML: %w", err)
	}

	return out, nil
}

func addElement(parent *etree.Element, r treegram.Result) {
	switch v := r.(type) {
	case treegram.Text:
		parent.CreateElement("text").SetText(string(v))
	case *treegram.Tree:
		e := parent.CreateElement("node")
		e.CreateAttr("name", v.Name)

		for _, c := range v.Children {
			addElement(e, c)
		}
	case *treegram.Spliced:
		e := parent.CreateElement("splice")
		for _, c := range v.Children {
			addElement(e, c)
		}
	default:
		parent.CreateElement("discarded")
	}
}
