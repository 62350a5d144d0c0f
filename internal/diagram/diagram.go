// Package diagram renders Mermaid class diagrams.
//
// The output of Render is consumed verbatim by the UI and API clients, so
// its formatting is part of the contract and is pinned by golden tests.
package diagram

import "strings"

// Class is one class block of a diagram.
type Class struct {
	Name       string
	Attributes []Attribute
}

// Attribute is one member line of a class block.
type Attribute struct {
	Kind string
	Name string
}

// Association is one directed arrow between two classes.
type Association struct {
	Owner       string
	Associated  string
	Description string
}

// Render returns the class diagram for classes and associations, keeping
// their input order. Empty sections are left out, so Render(nil, nil) is
// exactly "classDiagram".
func Render(classes []Class, associations []Association) string {
	var b strings.Builder
	b.WriteString("classDiagram")

	if len(classes) > 0 {
		b.WriteString("\n\n")
		for i, c := range classes {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeClass(&b, c)
		}
		b.WriteByte('\n')
	}

	if len(associations) > 0 {
		b.WriteString("\n")
		if len(classes) == 0 {
			b.WriteString("\n")
		}
		for i, a := range associations {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeAssociation(&b, a)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func writeClass(b *strings.Builder, c Class) {
	b.WriteString("    class ")
	b.WriteString(className(c.Name))
	b.WriteString(" {\n")
	for _, a := range c.Attributes {
		b.WriteString("        +")
		b.WriteString(a.Kind)
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteByte('\n')
	}
	b.WriteString("    }")
}

func writeAssociation(b *strings.Builder, a Association) {
	b.WriteString("    ")
	b.WriteString(className(a.Owner))
	b.WriteString(" --> ")
	b.WriteString(className(a.Associated))
	if a.Description != "" {
		b.WriteString(" : ")
		b.WriteString(a.Description)
	}
}

// className returns name as a Mermaid class identifier. Names made only of
// ASCII letters, digits and underscores are written as is; anything else is
// wrapped in backticks.
func className(name string) string {
	for _, r := range name {
		if !isIdentRune(r) {
			return "`" + name + "`"
		}
	}
	return name
}

func isIdentRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
