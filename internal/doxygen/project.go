// Package doxygen loads a directory of Doxygen-generated XML into a raw
// project tree of compounds and members, and checks its structural
// consistency before any translation happens.
package doxygen

import (
	"strings"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
)

// Compound kinds recognized by the loader.
const (
	CompoundClass     = "class"
	CompoundStruct    = "struct"
	CompoundNamespace = "namespace"
)

// Member kinds recognized by the loader.
const (
	MemberFunction = "function"
	MemberEnum     = "enum"
)

// Project is the raw parsed form of one XML directory. Compounds keep
// their declaration order; nothing is sorted.
type Project struct {
	Compounds []*Compound
}

// doxygenFile matches any Doxygen XML root and picks up its compound
// definitions. Files without compounddef children (such as the Doxygen
// index file) simply contribute nothing.
type doxygenFile struct {
	Compounds []*Compound `xml:"compounddef"`
}

// Compound is one compounddef: a class, struct, or namespace.
type Compound struct {
	Kind     string     `xml:"kind,attr"`
	Name     string     `xml:"compoundname"`
	Brief    *Element   `xml:"briefdescription"`
	Sections []*Section `xml:"sectiondef"`
}

// Section is one sectiondef group of members.
type Section struct {
	Kind    string    `xml:"kind,attr"`
	Members []*Member `xml:"memberdef"`
}

// Members flattens the compound's section groups into one ordered list.
func (c *Compound) Members() []*Member {
	var out []*Member
	for _, s := range c.Sections {
		out = append(out, s.Members...)
	}
	return out
}

// Member is one memberdef: a function or an enum.
type Member struct {
	Kind       string       `xml:"kind,attr"`
	StaticAttr string       `xml:"static,attr"`
	Type       string       `xml:"type"`
	Name       string       `xml:"name"`
	Params     []*Param     `xml:"param"`
	EnumValues []*EnumValue `xml:"enumvalue"`
	Brief      *Element     `xml:"briefdescription"`
}

// IsStatic reports whether the member is declared static, which marks a
// class method as opposed to an instance method.
func (m *Member) IsStatic() bool {
	return m.StaticAttr == "yes"
}

// Param is one function parameter.
type Param struct {
	Type string `xml:"type"`
	Name string `xml:"declname"`
}

// EnumValue is one enumerator. Initializer is empty for auto-assigned
// values, otherwise the literal text, possibly prefixed with "=".
type EnumValue struct {
	Name        string   `xml:"name"`
	Initializer string   `xml:"initializer"`
	Brief       *Element `xml:"briefdescription"`
}

// Value returns the explicit initializer literal with any leading "="
// stripped, or "" for auto-assigned enumerators.
func (v *EnumValue) Value() string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v.Initializer), "="))
}

// Check verifies the structural consistency of the parsed input: every
// compound and member is named, enums have at least one named enumerator,
// and no fully-qualified compound name appears twice. It returns an
// input-consistency error on the first violation.
func (p *Project) Check() error {
	seen := make(map[string]bool, len(p.Compounds))
	for _, c := range p.Compounds {
		if c.Name == "" {
			return apierrors.Inputf("compound of kind %q has no name", c.Kind)
		}
		if seen[c.Name] {
			return apierrors.Inputf("duplicate compound name %q", c.Name)
		}
		seen[c.Name] = true

		for _, m := range c.Members() {
			if m.Name == "" {
				return apierrors.Inputf("unnamed %s member in compound %q", m.Kind, c.Name)
			}
			if m.Kind == MemberEnum {
				if len(m.EnumValues) == 0 {
					return apierrors.Inputf("enum %q in compound %q has no enumerators", m.Name, c.Name)
				}
				for _, v := range m.EnumValues {
					if v.Name == "" {
						return apierrors.Inputf("enum %q in compound %q has an unnamed enumerator", m.Name, c.Name)
					}
				}
			}
		}
	}
	return nil
}
