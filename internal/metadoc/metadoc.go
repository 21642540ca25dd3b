// Package metadoc models documentation fragments extracted from the XML
// description in a language-neutral form, and translates them into target
// markup dialects. Cross-references inside a fragment carry the source
// spelling of the referenced entity and are resolved against the abstract
// project's indices before any page is generated.
package metadoc

import (
	"strings"

	"github.com/JonathanLv/linphone/internal/doxygen"
	apierrors "github.com/JonathanLv/linphone/internal/errors"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// Description is one documentation fragment: an ordered list of paragraphs.
type Description struct {
	Paragraphs []*Paragraph
}

// IsEmpty reports whether the description has no content at all.
func (d *Description) IsEmpty() bool {
	return d == nil || len(d.Paragraphs) == 0
}

// Paragraph is a run of parts: plain text interleaved with references and
// admonition sections.
type Paragraph struct {
	Parts []Part
}

// Part is one piece of a paragraph.
type Part interface {
	part()
}

// Text is a literal text fragment.
type Text string

func (Text) part() {}

// Reference is a cross-reference to another API entity, identified by the
// spelling used in the source XML. Function references are distinguished
// by a trailing "()" in the source.
type Reference struct {
	Target   string
	Function bool

	object Referenceable
}

func (*Reference) part() {}

// Object returns the resolved entity, or nil before resolution.
func (r *Reference) Object() Referenceable { return r.object }

// Section is an admonition block such as a "see", "note", or "warning"
// simple section.
type Section struct {
	Kind      string
	Paragraph *Paragraph
}

func (*Section) part() {}

// Referenceable is the view of an API entity a documentation translator
// needs: its abstract name, whose kind selects the markup role.
type Referenceable interface {
	RefTarget() *metaname.Name
}

// Resolver looks up referenced entities in the abstract project indices.
type Resolver interface {
	// ResolveType resolves a class or enum reference by source spelling.
	ResolveType(target string) (Referenceable, bool)
	// ResolveFunction resolves a method reference by source spelling.
	ResolveFunction(target string) (Referenceable, bool)
}

// ResolveReferences resolves every cross-reference in the description.
// A reference pointing at an unknown entity is an input-consistency error.
func (d *Description) ResolveReferences(r Resolver) error {
	if d == nil {
		return nil
	}
	for _, para := range d.Paragraphs {
		if err := para.resolveReferences(r); err != nil {
			return err
		}
	}
	return nil
}

func (p *Paragraph) resolveReferences(r Resolver) error {
	for _, part := range p.Parts {
		switch v := part.(type) {
		case *Reference:
			if err := v.resolve(r); err != nil {
				return err
			}
		case *Section:
			if v.Paragraph != nil {
				if err := v.Paragraph.resolveReferences(r); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *Reference) resolve(res Resolver) error {
	var (
		obj Referenceable
		ok  bool
	)
	if r.Function {
		obj, ok = res.ResolveFunction(r.Target)
	} else {
		obj, ok = res.ResolveType(r.Target)
	}
	if !ok {
		return apierrors.Inputf("documentation reference points at unknown entity %q", r.Target)
	}
	r.object = obj
	return nil
}

// ParseDescription interprets a raw briefdescription node. Paragraphs that
// carry no content once whitespace is discarded are dropped.
func ParseDescription(node *doxygen.Element) *Description {
	desc := &Description{}
	if node == nil {
		return desc
	}
	for _, paraNode := range node.FindAll("para") {
		if para := parseParagraph(paraNode); para != nil {
			desc.Paragraphs = append(desc.Paragraphs, para)
		}
	}
	return desc
}

func parseParagraph(node *doxygen.Element) *Paragraph {
	para := &Paragraph{}
	empty := true

	appendText := func(s string) {
		if s == "" {
			return
		}
		para.Parts = append(para.Parts, Text(s))
		if strings.TrimSpace(s) != "" {
			empty = false
		}
	}

	appendText(node.Text)
	for _, child := range node.Children {
		switch child.Tag {
		case "ref":
			if ref := parseReference(child); ref != nil {
				para.Parts = append(para.Parts, ref)
				empty = false
			}
		case "simplesect":
			if section := parseSimpleSection(child); section != nil {
				para.Parts = append(para.Parts, section)
				empty = false
			}
		default:
			appendText(child.Text)
		}
		appendText(child.Tail)
	}

	if empty {
		return nil
	}
	return para
}

func parseSimpleSection(node *doxygen.Element) *Section {
	para := node.Find("para")
	if para == nil {
		return nil
	}
	return &Section{Kind: node.Attr("kind"), Paragraph: parseParagraph(para)}
}

func parseReference(node *doxygen.Element) *Reference {
	target := strings.TrimSpace(node.Text)
	if target == "" {
		return nil
	}
	if strings.HasSuffix(target, "()") {
		return &Reference{Target: strings.TrimSuffix(target, "()"), Function: true}
	}
	return &Reference{Target: target}
}
