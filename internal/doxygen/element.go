package doxygen

import (
	"encoding/xml"
)

// Element is a minimal DOM node for documentation fragments. Doxygen
// description nodes hold mixed content (text interleaved with <ref> and
// <simplesect> children), which struct-tag decoding cannot represent, so
// these subtrees are kept as a generic tree and interpreted later by the
// documentation parser.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Text     string // character data before the first child
	Tail     string // character data following this element inside its parent
	Children []*Element
}

// UnmarshalXML builds the element subtree from the decoder token stream.
func (e *Element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.Tag = start.Name.Local
	if len(start.Attr) > 0 {
		e.Attrs = make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			e.Attrs[a.Name.Local] = a.Value
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			if len(e.Children) == 0 {
				e.Text += string(t)
			} else {
				e.Children[len(e.Children)-1].Tail += string(t)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Attr returns the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	return e.Attrs[name]
}

// FindAll returns the direct children with the given tag, in document order.
func (e *Element) FindAll(tag string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.FindAll(tag) {
		return c
	}
	return nil
}
