// Package metaname models abstract API identifiers and their translation
// into language-specific spellings. A Name carries lowercase word segments
// and a link to its enclosing scope, so the same identifier can be rendered
// as CamelCase, snake_case, or a scope-qualified path without loss.
package metaname

import (
	"strings"
	"unicode"
)

// Kind classifies what an identifier names. Translators use it to pick
// the spelling convention for the target language.
type Kind int

const (
	KindNamespace Kind = iota
	KindClass
	KindEnum
	KindEnumerator
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindEnumerator:
		return "enumerator"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Name is an abstract identifier: ordered lowercase word segments plus the
// scope it is declared in. Names are immutable after construction.
type Name struct {
	kind   Kind
	words  []string
	parent *Name
}

// New builds a Name from already-split lowercase words.
func New(kind Kind, parent *Name, words ...string) *Name {
	n := &Name{kind: kind, parent: parent, words: make([]string, 0, len(words))}
	for _, w := range words {
		if w != "" {
			n.words = append(n.words, strings.ToLower(w))
		}
	}
	return n
}

// FromCamelCase splits an UpperCamelCase or lowerCamelCase spelling
// ("BarBaz", "doThing") into word segments.
func FromCamelCase(kind Kind, parent *Name, s string) *Name {
	var words []string
	var cur strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
		cur.WriteRune(unicode.ToLower(r))
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return New(kind, parent, words...)
}

// FromSnakeCase splits a snake_case spelling ("bar_baz") into word segments.
func FromSnakeCase(kind Kind, parent *Name, s string) *Name {
	return New(kind, parent, strings.Split(s, "_")...)
}

// Kind returns what this identifier names.
func (n *Name) Kind() Kind { return n.kind }

// Words returns the identifier's word segments in order. The returned slice
// must not be modified.
func (n *Name) Words() []string { return n.words }

// Parent returns the enclosing scope, or nil for a top-level name.
func (n *Name) Parent() *Name { return n.parent }

// Ancestors returns the chain of enclosing scopes, outermost first.
func (n *Name) Ancestors() []*Name {
	var chain []*Name
	for p := n.parent; p != nil; p = p.parent {
		chain = append([]*Name{p}, chain...)
	}
	return chain
}

// ToSnakeCase renders the name as snake_case. With full set, the word
// segments of every enclosing scope are prefixed, which is the spelling
// used to derive page filenames.
func (n *Name) ToSnakeCase(full bool) string {
	var words []string
	if full {
		for _, a := range n.Ancestors() {
			words = append(words, a.words...)
		}
	}
	words = append(words, n.words...)
	return strings.Join(words, "_")
}

// ToCamelCase renders the name as UpperCamelCase, optionally prefixed by
// the CamelCase spelling of every enclosing scope.
func (n *Name) ToCamelCase(full bool) string {
	var sb strings.Builder
	if full {
		for _, a := range n.Ancestors() {
			for _, w := range a.words {
				sb.WriteString(capitalize(w))
			}
		}
	}
	for _, w := range n.words {
		sb.WriteString(capitalize(w))
	}
	return sb.String()
}

// FindCommonParent returns the innermost scope enclosing both names, or
// nil when they share no scope. A name counts as enclosing the other
// when it sits on the other's ancestor chain.
func FindCommonParent(a, b *Name) *Name {
	seen := make(map[*Name]bool)
	for p := a.parent; p != nil; p = p.parent {
		seen[p] = true
	}
	for p := b; p != nil; p = p.parent {
		if seen[p] {
			return p
		}
	}
	return nil
}

// RelativeTo returns the name re-rooted below ancestor, so translators
// qualify it relative to that scope. Names that do not descend from
// ancestor come back unchanged.
func (n *Name) RelativeTo(ancestor *Name) *Name {
	if ancestor == nil {
		return n
	}
	var chain []*Name
	for p := n; p != nil; p = p.parent {
		if p == ancestor {
			var rebuilt *Name
			for i := len(chain) - 1; i >= 0; i-- {
				rebuilt = &Name{kind: chain[i].kind, words: chain[i].words, parent: rebuilt}
			}
			if rebuilt == nil {
				return n
			}
			return rebuilt
		}
		chain = append(chain, p)
	}
	return n
}
