package metaname

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
)

// Language selects an output documentation dialect. The supported set is
// fixed; adding a language means adding a constant and a translator, not
// branching further into existing code.
type Language string

const (
	LangC   Language = "C"
	LangCpp Language = "C++"
)

// Languages returns the supported languages in generation order.
func Languages() []Language {
	return []Language{LangC, LangCpp}
}

// Translator renders an abstract identifier in one target language.
// Translation is a pure function of the name and the language rules:
// it never fails and never mutates the name.
type Translator interface {
	// Translate returns the local spelling of the name. With recursive set,
	// enclosing scopes are prefixed per the language's qualification rule.
	Translate(name *Name, recursive bool) string
}

// ByLanguage returns the name translator for lang, or a configuration
// error for an unsupported language.
func ByLanguage(lang Language) (Translator, error) {
	switch lang {
	case LangC:
		return CTranslator{}, nil
	case LangCpp:
		return CppTranslator{}, nil
	default:
		return nil, apierrors.Configf("unsupported language %q", string(lang))
	}
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

func capitalize(word string) string {
	return titleCaser.String(word)
}

// CTranslator spells names the way the C API does: types and enumerators
// are CamelCase with every enclosing scope concatenated as a prefix
// (namespace foo + class BarBaz -> FooBarBaz), functions are snake_case
// with the owning type's words as prefix (foo_bar_baz_do_thing).
type CTranslator struct{}

func (CTranslator) Translate(name *Name, recursive bool) string {
	switch name.Kind() {
	case KindMethod:
		return name.ToSnakeCase(recursive)
	default:
		return name.ToCamelCase(recursive)
	}
}

// CppTranslator spells names the C++ wrapper way: CamelCase types,
// lowerCamelCase methods, lowercase namespaces, with enclosing scopes
// joined by "::" when a qualified spelling is requested.
type CppTranslator struct{}

func (CppTranslator) Translate(name *Name, recursive bool) string {
	local := cppLocal(name)
	if !recursive {
		return local
	}
	qualified := ""
	for _, a := range name.Ancestors() {
		qualified += cppLocal(a) + "::"
	}
	return qualified + local
}

func cppLocal(name *Name) string {
	switch name.Kind() {
	case KindNamespace:
		return name.ToSnakeCase(false)
	case KindMethod:
		return lowerCamel(name)
	default:
		return name.ToCamelCase(false)
	}
}

func lowerCamel(name *Name) string {
	out := ""
	for i, w := range name.Words() {
		if i == 0 {
			out += w
		} else {
			out += capitalize(w)
		}
	}
	return out
}
