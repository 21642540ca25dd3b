package abstractapi

import (
	"strconv"
	"strings"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// LangTranslator renders language-specific declarations from the abstract
// model: full method prototypes and enumerator value text. The caller
// decides which method list to translate; the translator only follows the
// Static flag for the calling convention.
type LangTranslator interface {
	TranslateAsPrototype(m *Method) string
	TranslateValue(e *Enumerator) string
}

// NewLangTranslator returns the declaration translator for lang, or a
// configuration error for an unsupported language.
func NewLangTranslator(lang metaname.Language) (LangTranslator, error) {
	switch lang {
	case metaname.LangC:
		return CLangTranslator{}, nil
	case metaname.LangCpp:
		return CppLangTranslator{}, nil
	default:
		return nil, apierrors.Configf("unsupported language %q", string(lang))
	}
}

// CLangTranslator renders C declarations. Instance methods take a pointer
// to the owning type as first parameter; class methods do not, and render
// "(void)" when they have no parameters at all.
type CLangTranslator struct{}

func (t CLangTranslator) TranslateAsPrototype(m *Method) string {
	names := metaname.CTranslator{}
	var params []string
	if !m.Static {
		// The receiver parameter is named after the owning type.
		params = append(params, t.translateType(ClassType{Class: m.Class})+m.Class.Name.ToSnakeCase(false))
	}
	for _, arg := range m.Args {
		params = append(params, t.translateType(arg.Type)+arg.Name)
	}
	if len(params) == 0 {
		params = append(params, "void")
	}
	return t.translateType(m.ReturnType) + names.Translate(m.Name, true) + "(" + strings.Join(params, ", ") + ")"
}

func (t CLangTranslator) TranslateValue(e *Enumerator) string {
	if e.Value != "" {
		return e.Value
	}
	return strconv.Itoa(e.Index)
}

// translateType renders a type followed by the separator to its
// declarator, so pointer types come out as "Foo *bar" and value types as
// "int bar".
func (t CLangTranslator) translateType(typ Type) string {
	names := metaname.CTranslator{}
	switch v := typ.(type) {
	case ClassType:
		return names.Translate(v.Class.Name, true) + " *"
	case EnumType:
		return names.Translate(v.Enum.Name, true) + " "
	case BaseType:
		switch v.Kind {
		case BaseVoid:
			return "void "
		case BaseBool:
			return "bool_t "
		case BaseInt:
			return "int "
		case BaseFloat:
			return "float "
		case BaseString:
			return "const char *"
		default:
			return v.Raw + " "
		}
	default:
		return "void "
	}
}

// CppLangTranslator renders C++ declarations: qualified type names,
// lowerCamelCase methods, and a "static" storage class on class methods.
type CppLangTranslator struct{}

func (t CppLangTranslator) TranslateAsPrototype(m *Method) string {
	names := metaname.CppTranslator{}
	var params []string
	for _, arg := range m.Args {
		params = append(params, t.translateType(arg.Type)+arg.Name)
	}
	proto := t.translateType(m.ReturnType) + names.Translate(m.Name, false) + "(" + strings.Join(params, ", ") + ")"
	if m.Static {
		proto = "static " + proto
	}
	return proto
}

// TranslateValue renders the explicit initializer literal; auto-assigned
// values stay implicit in C++ and render as the empty string.
func (t CppLangTranslator) TranslateValue(e *Enumerator) string {
	return e.Value
}

func (t CppLangTranslator) translateType(typ Type) string {
	names := metaname.CppTranslator{}
	switch v := typ.(type) {
	case ClassType:
		return names.Translate(v.Class.Name, true) + " "
	case EnumType:
		return names.Translate(v.Enum.Name, true) + " "
	case BaseType:
		switch v.Kind {
		case BaseVoid:
			return "void "
		case BaseBool:
			return "bool "
		case BaseInt:
			return "int "
		case BaseFloat:
			return "float "
		case BaseString:
			return "std::string "
		default:
			return v.Raw + " "
		}
	default:
		return "void "
	}
}
