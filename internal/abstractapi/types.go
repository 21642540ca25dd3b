package abstractapi

import "strings"

// Type is the abstract form of a return or parameter type.
type Type interface {
	typ()
}

// BaseKind enumerates the abstract base types the model distinguishes.
type BaseKind int

const (
	BaseVoid BaseKind = iota
	BaseBool
	BaseInt
	BaseFloat
	BaseString
	BaseUnknown
)

// BaseType is a primitive type. Raw keeps the source spelling for kinds
// the model does not map, so nothing is lost in translation.
type BaseType struct {
	Kind BaseKind
	Raw  string
}

func (BaseType) typ() {}

// ClassType refers to an API class.
type ClassType struct {
	Class *Class
}

func (ClassType) typ() {}

// EnumType refers to an API enum.
type EnumType struct {
	Enum *Enum
}

func (EnumType) typ() {}

var baseTypes = map[string]BaseKind{
	"void":                BaseVoid,
	"bool":                BaseBool,
	"bool_t":              BaseBool,
	"int":                 BaseInt,
	"unsigned int":        BaseInt,
	"long":                BaseInt,
	"size_t":              BaseInt,
	"uint8_t":             BaseInt,
	"uint16_t":            BaseInt,
	"uint32_t":            BaseInt,
	"uint64_t":            BaseInt,
	"int8_t":              BaseInt,
	"int16_t":             BaseInt,
	"int32_t":             BaseInt,
	"int64_t":             BaseInt,
	"float":               BaseFloat,
	"double":              BaseFloat,
	"char *":              BaseString,
	"const char *":        BaseString,
	"string":              BaseString,
	"std::string":         BaseString,
	"const std::string":   BaseString,
	"const std::string &": BaseString,
}

// parseType maps a raw type spelling onto the abstract type model. Class
// and enum spellings resolve against the project indices; everything the
// model does not know collapses into an unknown base type carrying the
// source spelling.
func (p *Project) parseType(raw string) Type {
	text := strings.TrimSpace(raw)
	if text == "" {
		return BaseType{Kind: BaseVoid}
	}
	if kind, ok := baseTypes[text]; ok {
		return BaseType{Kind: kind, Raw: text}
	}

	bare := strings.TrimSpace(strings.TrimPrefix(text, "const "))
	bare = strings.TrimSpace(strings.TrimRight(bare, "*& "))
	if obj, ok := p.types[bare]; ok {
		switch v := obj.(type) {
		case *Class:
			return ClassType{Class: v}
		case *Enum:
			return EnumType{Enum: v}
		}
	}
	if kind, ok := baseTypes[bare]; ok {
		return BaseType{Kind: kind, Raw: bare}
	}
	return BaseType{Kind: BaseUnknown, Raw: text}
}
