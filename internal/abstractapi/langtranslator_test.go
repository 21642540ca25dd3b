package abstractapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
	"github.com/JonathanLv/linphone/internal/metaname"
)

func testParsedProject(t *testing.T) *Project {
	t.Helper()
	project, err := Parse(testRawProject(t))
	require.NoError(t, err)
	return project
}

func TestCLang_InstanceMethodPrototype(t *testing.T) {
	project := testParsedProject(t)
	method := project.Classes[0].InstanceMethods[0]

	proto := CLangTranslator{}.TranslateAsPrototype(method)
	assert.Equal(t, "void foo_bar_baz_do_thing(FooBarBaz *bar_baz)", proto)
}

func TestCLang_ClassMethodPrototype(t *testing.T) {
	project := testParsedProject(t)
	method := project.Classes[0].ClassMethods[0]

	proto := CLangTranslator{}.TranslateAsPrototype(method)
	assert.Equal(t, "FooBarBaz *foo_bar_baz_create(const char *name)", proto)
}

func TestCLang_ClassMethodWithoutParamsRendersVoid(t *testing.T) {
	project := testParsedProject(t)
	class := project.Classes[0]
	method := &Method{
		Name:       metaname.FromCamelCase(metaname.KindMethod, class.Name, "reset"),
		Class:      class,
		Static:     true,
		ReturnType: BaseType{Kind: BaseVoid},
	}

	proto := CLangTranslator{}.TranslateAsPrototype(method)
	assert.Equal(t, "void foo_bar_baz_reset(void)", proto)
}

func TestCppLang_Prototypes(t *testing.T) {
	project := testParsedProject(t)
	class := project.Classes[0]

	proto := CppLangTranslator{}.TranslateAsPrototype(class.InstanceMethods[0])
	assert.Equal(t, "void doThing()", proto)

	proto = CppLangTranslator{}.TranslateAsPrototype(class.ClassMethods[0])
	assert.Equal(t, "static foo::BarBaz create(std::string name)", proto)
}

func TestTranslateValue_ExplicitAndAuto(t *testing.T) {
	project := testParsedProject(t)
	enumerators := project.Enums[0].Enumerators

	c := CLangTranslator{}
	assert.Equal(t, "0", c.TranslateValue(enumerators[0]))
	assert.Equal(t, "1", c.TranslateValue(enumerators[1]))
	assert.Equal(t, "10", c.TranslateValue(enumerators[2]))

	cpp := CppLangTranslator{}
	assert.Equal(t, "", cpp.TranslateValue(enumerators[0]))
	assert.Equal(t, "10", cpp.TranslateValue(enumerators[2]))
}

func TestNewLangTranslator_UnsupportedLanguage(t *testing.T) {
	_, err := NewLangTranslator(metaname.Language("Java"))
	require.Error(t, err)
	assert.True(t, apierrors.IsCategory(err, apierrors.CategoryConfig))

	for _, lang := range metaname.Languages() {
		tr, err := NewLangTranslator(lang)
		require.NoError(t, err)
		require.NotNil(t, tr)
	}
}

func TestParseType_Fallbacks(t *testing.T) {
	project := testParsedProject(t)

	typ := project.parseType("")
	assert.Equal(t, BaseType{Kind: BaseVoid}, typ)

	typ = project.parseType("some_opaque_t *")
	base, ok := typ.(BaseType)
	require.True(t, ok)
	assert.Equal(t, BaseUnknown, base.Kind)
	assert.Equal(t, "some_opaque_t *", base.Raw)

	typ = project.parseType("const Foo::Status &")
	enumType, ok := typ.(EnumType)
	require.True(t, ok)
	assert.Same(t, project.Enums[0], enumType.Enum)
}
