package metaname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
)

func testClass(t *testing.T) *Name {
	t.Helper()
	ns := FromCamelCase(KindNamespace, nil, "Foo")
	return FromCamelCase(KindClass, ns, "BarBaz")
}

func TestCTranslator_ClassSpelling(t *testing.T) {
	class := testClass(t)
	tr := CTranslator{}

	assert.Equal(t, "BarBaz", tr.Translate(class, false))
	assert.Equal(t, "FooBarBaz", tr.Translate(class, true))
}

func TestCTranslator_MethodSpelling(t *testing.T) {
	method := FromCamelCase(KindMethod, testClass(t), "doThing")
	tr := CTranslator{}

	assert.Equal(t, "do_thing", tr.Translate(method, false))
	assert.Equal(t, "foo_bar_baz_do_thing", tr.Translate(method, true))
}

func TestCppTranslator_Spelling(t *testing.T) {
	class := testClass(t)
	method := FromCamelCase(KindMethod, class, "doThing")
	tr := CppTranslator{}

	assert.Equal(t, "BarBaz", tr.Translate(class, false))
	assert.Equal(t, "foo::BarBaz", tr.Translate(class, true))
	assert.Equal(t, "doThing", tr.Translate(method, false))
	assert.Equal(t, "foo::BarBaz::doThing", tr.Translate(method, true))
}

func TestCppTranslator_EnumeratorSpelling(t *testing.T) {
	ns := FromCamelCase(KindNamespace, nil, "Foo")
	enum := FromCamelCase(KindEnum, ns, "Status")
	val := FromCamelCase(KindEnumerator, enum, "Idle")
	tr := CppTranslator{}

	assert.Equal(t, "Idle", tr.Translate(val, false))
	assert.Equal(t, "foo::Status::Idle", tr.Translate(val, true))
}

func TestTranslate_DeterministicAndIdempotent(t *testing.T) {
	class := testClass(t)
	for _, lang := range Languages() {
		tr, err := ByLanguage(lang)
		require.NoError(t, err)
		first := tr.Translate(class, false)
		second := tr.Translate(class, false)
		assert.Equal(t, first, second, "language %s", lang)

		firstFull := tr.Translate(class, true)
		secondFull := tr.Translate(class, true)
		assert.Equal(t, firstFull, secondFull, "language %s", lang)
	}
}

func TestByLanguage_UnsupportedIsConfigError(t *testing.T) {
	_, err := ByLanguage(Language("Java"))
	require.Error(t, err)
	assert.True(t, apierrors.IsCategory(err, apierrors.CategoryConfig))
}
