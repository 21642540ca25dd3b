package doxygen

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
)

const classXML = `<?xml version="1.0" encoding="UTF-8"?>
<doxygen version="1.8.17">
  <compounddef kind="class">
    <compoundname>Foo::BarBaz</compoundname>
    <briefdescription>
      <para>A bar baz.</para>
    </briefdescription>
    <sectiondef kind="public-func">
      <memberdef kind="function" static="no">
        <type>void</type>
        <name>doThing</name>
      </memberdef>
      <memberdef kind="function" static="yes">
        <type>Foo::BarBaz *</type>
        <name>create</name>
        <param><type>const char *</type><declname>name</declname></param>
      </memberdef>
    </sectiondef>
  </compounddef>
</doxygen>`

const namespaceXML = `<?xml version="1.0" encoding="UTF-8"?>
<doxygen version="1.8.17">
  <compounddef kind="namespace">
    <compoundname>Foo</compoundname>
    <sectiondef kind="enum">
      <memberdef kind="enum">
        <name>Status</name>
        <briefdescription><para>Processing status.</para></briefdescription>
        <enumvalue><name>A</name></enumvalue>
        <enumvalue><name>B</name></enumvalue>
        <enumvalue><name>C</name><initializer>= 10</initializer></enumvalue>
      </memberdef>
    </sectiondef>
  </compounddef>
</doxygen>`

func writeXMLDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoad_CollectsCompoundsInLexicalFileOrder(t *testing.T) {
	dir := writeXMLDir(t, map[string]string{
		"a_class.xml":     classXML,
		"b_namespace.xml": namespaceXML,
	})

	project, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, project.Compounds, 2)
	assert.Equal(t, "Foo::BarBaz", project.Compounds[0].Name)
	assert.Equal(t, "Foo", project.Compounds[1].Name)
}

func TestLoad_IgnoresNonCompoundFiles(t *testing.T) {
	dir := writeXMLDir(t, map[string]string{
		"index.xml": `<?xml version="1.0"?><doxygenindex><compound refid="x" kind="class"><name>Foo</name></compound></doxygenindex>`,
		"class.xml": classXML,
		"notes.txt": "not xml",
	})

	project, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, project.Compounds, 1)
	assert.Equal(t, "Foo::BarBaz", project.Compounds[0].Name)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestCompound_MembersFlattenSections(t *testing.T) {
	dir := writeXMLDir(t, map[string]string{"class.xml": classXML})
	project, err := Load(dir)
	require.NoError(t, err)

	members := project.Compounds[0].Members()
	require.Len(t, members, 2)
	assert.Equal(t, "doThing", members[0].Name)
	assert.False(t, members[0].IsStatic())
	assert.Equal(t, "create", members[1].Name)
	assert.True(t, members[1].IsStatic())
}

func TestEnumValue_ValueStripsInitializerEquals(t *testing.T) {
	v := &EnumValue{Initializer: " = 10"}
	assert.Equal(t, "10", v.Value())

	auto := &EnumValue{}
	assert.Equal(t, "", auto.Value())
}

func TestCheck_AcceptsWellFormedInput(t *testing.T) {
	dir := writeXMLDir(t, map[string]string{"a.xml": classXML, "b.xml": namespaceXML})
	project, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, project.Check())
}

func TestCheck_RejectsDuplicateCompoundNames(t *testing.T) {
	project := &Project{Compounds: []*Compound{
		{Kind: CompoundClass, Name: "Foo::BarBaz"},
		{Kind: CompoundClass, Name: "Foo::BarBaz"},
	}}
	err := project.Check()
	require.Error(t, err)
	assert.True(t, apierrors.IsCategory(err, apierrors.CategoryInput))
}

func TestCheck_RejectsEnumWithoutEnumerators(t *testing.T) {
	project := &Project{Compounds: []*Compound{
		{
			Kind: CompoundNamespace,
			Name: "Foo",
			Sections: []*Section{
				{Members: []*Member{{Kind: MemberEnum, Name: "Status"}}},
			},
		},
	}}
	err := project.Check()
	require.Error(t, err)
	assert.True(t, apierrors.IsCategory(err, apierrors.CategoryInput))
}

func TestCheck_RejectsUnnamedCompound(t *testing.T) {
	project := &Project{Compounds: []*Compound{{Kind: CompoundClass}}}
	err := project.Check()
	require.Error(t, err)
	assert.True(t, apierrors.IsCategory(err, apierrors.CategoryInput))
}

func TestElement_MixedContentKeepsTextAndTail(t *testing.T) {
	raw := `<briefdescription><para>Uses <ref>Foo::Status</ref> internally. <simplesect kind="see"><para>See also.</para></simplesect></para></briefdescription>`

	var elem Element
	require.NoError(t, xml.Unmarshal([]byte(raw), &elem))

	paras := elem.FindAll("para")
	require.Len(t, paras, 1)
	para := paras[0]
	assert.Equal(t, "Uses ", para.Text)

	require.Len(t, para.Children, 2)
	ref := para.Children[0]
	assert.Equal(t, "ref", ref.Tag)
	assert.Equal(t, "Foo::Status", ref.Text)
	assert.Equal(t, " internally. ", ref.Tail)

	sect := para.Children[1]
	assert.Equal(t, "simplesect", sect.Tag)
	assert.Equal(t, "see", sect.Attr("kind"))
	require.NotNil(t, sect.Find("para"))
	assert.Equal(t, "See also.", sect.Find("para").Text)
}
