package sphinx

import (
	"github.com/JonathanLv/linphone/internal/abstractapi"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// EnumsFilename is the single per-language page aggregating every enum.
const EnumsFilename = "enums.rst"

// EnumsPage holds the rendered strings for the enums page. Enums and
// their enumerators keep source declaration order.
type EnumsPage struct {
	Filename string
	Chapter  string

	EnumDeclarator       string
	EnumeratorDeclarator string

	Enums []EnumView
}

// EnumView is one translated enum with its ordered enumerators.
type EnumView struct {
	Name        string
	FullName    string
	SectionName string
	Brief       string
	Enumerators []EnumeratorView
}

// EnumeratorView is one translated enum member. Value is empty when the
// target language leaves auto-assigned values implicit.
type EnumeratorView struct {
	Name  string
	Brief string
	Value string
}

// NewEnumsPage translates every enum of the project for one target
// language.
func NewEnumsPage(enums []*abstractapi.Enum, language metaname.Language) (*EnumsPage, error) {
	ts, err := newTranslationSet(language)
	if err != nil {
		return nil, err
	}
	enumDecl, err := ts.docs.Declarator(metaname.KindEnum)
	if err != nil {
		return nil, err
	}
	enumeratorDecl, err := ts.docs.Declarator(metaname.KindEnumerator)
	if err != nil {
		return nil, err
	}

	page := &EnumsPage{
		Filename:             EnumsFilename,
		Chapter:              MakeChapter("Enumerations"),
		EnumDeclarator:       enumDecl,
		EnumeratorDeclarator: enumeratorDecl,
	}
	for _, enum := range enums {
		view, err := translateEnum(ts, enum)
		if err != nil {
			return nil, err
		}
		page.Enums = append(page.Enums, view)
	}
	return page, nil
}

func translateEnum(ts *translationSet, enum *abstractapi.Enum) (EnumView, error) {
	brief, err := ts.docs.TranslateDescription(enum.Brief)
	if err != nil {
		return EnumView{}, err
	}
	view := EnumView{
		Name:     ts.names.Translate(enum.Name, false),
		FullName: ts.names.Translate(enum.Name, true),
		Brief:    brief,
	}
	view.SectionName = MakeSection(view.Name)
	for _, enumerator := range enum.Enumerators {
		vbrief, err := ts.docs.TranslateDescription(enumerator.Brief)
		if err != nil {
			return EnumView{}, err
		}
		view.Enumerators = append(view.Enumerators, EnumeratorView{
			Name:  ts.names.Translate(enumerator.Name, false),
			Brief: vbrief,
			Value: ts.lang.TranslateValue(enumerator),
		})
	}
	return view, nil
}
