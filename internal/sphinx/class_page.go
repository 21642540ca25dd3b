package sphinx

import (
	"github.com/JonathanLv/linphone/internal/abstractapi"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// ClassPage holds the rendered strings for one class's reference page.
// All fields are computed at construction; the boolean flags are eager
// values derived from the method lists, consumed by the template to skip
// empty sections.
type ClassPage struct {
	Filename string

	Chapter       string
	Namespace     string
	ClassName     string
	FullClassName string
	Brief         string

	ClassDeclarator  string
	MethodDeclarator string

	// NamespaceDirective is the rendered namespace declaration for domains
	// that have one (C++); empty otherwise.
	NamespaceDirective string

	HasMethods          bool
	HasClassMethods     bool
	MethodsSection      string
	ClassMethodsSection string
	Methods             []MethodView
	ClassMethods        []MethodView
}

// MethodView is one translated method entry.
type MethodView struct {
	Prototype string
	Brief     string
}

// NewClassPage translates one class for one target language.
func NewClassPage(class *abstractapi.Class, language metaname.Language) (*ClassPage, error) {
	ts, err := newTranslationSet(language)
	if err != nil {
		return nil, err
	}

	// When the domain can declare a namespace, the page opens with the
	// directive and reference labels shorten relative to that scope.
	namespaceDirective := ""
	if class.Namespace != nil {
		if decl, err := ts.docs.Declarator(metaname.KindNamespace); err == nil {
			namespaceDirective = ".. " + decl + ":: " + translateNamespace(ts, class.Namespace)
			ts.docs.ScopeTo(class.Namespace.Name)
		}
	}

	classDecl, err := ts.docs.Declarator(metaname.KindClass)
	if err != nil {
		return nil, err
	}
	methodDecl, err := ts.docs.Declarator(metaname.KindMethod)
	if err != nil {
		return nil, err
	}
	brief, err := ts.docs.TranslateDescription(class.Brief)
	if err != nil {
		return nil, err
	}
	methods, err := translateMethods(ts, class.InstanceMethods)
	if err != nil {
		return nil, err
	}
	classMethods, err := translateMethods(ts, class.ClassMethods)
	if err != nil {
		return nil, err
	}

	page := &ClassPage{
		Filename:            ClassnameToFilename(class.Name),
		Namespace:           translateNamespace(ts, class.Namespace),
		NamespaceDirective:  namespaceDirective,
		ClassName:           ts.names.Translate(class.Name, false),
		FullClassName:       ts.names.Translate(class.Name, true),
		Brief:               brief,
		ClassDeclarator:     classDecl,
		MethodDeclarator:    methodDecl,
		HasMethods:          len(methods) > 0,
		HasClassMethods:     len(classMethods) > 0,
		MethodsSection:      MakeSection("Methods"),
		ClassMethodsSection: MakeSection("Class methods"),
		Methods:             methods,
		ClassMethods:        classMethods,
	}
	page.Chapter = MakeChapter(page.FullClassName)
	return page, nil
}

func translateMethods(ts *translationSet, methods []*abstractapi.Method) ([]MethodView, error) {
	var out []MethodView
	for _, m := range methods {
		brief, err := ts.docs.TranslateDescription(m.Brief)
		if err != nil {
			return nil, err
		}
		out = append(out, MethodView{
			Prototype: ts.lang.TranslateAsPrototype(m),
			Brief:     brief,
		})
	}
	return out, nil
}

func translateNamespace(ts *translationSet, ns *abstractapi.Namespace) string {
	if ns == nil {
		return ""
	}
	return ts.names.Translate(ns.Name, true)
}
