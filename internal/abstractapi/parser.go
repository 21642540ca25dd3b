package abstractapi

import (
	"log/slog"
	"strings"

	"github.com/JonathanLv/linphone/internal/doxygen"
	apierrors "github.com/JonathanLv/linphone/internal/errors"
	"github.com/JonathanLv/linphone/internal/metadoc"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// Parse builds the abstract API model from the raw doxygen tree.
//
// Compound names are qualified with "::" ("Foo::BarBaz"); every leading
// segment becomes a namespace. The build runs in two passes: the first
// registers all classes and enums so that the second can resolve method
// return and parameter types against them. Declaration order is preserved
// throughout.
func Parse(raw *doxygen.Project) (*Project, error) {
	p := &Project{
		types:      make(map[string]metadoc.Referenceable),
		functions:  make(map[string]metadoc.Referenceable),
		namespaces: make(map[string]*Namespace),
	}

	// First pass: namespaces, classes, enums.
	for _, compound := range raw.Compounds {
		switch compound.Kind {
		case doxygen.CompoundNamespace:
			ns := p.namespace(compound.Name)
			ns.Brief = metadoc.ParseDescription(compound.Brief)
			if err := p.parseEnums(compound, compound.Name, ns.Name, ns); err != nil {
				return nil, err
			}
		case doxygen.CompoundClass, doxygen.CompoundStruct:
			scope, local := splitQualified(compound.Name)
			ns := p.namespace(scope)
			class := &Class{
				Name:      metaname.FromCamelCase(metaname.KindClass, nsName(ns), local),
				Brief:     metadoc.ParseDescription(compound.Brief),
				Namespace: ns,
			}
			p.Classes = append(p.Classes, class)
			if err := p.registerType(compound.Name, class); err != nil {
				return nil, err
			}
			if err := p.parseEnums(compound, compound.Name, class.Name, ns); err != nil {
				return nil, err
			}
		default:
			slog.Debug("Skipping compound of unhandled kind", "kind", compound.Kind, "name", compound.Name)
		}
	}

	// Second pass: methods, now that every type spelling is known.
	for _, compound := range raw.Compounds {
		if compound.Kind != doxygen.CompoundClass && compound.Kind != doxygen.CompoundStruct {
			continue
		}
		class := p.types[compound.Name].(*Class)
		for _, member := range compound.Members() {
			if member.Kind != doxygen.MemberFunction {
				continue
			}
			method := &Method{
				Name:       metaname.FromCamelCase(metaname.KindMethod, class.Name, member.Name),
				Brief:      metadoc.ParseDescription(member.Brief),
				Class:      class,
				Static:     member.IsStatic(),
				ReturnType: p.parseType(member.Type),
			}
			for _, param := range member.Params {
				method.Args = append(method.Args, &Arg{Name: param.Name, Type: p.parseType(param.Type)})
			}
			if method.Static {
				class.ClassMethods = append(class.ClassMethods, method)
			} else {
				class.InstanceMethods = append(class.InstanceMethods, method)
			}
			p.functions[compound.Name+"::"+member.Name] = method
		}
	}

	return p, nil
}

// registerType indexes a class or enum under its qualified source name.
// Compound names are already unique, but an enum declared in a scope can
// still collide with a class of the same qualified name; such input is
// rejected here rather than letting one entry shadow the other.
func (p *Project) registerType(name string, obj metadoc.Referenceable) error {
	if _, exists := p.types[name]; exists {
		return apierrors.Inputf("duplicate qualified name %q", name)
	}
	p.types[name] = obj
	return nil
}

// parseEnums collects the enum members of a compound. scope is the
// compound's qualified source name, owner the abstract name enclosing the
// enums (class or namespace).
func (p *Project) parseEnums(compound *doxygen.Compound, scope string, owner *metaname.Name, ns *Namespace) error {
	for _, member := range compound.Members() {
		if member.Kind != doxygen.MemberEnum {
			continue
		}
		enum := &Enum{
			Name:      metaname.FromCamelCase(metaname.KindEnum, owner, member.Name),
			Brief:     metadoc.ParseDescription(member.Brief),
			Namespace: ns,
		}
		for i, value := range member.EnumValues {
			enum.Enumerators = append(enum.Enumerators, &Enumerator{
				Name:  metaname.FromCamelCase(metaname.KindEnumerator, enum.Name, value.Name),
				Brief: metadoc.ParseDescription(value.Brief),
				Enum:  enum,
				Value: value.Value(),
				Index: i,
			})
		}
		p.Enums = append(p.Enums, enum)
		if err := p.registerType(scope+"::"+member.Name, enum); err != nil {
			return err
		}
	}
	return nil
}

// namespace returns the Namespace node for a qualified scope such as
// "Foo::Bar", creating the chain on first use. The empty scope is the
// global namespace, represented as nil.
func (p *Project) namespace(scope string) *Namespace {
	if scope == "" {
		return nil
	}
	if ns, ok := p.namespaces[scope]; ok {
		return ns
	}
	parentScope, local := splitQualified(scope)
	parent := p.namespace(parentScope)
	ns := &Namespace{
		Name:   metaname.FromCamelCase(metaname.KindNamespace, nsName(parent), local),
		Parent: parent,
	}
	p.namespaces[scope] = ns
	return ns
}

func nsName(ns *Namespace) *metaname.Name {
	if ns == nil {
		return nil
	}
	return ns.Name
}

func splitQualified(name string) (scope, local string) {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[:i], name[i+2:]
	}
	return "", name
}
