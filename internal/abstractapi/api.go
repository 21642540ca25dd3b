// Package abstractapi holds the language-neutral model of the parsed C
// API: namespaces, classes, enums, methods, and their documentation. The
// model is built once from the raw doxygen tree and is read-only
// afterward; page builders hold only translated copies, never references
// back into this tree.
package abstractapi

import (
	"slices"

	"github.com/JonathanLv/linphone/internal/metadoc"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// Namespace is an enclosing scope. Namespaces form a chain from the
// outermost scope down to the one a class or enum is declared in.
type Namespace struct {
	Name   *metaname.Name
	Brief  *metadoc.Description
	Parent *Namespace
}

// RefTarget implements metadoc.Referenceable.
func (n *Namespace) RefTarget() *metaname.Name { return n.Name }

// Class is one API class with its methods split by dispatch kind.
type Class struct {
	Name            *metaname.Name
	Brief           *metadoc.Description
	Namespace       *Namespace
	InstanceMethods []*Method
	ClassMethods    []*Method
}

// RefTarget implements metadoc.Referenceable.
func (c *Class) RefTarget() *metaname.Name { return c.Name }

// Method is one class or instance method.
type Method struct {
	Name       *metaname.Name
	Brief      *metadoc.Description
	Class      *Class
	Static     bool
	ReturnType Type
	Args       []*Arg
}

// RefTarget implements metadoc.Referenceable.
func (m *Method) RefTarget() *metaname.Name { return m.Name }

// Arg is one method parameter.
type Arg struct {
	Name string
	Type Type
}

// Enum is one API enumeration. Enumerators keep declaration order.
type Enum struct {
	Name        *metaname.Name
	Brief       *metadoc.Description
	Namespace   *Namespace
	Enumerators []*Enumerator
}

// RefTarget implements metadoc.Referenceable.
func (e *Enum) RefTarget() *metaname.Name { return e.Name }

// Enumerator is one enum member. Value is the explicit initializer
// literal, or "" when the value is auto-assigned; Index is the member's
// zero-based declaration position.
type Enumerator struct {
	Name  *metaname.Name
	Brief *metadoc.Description
	Enum  *Enum
	Value string
	Index int
}

// RefTarget implements metadoc.Referenceable.
func (e *Enumerator) RefTarget() *metaname.Name { return e.Name }

// Project is the abstract API model. Classes and Enums keep the
// declaration order of the source; the indices are keyed by the source
// spelling ("Foo::BarBaz", "Foo::BarBaz::doThing") and serve
// documentation cross-reference resolution.
type Project struct {
	Classes []*Class
	Enums   []*Enum

	types      map[string]metadoc.Referenceable
	functions  map[string]metadoc.Referenceable
	namespaces map[string]*Namespace
}

// ResolveType implements metadoc.Resolver for class and enum references.
func (p *Project) ResolveType(target string) (metadoc.Referenceable, bool) {
	obj, ok := p.types[target]
	return obj, ok
}

// ResolveFunction implements metadoc.Resolver for method references.
func (p *Project) ResolveFunction(target string) (metadoc.Referenceable, bool) {
	obj, ok := p.functions[target]
	return obj, ok
}

// Check resolves every documentation cross-reference in the model. A
// reference pointing at an entity the project does not know is an
// input-consistency error, reported before any output is written.
func (p *Project) Check() error {
	scopes := make([]string, 0, len(p.namespaces))
	for scope := range p.namespaces {
		scopes = append(scopes, scope)
	}
	slices.Sort(scopes)
	for _, scope := range scopes {
		if err := p.namespaces[scope].Brief.ResolveReferences(p); err != nil {
			return err
		}
	}
	for _, class := range p.Classes {
		if err := class.Brief.ResolveReferences(p); err != nil {
			return err
		}
		for _, m := range append(append([]*Method{}, class.InstanceMethods...), class.ClassMethods...) {
			if err := m.Brief.ResolveReferences(p); err != nil {
				return err
			}
		}
	}
	for _, enum := range p.Enums {
		if err := enum.Brief.ResolveReferences(p); err != nil {
			return err
		}
		for _, v := range enum.Enumerators {
			if err := v.Brief.ResolveReferences(p); err != nil {
				return err
			}
		}
	}
	return nil
}
