package metadoc

import (
	"fmt"
	"strings"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// Text is wrapped at this width, preserving leading tab indentation.
const textWidth = 80

// Translator converts a resolved description into one target markup
// dialect. The returned text is the wrapped lines joined with newlines.
type Translator interface {
	TranslateDescription(desc *Description) (string, error)
}

// dialect supplies the pieces that differ between markup dialects.
type dialect interface {
	reference(ref *Reference) (string, error)
	section(s *Section) (string, error)
	tagAsBrief(lines []string) []string
}

// RstTranslator renders descriptions as Sphinx reStructuredText, using
// the C or C++ Sphinx domain. Cross-references render with the target
// language's spelling, which is where the documentation translator
// composes with the name translator.
type RstTranslator struct {
	names       metaname.Translator
	domain      string
	scope       *metaname.Name
	declarators map[metaname.Kind]string
	referencers map[metaname.Kind]string
}

// ScopeTo shortens reference labels relative to name, typically the
// namespace a page declares with its namespace directive. Link targets
// stay fully qualified so they resolve from anywhere.
func (t *RstTranslator) ScopeTo(name *metaname.Name) {
	t.scope = name
}

// NewRstTranslator returns the reStructuredText translator for lang, or a
// configuration error for an unsupported language.
func NewRstTranslator(lang metaname.Language) (*RstTranslator, error) {
	names, err := metaname.ByLanguage(lang)
	if err != nil {
		return nil, err
	}
	switch lang {
	case metaname.LangC:
		return &RstTranslator{
			names:  names,
			domain: "c",
			declarators: map[metaname.Kind]string{
				metaname.KindClass:      "type",
				metaname.KindEnum:       "type",
				metaname.KindEnumerator: "var",
				metaname.KindMethod:     "function",
			},
			referencers: map[metaname.Kind]string{
				metaname.KindEnumerator: "data",
				metaname.KindMethod:     "func",
			},
		}, nil
	case metaname.LangCpp:
		return &RstTranslator{
			names:  names,
			domain: "cpp",
			declarators: map[metaname.Kind]string{
				metaname.KindClass:      "class",
				metaname.KindEnum:       "enum",
				metaname.KindEnumerator: "enumerator",
				metaname.KindMethod:     "function",
				metaname.KindNamespace:  "namespace",
			},
			referencers: map[metaname.Kind]string{
				metaname.KindMethod: "func",
			},
		}, nil
	default:
		return nil, apierrors.Configf("unsupported language %q", string(lang))
	}
}

// Declarator returns the Sphinx directive for declaring an entity of the
// given kind, such as "c:type" or "cpp:function". Kinds the domain cannot
// declare are a configuration error.
func (t *RstTranslator) Declarator(kind metaname.Kind) (string, error) {
	d, ok := t.declarators[kind]
	if !ok {
		return "", apierrors.Configf("%q declarator not supported in the %s domain", kind.String(), t.domain)
	}
	return t.domain + ":" + d, nil
}

// Referencer returns the Sphinx role for referencing an entity of the
// given kind. Kinds without a dedicated role fall back to the declarator.
func (t *RstTranslator) Referencer(kind metaname.Kind) (string, error) {
	if r, ok := t.referencers[kind]; ok {
		return t.domain + ":" + r, nil
	}
	return t.Declarator(kind)
}

// TranslateDescription renders the description as wrapped reST lines.
func (t *RstTranslator) TranslateDescription(desc *Description) (string, error) {
	return translateDescription(desc, t)
}

func (t *RstTranslator) reference(ref *Reference) (string, error) {
	obj := ref.Object()
	if obj == nil {
		return "", apierrors.Inputf("reference %q has not been resolved", ref.Target)
	}
	name := obj.RefTarget()
	role, err := t.Referencer(name.Kind())
	if err != nil {
		return "", err
	}
	target := t.names.Translate(name, true)
	label := target
	if t.scope != nil {
		if common := metaname.FindCommonParent(name, t.scope); common != nil {
			label = t.names.Translate(name.RelativeTo(common), true)
		}
	}
	if ref.Function {
		label += "()"
	}
	return fmt.Sprintf(":%s:`%s <%s>`", role, label, target), nil
}

func (t *RstTranslator) section(s *Section) (string, error) {
	body, err := translateParagraph(s.Paragraph, t)
	if err != nil {
		return "", err
	}
	kind := s.Kind
	if kind == "see" {
		kind = "seealso"
	}
	return fmt.Sprintf(".. %s::\n\t\n\t%s", kind, body), nil
}

func (t *RstTranslator) tagAsBrief(lines []string) []string {
	return lines
}

// DoxygenTranslator renders descriptions as Doxygen comment markup:
// briefs are tagged "@brief", type references become "#Name", function
// references "name()", and simple sections "@kind ...".
type DoxygenTranslator struct {
	names metaname.Translator
}

// NewDoxygenTranslator returns the Doxygen-comment translator for lang.
func NewDoxygenTranslator(lang metaname.Language) (*DoxygenTranslator, error) {
	names, err := metaname.ByLanguage(lang)
	if err != nil {
		return nil, err
	}
	return &DoxygenTranslator{names: names}, nil
}

// TranslateDescription renders the description as wrapped Doxygen lines.
func (t *DoxygenTranslator) TranslateDescription(desc *Description) (string, error) {
	return translateDescription(desc, t)
}

func (t *DoxygenTranslator) reference(ref *Reference) (string, error) {
	obj := ref.Object()
	if obj == nil {
		return "", apierrors.Inputf("reference %q has not been resolved", ref.Target)
	}
	full := t.names.Translate(obj.RefTarget(), true)
	if ref.Function {
		return full + "()", nil
	}
	return "#" + full, nil
}

func (t *DoxygenTranslator) section(s *Section) (string, error) {
	body, err := translateParagraph(s.Paragraph, t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("@%s %s", s.Kind, body), nil
}

func (t *DoxygenTranslator) tagAsBrief(lines []string) []string {
	if len(lines) > 0 {
		lines[0] = "@brief " + lines[0]
	}
	return lines
}

func translateDescription(desc *Description, dl dialect) (string, error) {
	if desc.IsEmpty() {
		return "", nil
	}
	var paras []string
	for _, para := range desc.Paragraphs {
		s, err := translateParagraph(para, dl)
		if err != nil {
			return "", err
		}
		paras = append(paras, s)
	}
	lines := paragraphsToLines(paras)
	lines = dl.tagAsBrief(lines)
	lines = cropText(lines, textWidth)
	return strings.Join(lines, "\n"), nil
}

func translateParagraph(para *Paragraph, dl dialect) (string, error) {
	if para == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, part := range para.Parts {
		switch v := part.(type) {
		case Text:
			sb.WriteString(collapseSpace(string(v)))
		case *Reference:
			s, err := dl.reference(v)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		case *Section:
			s, err := dl.section(v)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// collapseSpace folds whitespace runs, which XML pretty-printing inserts
// freely, into single spaces while keeping word boundaries around
// neighboring parts intact.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\n\r") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\n\r") != s {
		out += " "
	}
	return out
}

func paragraphsToLines(paragraphs []string) []string {
	var lines []string
	for i, para := range paragraphs {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(para, "\n")...)
	}
	return lines
}

func cropText(in []string, width int) []string {
	var out []string
	for _, line := range in {
		out = append(out, splitLine(line, width)...)
	}
	return out
}

// splitLine wraps one line at word boundaries, re-applying the line's
// leading tab indentation to every produced line.
func splitLine(line string, width int) []string {
	tabCount := 0
	for tabCount < len(line) && line[tabCount] == '\t' {
		tabCount++
	}
	prefix := line[:tabCount]
	line = line[tabCount:]

	var lines []string
	for len(line) > width {
		cut := strings.LastIndex(line[:width], " ")
		if cut != -1 {
			lines = append(lines, line[:cut])
			line = line[cut+1:]
		} else {
			lines = append(lines, line[:width])
			line = line[width:]
		}
	}
	lines = append(lines, line)

	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return lines
}
