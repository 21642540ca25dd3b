package sphinx

import (
	"github.com/JonathanLv/linphone/internal/abstractapi"
	"github.com/JonathanLv/linphone/internal/metadoc"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// translationSet bundles the three translators a page builder needs for
// one target language. Selection happens once per page construction; an
// unsupported language surfaces here as a configuration error, before
// anything is written.
type translationSet struct {
	names metaname.Translator
	lang  abstractapi.LangTranslator
	docs  *metadoc.RstTranslator
}

func newTranslationSet(language metaname.Language) (*translationSet, error) {
	names, err := metaname.ByLanguage(language)
	if err != nil {
		return nil, err
	}
	lang, err := abstractapi.NewLangTranslator(language)
	if err != nil {
		return nil, err
	}
	docs, err := metadoc.NewRstTranslator(language)
	if err != nil {
		return nil, err
	}
	return &translationSet{names: names, lang: lang, docs: docs}, nil
}

// ClassnameToFilename derives the page filename for a class: the
// lowercase snake form of its fully-qualified name plus the reST
// extension. The index page uses the same derivation for its entries so
// cross-links always resolve.
func ClassnameToFilename(name *metaname.Name) string {
	return name.ToSnakeCase(true) + ".rst"
}
