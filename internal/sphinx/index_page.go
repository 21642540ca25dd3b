package sphinx

import (
	"github.com/JonathanLv/linphone/internal/abstractapi"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// IndexFilename is the per-language table-of-contents page.
const IndexFilename = "index.rst"

// IndexPage lists every generated class page for one language.
type IndexPage struct {
	Filename string
	Chapter  string
	Entries  []TocEntry
}

// TocEntry names the file a class page is written to.
type TocEntry struct {
	EntryName string
}

// NewIndexPage creates an empty index for one target language.
func NewIndexPage(language metaname.Language) (*IndexPage, error) {
	// Selecting the translation set validates the language even though the
	// index itself carries no translated names.
	if _, err := newTranslationSet(language); err != nil {
		return nil, err
	}
	return &IndexPage{
		Filename: IndexFilename,
		Chapter:  MakeChapter(string(language) + " API"),
	}, nil
}

// AddClassEntry appends the class's page file to the table of contents,
// using the same filename derivation as the class page itself.
func (p *IndexPage) AddClassEntry(class *abstractapi.Class) {
	p.Entries = append(p.Entries, TocEntry{EntryName: ClassnameToFilename(class.Name)})
}
