package sphinx

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JonathanLv/linphone/internal/abstractapi"
	apierrors "github.com/JonathanLv/linphone/internal/errors"
	"github.com/JonathanLv/linphone/internal/metaname"
)

// DocGenerator iterates target languages and abstract entities, building
// and writing every page. Generation is strictly sequential: language
// loop, enums page, class loop, index page.
type DocGenerator struct {
	project   *abstractapi.Project
	languages []metaname.Language
}

// NewDocGenerator creates a generator over the fixed supported language
// set.
func NewDocGenerator(project *abstractapi.Project) *DocGenerator {
	return &DocGenerator{project: project, languages: metaname.Languages()}
}

// Generate writes all pages under outputDir, one subdirectory per
// language. The first error aborts the run; partially written output is
// left in place.
func (g *DocGenerator) Generate(outputDir string) error {
	for _, language := range g.languages {
		if err := g.generateLanguage(outputDir, language); err != nil {
			return err
		}
	}
	return nil
}

func (g *DocGenerator) generateLanguage(outputDir string, language metaname.Language) error {
	subdir, err := languageSubdir(language)
	if err != nil {
		return err
	}
	dir := filepath.Join(outputDir, subdir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return apierrors.Wrap(err, apierrors.CategoryFilesystem, "create output directory "+dir)
	}
	slog.Info("Generating pages", "language", string(language), "dir", dir)

	enumsPage, err := NewEnumsPage(g.project.Enums, language)
	if err != nil {
		return err
	}
	if err := writePage(dir, enumsPage.Filename, enumsTemplate, enumsPage); err != nil {
		return err
	}

	indexPage, err := NewIndexPage(language)
	if err != nil {
		return err
	}
	for _, class := range g.project.Classes {
		page, err := NewClassPage(class, language)
		if err != nil {
			return err
		}
		if err := writePage(dir, page.Filename, classTemplate, page); err != nil {
			return err
		}
		indexPage.AddClassEntry(class)
	}

	if err := writePage(dir, indexPage.Filename, indexTemplate, indexPage); err != nil {
		return err
	}

	slog.Info("Language generated",
		"language", string(language),
		"classes", len(g.project.Classes),
		"enums", len(g.project.Enums))
	return nil
}

// languageSubdir maps a language onto its fixed output subdirectory.
func languageSubdir(language metaname.Language) (string, error) {
	switch language {
	case metaname.LangC:
		return "c", nil
	case metaname.LangCpp:
		return "cpp", nil
	default:
		return "", apierrors.Configf("unsupported language %q", string(language))
	}
}
