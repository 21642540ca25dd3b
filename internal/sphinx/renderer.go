package sphinx

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	apierrors "github.com/JonathanLv/linphone/internal/errors"
)

//go:embed templates/*.rst.tmpl
var templatesFS embed.FS

var pageTemplates = template.Must(
	template.New("pages").Option("missingkey=error").ParseFS(templatesFS, "templates/*.rst.tmpl"),
)

// Template names, one per page kind.
const (
	classTemplate = "class.rst.tmpl"
	enumsTemplate = "enums.rst.tmpl"
	indexTemplate = "index.rst.tmpl"
)

// writePage renders data through the named template and writes the full
// result to filename under dir, unconditionally overwriting any existing
// file. There is no merging and no diffing: re-running with identical
// input reproduces identical bytes.
func writePage(dir, filename, templateName string, data any) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apierrors.Wrap(err, apierrors.CategoryFilesystem, "write page "+filename)
	}
	slog.Debug("Page written", "path", path, "bytes", buf.Len())
	return nil
}
