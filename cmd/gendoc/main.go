// Command gendoc generates the Sphinx source files documenting the
// Linphone Core API, for the C and C++ dialects, from the XML description
// produced by Doxygen.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/JonathanLv/linphone/internal/abstractapi"
	"github.com/JonathanLv/linphone/internal/doxygen"
	"github.com/JonathanLv/linphone/internal/sphinx"
)

var cli struct {
	XMLDir  string `arg:"" type:"existingdir" help:"Directory holding the XML description of the C API generated by Doxygen"`
	Output  string `short:"o" help:"Directory where the Sphinx source files are written" default:"."`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("gendoc"),
		kong.Description("Generate a Sphinx project documenting the Linphone Core API."))

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := run(cli.XMLDir, cli.Output); err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run(xmlDir, outputDir string) error {
	raw, err := doxygen.Load(xmlDir)
	if err != nil {
		return err
	}
	if err := raw.Check(); err != nil {
		return err
	}

	project, err := abstractapi.Parse(raw)
	if err != nil {
		return err
	}
	if err := project.Check(); err != nil {
		return err
	}

	if err := sphinx.NewDocGenerator(project).Generate(outputDir); err != nil {
		return err
	}

	slog.Info("Documentation generated", "output", outputDir)
	return nil
}
