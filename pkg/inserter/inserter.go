package inserter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/siyuan-infoblox/java-import-adder/pkg/errors"
	"github.com/siyuan-infoblox/java-import-adder/pkg/utils"
)

type Config struct {
	Statement  Statement // the import line to add
	Extensions []string  // applicable file extensions; defaults to .java
	DryRun     bool      // print diffs instead of writing files
	Stdout     io.Writer // defaults to os.Stdout
	Stderr     io.Writer // defaults to os.Stderr
}

// Outcome classifies the result of processing a single file.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeDuplicate
	OutcomeSkipped
	OutcomeError
)

var (
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// inserter handles the per-file import insertion logic
type inserter struct {
	config Config
}

// New creates a new Inserter for the given statement and options
func New(config Config) *inserter {
	if len(config.Extensions) == 0 {
		config.Extensions = utils.DefaultExtensions
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	return &inserter{config: config}
}

func (a *inserter) getImportLine() string {
	return a.config.Statement.Line()
}

func (a *inserter) getExtensions() []string {
	return a.config.Extensions
}

func (a *inserter) getDryRun() bool {
	return a.config.DryRun
}

// ProcessFile processes a single target file and reports its outcome on
// stdout/stderr. Skips (missing file, wrong extension, duplicate import)
// are not errors.
func (a *inserter) ProcessFile(path string) (Outcome, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		warnColor.Fprintf(a.config.Stderr, errors.WarnMsgNotAFile+"\n", path)
		return OutcomeSkipped, nil
	}
	if !utils.HasAnyExtension(path, a.getExtensions()) {
		warnColor.Fprintf(a.config.Stderr, errors.WarnMsgNonApplicableFile+"\n", path)
		return OutcomeSkipped, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return OutcomeError, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	importLine := a.getImportLine()
	newContent, changed := Insert(importLine, string(src))
	if !changed {
		infoColor.Fprintf(a.config.Stdout, errors.InfoMsgAlreadyPresent+"\n", path)
		return OutcomeDuplicate, nil
	}

	if a.getDryRun() {
		edits := myers.ComputeEdits(span.URIFromPath(path), string(src), newContent)
		unified := gotextdiff.ToUnified(path, path, string(src), edits)
		fmt.Fprint(a.config.Stdout, unified)
		return OutcomeAdded, nil
	}

	if err := utils.WriteFileAtomic(path, []byte(newContent), info.Mode().Perm()); err != nil {
		return OutcomeError, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}

	okColor.Fprintf(a.config.Stdout, errors.InfoMsgAdded+"\n", importLine, path)
	return OutcomeAdded, nil
}

// ProcessFiles processes multiple target files, continuing past per-file
// errors and printing a summary when more than one file was targeted.
func (a *inserter) ProcessFiles(paths []string) error {
	addedCount := 0
	skippedCount := 0
	errorCount := 0

	for _, path := range paths {
		outcome, err := a.ProcessFile(path)
		if err != nil {
			errColor.Fprintf(a.config.Stderr, errors.ErrMsgProcessingFile+"\n", path, err)
			errorCount++
			continue
		}
		switch outcome {
		case OutcomeAdded:
			addedCount++
		case OutcomeDuplicate, OutcomeSkipped:
			skippedCount++
		}
	}

	if len(paths) > 1 {
		fmt.Fprintf(a.config.Stdout, errors.InfoMsgProcessedCount, addedCount, skippedCount)
		if errorCount > 0 {
			fmt.Fprintf(a.config.Stdout, errors.InfoMsgErrorCount, errorCount)
		}
		fmt.Fprintln(a.config.Stdout)
	}

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPaths expands directory targets into the Java files they contain
// and processes the resulting file list. Non-directory targets are passed
// through as-is so that missing files are reported per-file, not fatally.
func (a *inserter) ProcessPaths(paths []string) error {
	var files []string
	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil || !isDir {
			files = append(files, path)
			continue
		}

		found, err := utils.FindSourceFiles(path, a.getExtensions())
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindJavaFiles, err)
		}
		if len(found) == 0 {
			fmt.Fprintf(a.config.Stdout, errors.InfoMsgNoJavaFilesFound+"\n", path)
			continue
		}
		fmt.Fprintf(a.config.Stdout, errors.InfoMsgFoundJavaFiles+"\n", len(found), path)
		files = append(files, found...)
	}

	return a.ProcessFiles(files)
}
