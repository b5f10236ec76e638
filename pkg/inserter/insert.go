package inserter

import (
	"regexp"
	"strings"
)

// Line-pattern detection is deliberate: comments, multi-line statements
// and other Java syntax are not modeled. Callers rely on these line-based
// semantics, so they must not be replaced with a real parser.
var (
	importLinePattern  = regexp.MustCompile(`^\s*import\s`)
	packageLinePattern = regexp.MustCompile(`^\s*package\s`)
)

// Insert returns content with importLine added, or content unchanged when
// the line is already present. The insertion point is chosen in precedence
// order: directly after the last existing import line; else after the
// package declaration (and any blank lines following it), with a blank
// line after the new import; else at the top of the file, followed by a
// blank line and the original content.
//
// Insert is a pure function: it performs no I/O and every input maps to a
// defined result, including empty content.
func Insert(importLine, content string) (string, bool) {
	if hasImportLine(content, importLine) {
		return content, false
	}

	lines, trailingNewline := splitLines(content)
	lastImport, packageLine := findPositions(lines)

	insertAfter := 0
	switch {
	case lastImport > 0:
		insertAfter = lastImport
	case packageLine > 0:
		insertAfter = packageLine
		// Keep the import visually attached to the code below rather
		// than to the package declaration.
		for insertAfter < len(lines) && strings.TrimSpace(lines[insertAfter]) == "" {
			insertAfter++
		}
	}

	if insertAfter == 0 {
		// No package or import lines: import goes first, then a blank
		// line, then the file as it was.
		return importLine + "\n\n" + content, true
	}

	out := make([]string, 0, len(lines)+2)
	for i, line := range lines {
		out = append(out, line)
		if i+1 == insertAfter {
			out = append(out, importLine)
			if lastImport == 0 {
				out = append(out, "")
			}
		}
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result, true
}

// hasImportLine reports whether any line of content equals importLine once
// leading and trailing whitespace is stripped from both. Internal spacing
// must match exactly.
func hasImportLine(content, importLine string) bool {
	target := strings.TrimSpace(importLine)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == target {
			return true
		}
	}
	return false
}

// findPositions returns the 1-based line numbers of the last import line
// and the first package line, or 0 when not found.
func findPositions(lines []string) (lastImport, packageLine int) {
	for i, line := range lines {
		if importLinePattern.MatchString(line) {
			lastImport = i + 1
		}
		if packageLine == 0 && packageLinePattern.MatchString(line) {
			packageLine = i + 1
		}
	}
	return lastImport, packageLine
}

// splitLines splits content on '\n', dropping the final empty element a
// trailing newline produces so that line counts match the file's visible
// lines. The second result records whether a trailing newline was present
// so it can be restored on output.
func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, false
	}
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = content[:len(content)-1]
	}
	return strings.Split(content, "\n"), trailing
}
