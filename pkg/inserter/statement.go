package inserter

import (
	"fmt"
	"strings"

	"github.com/siyuan-infoblox/java-import-adder/pkg/errors"
)

// Mode selects the kind of import statement to render.
type Mode int

const (
	// ClassImport imports a type, e.g. "import java.util.List;".
	ClassImport Mode = iota
	// StaticImport imports a static member, e.g.
	// "import static java.util.Collections.emptyList;".
	StaticImport
)

// Statement is a fully rendered import line. It is built once from a
// fully-qualified name and a mode and never changes afterwards.
type Statement struct {
	fqn  string
	mode Mode
}

// NewStatement validates the fully-qualified name and builds a Statement.
// The FQN must be non-empty and must not contain whitespace or ';'; no
// further Java parsing is attempted.
func NewStatement(fqn string, mode Mode) (Statement, error) {
	if fqn == "" {
		return Statement{}, fmt.Errorf("%s", errors.ErrMsgEmptyFQN)
	}
	if strings.ContainsAny(fqn, " \t\n;") {
		return Statement{}, fmt.Errorf("%s: %q", errors.ErrMsgInvalidFQN, fqn)
	}
	return Statement{fqn: fqn, mode: mode}, nil
}

// FQN returns the fully-qualified name the statement was built from.
func (s Statement) FQN() string {
	return s.fqn
}

// Line returns the rendered import line, without a trailing newline.
func (s Statement) Line() string {
	if s.mode == StaticImport {
		return fmt.Sprintf("import static %s;", s.fqn)
	}
	return fmt.Sprintf("import %s;", s.fqn)
}
