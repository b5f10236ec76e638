package inserter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	req := require.New(t)
	importLine := "import java.util.List;"

	tests := []struct {
		name        string
		content     string
		wantContent string
		wantChanged bool
	}{
		{
			name:        "duplicate exact match",
			content:     "package com.x;\n\nimport java.util.List;\n\npublic class Y {}\n",
			wantContent: "package com.x;\n\nimport java.util.List;\n\npublic class Y {}\n",
			wantChanged: false,
		},
		{
			name:        "duplicate with surrounding whitespace",
			content:     "package com.x;\n\n   import java.util.List;   \n\npublic class Y {}\n",
			wantContent: "package com.x;\n\n   import java.util.List;   \n\npublic class Y {}\n",
			wantChanged: false,
		},
		{
			name:        "after last import",
			content:     "package com.x;\n\nimport java.util.Map;\nimport java.util.Set;\n\npublic class Y {}\n",
			wantContent: "package com.x;\n\nimport java.util.Map;\nimport java.util.Set;\nimport java.util.List;\n\npublic class Y {}\n",
			wantChanged: true,
		},
		{
			name:        "after last import even when package present",
			content:     "package com.x;\nimport java.util.Map;\npublic class Y {}\n",
			wantContent: "package com.x;\nimport java.util.Map;\nimport java.util.List;\npublic class Y {}\n",
			wantChanged: true,
		},
		{
			name:        "static import counts as import line",
			content:     "package com.x;\n\nimport static a.B.c;\n\npublic class Y {}\n",
			wantContent: "package com.x;\n\nimport static a.B.c;\nimport java.util.List;\n\npublic class Y {}\n",
			wantChanged: true,
		},
		{
			name:        "after package with blank line",
			content:     "package com.x;\n\npublic class Y {}\n",
			wantContent: "package com.x;\n\nimport java.util.List;\n\npublic class Y {}\n",
			wantChanged: true,
		},
		{
			name:        "after package without blank line",
			content:     "package com.x;\npublic class Y {}\n",
			wantContent: "package com.x;\nimport java.util.List;\n\npublic class Y {}\n",
			wantChanged: true,
		},
		{
			name:        "no package and no imports",
			content:     "public class Y {}\n",
			wantContent: "import java.util.List;\n\npublic class Y {}\n",
			wantChanged: true,
		},
		{
			name:        "empty file",
			content:     "",
			wantContent: "import java.util.List;\n\n",
			wantChanged: true,
		},
		{
			name:        "missing trailing newline is preserved",
			content:     "package com.x;\npublic class Y {}",
			wantContent: "package com.x;\nimport java.util.List;\n\npublic class Y {}",
			wantChanged: true,
		},
		{
			name:        "indented import still matches",
			content:     "public class Y {\n    import weird.Thing;\n}\n",
			wantContent: "public class Y {\n    import weird.Thing;\nimport java.util.List;\n}\n",
			wantChanged: true,
		},
		{
			name:        "indented package still matches",
			content:     "  package com.x;\npublic class Y {}\n",
			wantContent: "  package com.x;\nimport java.util.List;\n\npublic class Y {}\n",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Insert(importLine, tt.content)
			req.Equal(tt.wantChanged, changed, "Insert(%q) changed flag", tt.name)
			req.Equal(tt.wantContent, got, "Insert(%q) content", tt.name)
		})
	}
}

func TestInsert_Idempotence(t *testing.T) {
	req := require.New(t)
	importLine := "import static org.assertj.core.api.Assertions.assertThat;"

	contents := []string{
		"",
		"public class Y {}\n",
		"package com.x;\n\npublic class Y {}\n",
		"package com.x;\n\nimport java.util.Map;\n\npublic class Y {}\n",
		"package com.x;\npublic class Y {}",
	}

	for _, content := range contents {
		first, changed := Insert(importLine, content)
		req.True(changed, "first insertion into %q should change content", content)
		req.Equal(1, strings.Count(first, importLine), "import should appear exactly once")

		second, changed := Insert(importLine, first)
		req.False(changed, "second insertion into %q should be a no-op", content)
		req.Equal(first, second, "second insertion must not modify content")
	}
}

func TestInsert_PreservesOriginalLines(t *testing.T) {
	req := require.New(t)
	content := "package com.x;\n\nimport a.B;\nimport c.D;\n\npublic class Y {\n  void m() {}\n}\n"

	got, changed := Insert("import java.util.List;", content)
	req.True(changed)

	// Every original line must survive in order; only the new import is added.
	originalLines := strings.Split(content, "\n")
	gotLines := strings.Split(got, "\n")
	i := 0
	for _, line := range gotLines {
		if i < len(originalLines) && line == originalLines[i] {
			i++
		}
	}
	req.Equal(len(originalLines), i, "original lines must be a subsequence of the result")
	req.Equal(len(originalLines)+1, len(gotLines), "exactly one line added")
}

func TestInsert_findPositions(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name           string
		lines          []string
		wantLastImport int
		wantPackage    int
	}{
		{
			name:           "package then imports",
			lines:          []string{"package com.x;", "", "import a.B;", "import c.D;", "", "class Y {}"},
			wantLastImport: 4,
			wantPackage:    1,
		},
		{
			name:           "package only",
			lines:          []string{"package com.x;", "", "class Y {}"},
			wantLastImport: 0,
			wantPackage:    1,
		},
		{
			name:           "neither",
			lines:          []string{"class Y {}"},
			wantLastImport: 0,
			wantPackage:    0,
		},
		{
			name:           "first package line wins",
			lines:          []string{"package a;", "package b;"},
			wantLastImport: 0,
			wantPackage:    1,
		},
		{
			name:           "word prefixes do not match",
			lines:          []string{"packagename x;", "importantStuff();"},
			wantLastImport: 0,
			wantPackage:    0,
		},
		{
			name:           "tab after keyword matches",
			lines:          []string{"package\tcom.x;", "import\ta.B;"},
			wantLastImport: 2,
			wantPackage:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastImport, packageLine := findPositions(tt.lines)
			req.Equal(tt.wantLastImport, lastImport, "last import line")
			req.Equal(tt.wantPackage, packageLine, "package line")
		})
	}
}
