package tooling

import (
	"fmt"
	"regexp"
	"sort"
)

// diagnosticSource tags published diagnostics so editors can attribute them.
const diagnosticSource = "tibasic"

// diagnosticMessage is the shared template for both scans.
const diagnosticMessage = "%s is surrounded by spaces."

var (
	// spacedOperatorPattern matches a binary or comparison operator with a
	// single space on each side. The capture group isolates the operator so
	// the diagnostic range excludes the spaces.
	spacedOperatorPattern = regexp.MustCompile(` ([+\-*/=<>]) `)

	// uppercaseRunPattern matches word-bounded runs of two or more
	// uppercase letters.
	uppercaseRunPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
)

// Validate re-scans a document and replaces its diagnostic set. The warning
// cap comes from the document's cached settings, falling back to the API
// default when none exist.
func (a *API) Validate(uri string) []Diagnostic {
	doc, exists := a.GetDocument(uri)
	if !exists {
		return nil
	}

	settings, ok := a.SettingsFor(uri)
	if !ok {
		settings = a.DefaultSettings()
	}

	diagnostics := Scan(doc.Content, settings.MaxProblems)

	a.docsMutex.Lock()
	if doc, exists := a.documents[uri]; exists {
		doc.Diagnostics = diagnostics
	}
	a.docsMutex.Unlock()

	return diagnostics
}

// Scan runs both pattern sweeps over the full text and returns a fresh
// diagnostic slice: errors for space-surrounded operators, then warnings for
// uppercase runs capped at maxProblems.
func Scan(text string, maxProblems int) []Diagnostic {
	mapper := newPositionMapper(text)
	diagnostics := make([]Diagnostic, 0)

	for _, m := range spacedOperatorPattern.FindAllStringSubmatchIndex(text, -1) {
		op := text[m[2]:m[3]]
		diagnostics = append(diagnostics, Diagnostic{
			Range: Range{
				Start: mapper.position(m[2]),
				End:   mapper.position(m[3]),
			},
			Severity: DiagnosticSeverityError,
			Code:     "spaced_operator",
			Message:  fmt.Sprintf(diagnosticMessage, op),
			Source:   diagnosticSource,
		})
	}

	problems := 0
	for _, m := range uppercaseRunPattern.FindAllStringIndex(text, -1) {
		if problems >= maxProblems {
			break
		}
		problems++

		word := text[m[0]:m[1]]
		diagnostics = append(diagnostics, Diagnostic{
			Range: Range{
				Start: mapper.position(m[0]),
				End:   mapper.position(m[1]),
			},
			Severity: DiagnosticSeverityWarning,
			Code:     "uppercase_run",
			Message:  fmt.Sprintf(diagnosticMessage, word),
			Source:   diagnosticSource,
		})
	}

	return diagnostics
}

// positionMapper converts byte offsets into zero-based line/character
// positions, counting characters in UTF-16 code units as LSP requires.
type positionMapper struct {
	text       string
	lineStarts []int
}

func newPositionMapper(text string) *positionMapper {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &positionMapper{text: text, lineStarts: starts}
}

func (m *positionMapper) position(offset int) Position {
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1

	character := 0
	for _, r := range m.text[m.lineStarts[line]:offset] {
		if r >= 0x10000 {
			character += 2
		} else {
			character++
		}
	}

	return Position{Line: line, Character: character}
}
