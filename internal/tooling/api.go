// Package tooling provides a programmatic API for IDE integration via LSP.
// It maintains open-document state and exposes the completion vocabulary and
// diagnostic scanner used by the language server.
package tooling

import (
	"sync"
)

// DefaultMaxProblems is the number of uppercase-run warnings reported per
// document when the client provides no maxNumberOfProblems setting.
const DefaultMaxProblems = 1000

// API provides thread-safe access to document state for IDE integration.
// It caches open documents and their per-URI settings and serves the
// completion and diagnostic queries behind the LSP handlers.
type API struct {
	// Document cache stores content and diagnostics per URI
	documents map[string]*Document
	docsMutex sync.RWMutex

	// Per-document settings, keyed by URI. Entries exist only for open
	// documents; the whole map is dropped on a configuration change.
	settings      map[string]DocumentSettings
	settingsMutex sync.RWMutex

	// Configuration
	config *Config
}

// Config holds configuration for the tooling API
type Config struct {
	// MaxProblems is the fallback warning cap used when a document has no
	// cached client-provided settings.
	MaxProblems int
}

// Document represents a cached document with its latest diagnostics
type Document struct {
	// URI is the document identifier (typically a file path)
	URI string

	// Content is the raw program text
	Content string

	// Version tracks document changes (incremented on each update)
	Version int

	// Diagnostics holds the result of the most recent scan
	Diagnostics []Diagnostic
}

// DocumentSettings holds the client-configurable options for one document.
type DocumentSettings struct {
	// MaxProblems caps the number of uppercase-run warnings per scan.
	MaxProblems int
}

// Position represents a position in a document (zero-based for LSP compatibility)
type Position struct {
	Line      int // Zero-based line number
	Character int // Zero-based character offset, in UTF-16 code units
}

// Range represents a range in a document
type Range struct {
	Start Position
	End   Position
}

// Diagnostic represents a single scanner finding
type Diagnostic struct {
	Range    Range
	Severity DiagnosticSeverity
	Code     string
	Message  string
	Source   string
}

// DiagnosticSeverity indicates the severity of a diagnostic
type DiagnosticSeverity int

const (
	// DiagnosticSeverityError represents an error diagnostic
	DiagnosticSeverityError DiagnosticSeverity = iota
	// DiagnosticSeverityWarning represents a warning diagnostic
	DiagnosticSeverityWarning
)

// CompletionEntry represents one token in the completion vocabulary
type CompletionEntry struct {
	// Label is the token text to display and insert
	Label string

	// Kind categorizes the token
	Kind CompletionKind
}

// CompletionKind categorizes completion entries
type CompletionKind int

const (
	// CompletionKindFunction represents a built-in function token
	CompletionKindFunction CompletionKind = iota
	// CompletionKindKeyword represents a command or control keyword
	CompletionKindKeyword
	// CompletionKindColor represents a color constant
	CompletionKindColor
	// CompletionKindVariable represents a system variable
	CompletionKindVariable
)

// NewAPI creates a new tooling API instance
func NewAPI() *API {
	return NewAPIWithConfig(&Config{
		MaxProblems: DefaultMaxProblems,
	})
}

// NewAPIWithConfig creates a new tooling API with custom configuration
func NewAPIWithConfig(config *Config) *API {
	if config.MaxProblems <= 0 {
		config.MaxProblems = DefaultMaxProblems
	}
	return &API{
		documents: make(map[string]*Document),
		settings:  make(map[string]DocumentSettings),
		config:    config,
	}
}

// OpenDocument caches a newly opened document. Diagnostics are computed by a
// subsequent Validate call once settings have been resolved.
func (a *API) OpenDocument(uri, content string) *Document {
	doc := &Document{
		URI:     uri,
		Content: content,
		Version: 1,
	}

	a.docsMutex.Lock()
	a.documents[uri] = doc
	a.docsMutex.Unlock()

	return doc
}

// UpdateDocument replaces the content of an open document. Unknown URIs are
// treated as opens so a missed didOpen does not wedge the document.
func (a *API) UpdateDocument(uri, content string, version int) *Document {
	a.docsMutex.Lock()
	defer a.docsMutex.Unlock()

	doc, exists := a.documents[uri]
	if !exists {
		doc = &Document{URI: uri}
		a.documents[uri] = doc
	}

	doc.Content = content
	doc.Version = version

	return doc
}

// GetDocument retrieves a cached document
func (a *API) GetDocument(uri string) (*Document, bool) {
	a.docsMutex.RLock()
	defer a.docsMutex.RUnlock()

	doc, exists := a.documents[uri]
	return doc, exists
}

// CloseDocument removes a document and its cached settings
func (a *API) CloseDocument(uri string) {
	a.docsMutex.Lock()
	delete(a.documents, uri)
	a.docsMutex.Unlock()

	a.settingsMutex.Lock()
	delete(a.settings, uri)
	a.settingsMutex.Unlock()
}

// OpenURIs returns the URIs of all currently open documents
func (a *API) OpenURIs() []string {
	a.docsMutex.RLock()
	defer a.docsMutex.RUnlock()

	uris := make([]string, 0, len(a.documents))
	for uri := range a.documents {
		uris = append(uris, uri)
	}
	return uris
}

// GetDiagnostics returns the diagnostics from the most recent scan
func (a *API) GetDiagnostics(uri string) []Diagnostic {
	a.docsMutex.RLock()
	defer a.docsMutex.RUnlock()

	doc, exists := a.documents[uri]
	if !exists {
		return nil
	}
	return doc.Diagnostics
}

// SetSettings caches the client-provided settings for a document
func (a *API) SetSettings(uri string, s DocumentSettings) {
	if s.MaxProblems <= 0 {
		s.MaxProblems = a.config.MaxProblems
	}

	a.settingsMutex.Lock()
	a.settings[uri] = s
	a.settingsMutex.Unlock()
}

// SettingsFor returns the cached settings for a document, if any
func (a *API) SettingsFor(uri string) (DocumentSettings, bool) {
	a.settingsMutex.RLock()
	defer a.settingsMutex.RUnlock()

	s, exists := a.settings[uri]
	return s, exists
}

// ClearSettings drops all cached settings. Open documents re-resolve their
// settings lazily on the next validation.
func (a *API) ClearSettings() {
	a.settingsMutex.Lock()
	a.settings = make(map[string]DocumentSettings)
	a.settingsMutex.Unlock()
}

// DefaultSettings returns the fallback settings for documents without a
// client-provided configuration.
func (a *API) DefaultSettings() DocumentSettings {
	return DocumentSettings{MaxProblems: a.config.MaxProblems}
}
