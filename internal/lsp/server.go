// Package lsp implements a Language Server Protocol server for TI-Basic.
// It provides editor integration for calculator programs: token completion
// and regex-based diagnostics over full-document sync.
package lsp

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/beastmatser/ti-basic-autocomplete/internal/tooling"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

// configSection is the client-side settings namespace recognized by the
// server (tibasicServer.maxNumberOfProblems).
const configSection = "tibasicServer"

// Server implements the LSP server for TI-Basic
type Server struct {
	// api holds document state, the completion table and the scanner
	api *tooling.API

	// conn is the JSON-RPC connection
	conn jsonrpc2.Conn

	// client is the LSP client interface
	client protocol.Client

	// logger for debugging
	logger *log.Logger

	// workspaceRoot is the root directory of the workspace
	workspaceRoot string

	// Server capabilities
	capabilities protocol.ServerCapabilities

	// Client capabilities recorded at initialize
	hasConfigurationCapability     bool
	hasDidChangeConfigRegistration bool

	// globalSettings is the single shared configuration used when the
	// client cannot answer workspace/configuration requests.
	globalSettings tooling.DocumentSettings

	// verbose enables per-message trace logging
	verbose bool

	// cancel is used to signal server shutdown
	cancel context.CancelFunc
}

// NewServer creates a new LSP server instance. A nil config uses the
// built-in defaults; verbose enables per-message trace logging.
func NewServer(cfg *tooling.Config, verbose bool) *Server {
	logger := log.New(os.Stderr, "[LSP] ", log.LstdFlags)

	var api *tooling.API
	if cfg != nil {
		api = tooling.NewAPIWithConfig(cfg)
	} else {
		api = tooling.NewAPI()
	}

	return &Server{
		api:            api,
		logger:         logger,
		verbose:        verbose,
		globalSettings: api.DefaultSettings(),
		capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save: &protocol.SaveOptions{
					IncludeText: false,
				},
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: true,
			},
		},
	}
}

// Run starts the LSP server
func (s *Server) Run(ctx context.Context) error {
	s.logger.Println("Starting TI-Basic Language Server")

	// Create context with cancellation for shutdown
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Create JSON-RPC stream handler
	stream := jsonrpc2.NewStream(stdrwc{})

	// Create connection
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn

	// Create zap logger; the dispatcher only logs in verbose mode
	zapLogger := zap.NewNop()
	if s.verbose {
		var err error
		zapLogger, err = zap.NewDevelopment()
		if err != nil {
			s.logger.Printf("Warning: Failed to create zap logger: %v", err)
			// Fall back to nop logger
			zapLogger = zap.NewNop()
		}
	}
	s.client = protocol.ClientDispatcher(conn, zapLogger)

	// Register handlers
	conn.Go(ctx, s.handler())

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Println("Shutting down TI-Basic Language Server")
	return conn.Close()
}

// handler returns the JSON-RPC handler function
func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.tracef("Received: %s", req.Method())

		switch req.Method() {
		case protocol.MethodInitialize:
			return s.handleInitialize(ctx, reply, req)
		case protocol.MethodInitialized:
			return s.handleInitialized(ctx, reply, req)
		case protocol.MethodShutdown:
			return s.handleShutdown(ctx, reply, req)
		case protocol.MethodExit:
			return s.handleExit(ctx, reply, req)
		case protocol.MethodTextDocumentDidOpen:
			return s.handleTextDocumentDidOpen(ctx, reply, req)
		case protocol.MethodTextDocumentDidChange:
			return s.handleTextDocumentDidChange(ctx, reply, req)
		case protocol.MethodTextDocumentDidClose:
			return s.handleTextDocumentDidClose(ctx, reply, req)
		case protocol.MethodTextDocumentDidSave:
			return s.handleTextDocumentDidSave(ctx, reply, req)
		case protocol.MethodTextDocumentCompletion:
			return s.handleTextDocumentCompletion(ctx, reply, req)
		case protocol.MethodCompletionItemResolve:
			return s.handleCompletionItemResolve(ctx, reply, req)
		case protocol.MethodWorkspaceDidChangeConfiguration:
			return s.handleDidChangeConfiguration(ctx, reply, req)
		case protocol.MethodWorkspaceDidChangeWatchedFiles:
			return s.handleDidChangeWatchedFiles(ctx, reply, req)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

// handleInitialize handles the initialize request
func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse initialize params")
	}

	s.tracef("Initialize from client: %v", params.ClientInfo)

	// Record which configuration mechanisms the client supports
	if ws := params.Capabilities.Workspace; ws != nil {
		s.hasConfigurationCapability = ws.Configuration
		if ws.DidChangeConfiguration != nil {
			s.hasDidChangeConfigRegistration = ws.DidChangeConfiguration.DynamicRegistration
		}
	}

	// Extract workspace root from params
	if len(params.WorkspaceFolders) > 0 {
		// Use workspace folders if available (LSP 3.6+)
		s.workspaceRoot = uri.URI(params.WorkspaceFolders[0].URI).Filename()
		s.tracef("Workspace root set to: %s", s.workspaceRoot)
	} else if params.RootURI != "" {
		// Fall back to rootUri (deprecated but still used)
		s.workspaceRoot = params.RootURI.Filename()
		s.tracef("Workspace root set to: %s (from rootUri)", s.workspaceRoot)
	} else if params.RootPath != "" {
		// Fall back to rootPath (deprecated)
		s.workspaceRoot = params.RootPath
		s.tracef("Workspace root set to: %s (from rootPath)", s.workspaceRoot)
	}

	result := protocol.InitializeResult{
		Capabilities: s.capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    "tibasic-lsp",
			Version: "0.1.0",
		},
	}

	return reply(ctx, result, nil)
}

// handleInitialized handles the initialized notification
func (s *Server) handleInitialized(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.tracef("Client initialized")

	// Subscribe to configuration changes when the client registers them
	// dynamically; static clients push them unconditionally.
	if s.hasDidChangeConfigRegistration {
		err := s.client.RegisterCapability(ctx, &protocol.RegistrationParams{
			Registrations: []protocol.Registration{
				{
					ID:     "tibasic-didChangeConfiguration",
					Method: protocol.MethodWorkspaceDidChangeConfiguration,
				},
			},
		})
		if err != nil {
			s.logger.Printf("Error registering for configuration changes: %v", err)
		}
	}

	return reply(ctx, nil, nil)
}

// handleShutdown handles the shutdown request
func (s *Server) handleShutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Println("Shutdown requested")
	return reply(ctx, nil, nil)
}

// handleExit handles the exit notification
func (s *Server) handleExit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Println("Exit requested")
	// Reply first, then trigger shutdown
	if err := reply(ctx, nil, nil); err != nil {
		s.logger.Printf("Error replying to exit: %v", err)
	}
	// Cancel the context to trigger graceful shutdown
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// handleTextDocumentDidOpen handles document open notifications
func (s *Server) handleTextDocumentDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didOpen params")
	}

	uri := string(params.TextDocument.URI)
	content := params.TextDocument.Text
	version := int(params.TextDocument.Version)

	s.tracef("Document opened: %s (version %d)", uri, version)

	s.api.OpenDocument(uri, content)

	// Publish diagnostics
	s.publishDiagnostics(ctx, uri)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidChange handles document change notifications
func (s *Server) handleTextDocumentDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didChange params")
	}

	uri := string(params.TextDocument.URI)
	version := int(params.TextDocument.Version)

	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}

	// We use full document sync, so take the last change
	content := params.ContentChanges[len(params.ContentChanges)-1].Text

	s.tracef("Document changed: %s (version %d)", uri, version)

	s.api.UpdateDocument(uri, content, version)

	// Publish diagnostics
	s.publishDiagnostics(ctx, uri)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidClose handles document close notifications
func (s *Server) handleTextDocumentDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didClose params")
	}

	uri := string(params.TextDocument.URI)
	s.tracef("Document closed: %s", uri)

	// Drops the document and its cached settings
	s.api.CloseDocument(uri)

	// Clear any remaining squiggles in the editor
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: []protocol.Diagnostic{},
	})
	if err != nil {
		s.logger.Printf("Error clearing diagnostics: %v", err)
	}

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidSave handles document save notifications
func (s *Server) handleTextDocumentDidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didSave params")
	}

	uri := string(params.TextDocument.URI)
	s.tracef("Document saved: %s", uri)

	// Re-publish diagnostics on save
	s.publishDiagnostics(ctx, uri)

	return reply(ctx, nil, nil)
}

// publishDiagnostics re-scans a document and publishes the replacement
// diagnostic set. Untracked URIs are ignored so the settings cache never
// gains entries for documents that are not open.
func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	if _, exists := s.api.GetDocument(uri); !exists {
		s.tracef("Skipping diagnostics for untracked document: %s", uri)
		return
	}

	s.resolveSettings(ctx, uri)

	diagnostics := s.api.Validate(uri)

	lspDiagnostics := make([]protocol.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		lspDiagnostics = append(lspDiagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(d.Range.Start.Line),
					Character: uint32(d.Range.Start.Character),
				},
				End: protocol.Position{
					Line:      uint32(d.Range.End.Line),
					Character: uint32(d.Range.End.Character),
				},
			},
			Severity: convertSeverity(d.Severity),
			Code:     d.Code,
			Source:   d.Source,
			Message:  d.Message,
		})
	}

	params := protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: lspDiagnostics,
	}

	err := s.client.PublishDiagnostics(ctx, &params)
	if err != nil {
		s.logger.Printf("Error publishing diagnostics: %v", err)
	}
}

// resolveSettings makes sure the settings cache has an entry for the
// document before validation. Cached values win; otherwise the client is
// queried when it supports workspace/configuration, else the global
// fallback applies.
func (s *Server) resolveSettings(ctx context.Context, docURI string) {
	if _, ok := s.api.SettingsFor(docURI); ok {
		return
	}

	if !s.hasConfigurationCapability {
		s.api.SetSettings(docURI, s.globalSettings)
		return
	}

	items, err := s.client.Configuration(ctx, &protocol.ConfigurationParams{
		Items: []protocol.ConfigurationItem{
			{
				ScopeURI: protocol.DocumentURI(docURI),
				Section:  configSection,
			},
		},
	})
	if err != nil {
		s.logger.Printf("Error fetching configuration for %s: %v", docURI, err)
		s.api.SetSettings(docURI, s.api.DefaultSettings())
		return
	}

	settings := s.api.DefaultSettings()
	if len(items) > 0 {
		if parsed, ok := settingsFromAny(items[0]); ok {
			settings = parsed
		}
	}
	s.api.SetSettings(docURI, settings)
}

// tracef logs per-message trace lines; silent unless verbose is enabled.
// Errors and lifecycle events go straight to the logger instead.
func (s *Server) tracef(format string, v ...interface{}) {
	if s.verbose {
		s.logger.Printf(format, v...)
	}
}

// replyWithError sends an LSP-compliant error response
func (s *Server) replyWithError(ctx context.Context, reply jsonrpc2.Replier, code jsonrpc2.Code, message string) error {
	return reply(ctx, nil, &jsonrpc2.Error{
		Code:    code,
		Message: message,
	})
}

// convertSeverity converts tooling diagnostic severity to LSP severity
func convertSeverity(severity tooling.DiagnosticSeverity) protocol.DiagnosticSeverity {
	switch severity {
	case tooling.DiagnosticSeverityError:
		return protocol.DiagnosticSeverityError
	case tooling.DiagnosticSeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityError
	}
}

// stdrwc implements io.ReadWriteCloser for stdin/stdout
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
