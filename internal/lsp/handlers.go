package lsp

import (
	"context"
	"encoding/json"

	"github.com/beastmatser/ti-basic-autocomplete/internal/tooling"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// handleTextDocumentCompletion handles completion requests. The full token
// vocabulary is returned for every request; the cursor position is ignored.
func (s *Server) handleTextDocumentCompletion(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.CompletionParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse completion params")
	}

	entries := s.api.Completions()

	items := make([]protocol.CompletionItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, protocol.CompletionItem{
			Label: e.Label,
			Kind:  convertCompletionKind(e.Kind),
		})
	}

	result := protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}

	return reply(ctx, result, nil)
}

// handleCompletionItemResolve handles completionItem/resolve requests.
// Items carry no lazy payload, so the received item is echoed unchanged.
func (s *Server) handleCompletionItemResolve(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var item protocol.CompletionItem
	if err := json.Unmarshal(req.Params(), &item); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse completion item")
	}

	return reply(ctx, item, nil)
}

// handleDidChangeConfiguration handles workspace/didChangeConfiguration
// notifications. The settings cache is dropped wholesale; per-document
// values are re-fetched lazily on the next validation.
func (s *Server) handleDidChangeConfiguration(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeConfigurationParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didChangeConfiguration params")
	}

	s.tracef("Configuration changed")

	s.api.ClearSettings()

	if !s.hasConfigurationCapability {
		// Without workspace/configuration support the pushed settings
		// blob is the only source; fall back to defaults when the
		// section is absent or malformed.
		s.globalSettings = s.api.DefaultSettings()
		if m, ok := params.Settings.(map[string]interface{}); ok {
			if parsed, ok := settingsFromAny(m[configSection]); ok {
				s.globalSettings = parsed
			}
		}
	}

	// Revalidate every open document under the new settings
	for _, uri := range s.api.OpenURIs() {
		s.publishDiagnostics(ctx, uri)
	}

	return reply(ctx, nil, nil)
}

// handleDidChangeWatchedFiles handles workspace/didChangeWatchedFiles
// notifications. The server keeps no state derived from watched files, so
// the event is only logged.
func (s *Server) handleDidChangeWatchedFiles(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeWatchedFilesParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didChangeWatchedFiles params")
	}

	s.tracef("Received %d file change event(s)", len(params.Changes))

	return reply(ctx, nil, nil)
}

// settingsFromAny extracts document settings from a decoded JSON value of
// the shape {"maxNumberOfProblems": N}.
func settingsFromAny(v interface{}) (tooling.DocumentSettings, bool) {
	section, ok := v.(map[string]interface{})
	if !ok {
		return tooling.DocumentSettings{}, false
	}

	raw, ok := section["maxNumberOfProblems"]
	if !ok {
		return tooling.DocumentSettings{}, false
	}

	switch n := raw.(type) {
	case float64:
		return tooling.DocumentSettings{MaxProblems: int(n)}, true
	case int:
		return tooling.DocumentSettings{MaxProblems: n}, true
	default:
		return tooling.DocumentSettings{}, false
	}
}

// convertCompletionKind converts tooling completion kinds to LSP kinds
func convertCompletionKind(kind tooling.CompletionKind) protocol.CompletionItemKind {
	switch kind {
	case tooling.CompletionKindFunction:
		return protocol.CompletionItemKindFunction
	case tooling.CompletionKindKeyword:
		return protocol.CompletionItemKindKeyword
	case tooling.CompletionKindColor:
		return protocol.CompletionItemKindColor
	case tooling.CompletionKindVariable:
		return protocol.CompletionItemKindVariable
	default:
		return protocol.CompletionItemKindText
	}
}
