package lsp

import (
	"context"
	"reflect"
	"testing"

	"github.com/beastmatser/ti-basic-autocomplete/internal/tooling"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

func TestConvertCompletionKind(t *testing.T) {
	tests := []struct {
		name     string
		input    tooling.CompletionKind
		expected protocol.CompletionItemKind
	}{
		{"Function", tooling.CompletionKindFunction, protocol.CompletionItemKindFunction},
		{"Keyword", tooling.CompletionKindKeyword, protocol.CompletionItemKindKeyword},
		{"Color", tooling.CompletionKindColor, protocol.CompletionItemKindColor},
		{"Variable", tooling.CompletionKindVariable, protocol.CompletionItemKindVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertCompletionKind(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSettingsFromAny(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected tooling.DocumentSettings
		ok       bool
	}{
		{
			name:     "float value from JSON",
			input:    map[string]interface{}{"maxNumberOfProblems": float64(500)},
			expected: tooling.DocumentSettings{MaxProblems: 500},
			ok:       true,
		},
		{
			name:     "int value",
			input:    map[string]interface{}{"maxNumberOfProblems": 250},
			expected: tooling.DocumentSettings{MaxProblems: 250},
			ok:       true,
		},
		{
			name:  "missing key",
			input: map[string]interface{}{"other": float64(1)},
			ok:    false,
		},
		{
			name:  "non-numeric value",
			input: map[string]interface{}{"maxNumberOfProblems": "many"},
			ok:    false,
		},
		{
			name:  "not a map",
			input: "maxNumberOfProblems",
			ok:    false,
		},
		{
			name:  "nil section",
			input: nil,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := settingsFromAny(tt.input)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && result != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestHandleCompletionItemResolveIdentity(t *testing.T) {
	server := NewServer(nil, false)

	item := protocol.CompletionItem{
		Label:      "sin(",
		Kind:       protocol.CompletionItemKindFunction,
		Detail:     "trigonometric sine",
		InsertText: "sin(",
		SortText:   "0001",
	}

	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), protocol.MethodCompletionItemResolve, item)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	var result interface{}
	var replyErr error
	reply := func(ctx context.Context, res interface{}, err error) error {
		result = res
		replyErr = err
		return nil
	}

	if err := server.handleCompletionItemResolve(context.Background(), reply, req); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if replyErr != nil {
		t.Fatalf("Handler replied with error: %v", replyErr)
	}

	resolved, ok := result.(protocol.CompletionItem)
	if !ok {
		t.Fatalf("Expected protocol.CompletionItem, got %T", result)
	}

	if !reflect.DeepEqual(resolved, item) {
		t.Errorf("Resolved item differs from input:\n got %+v\nwant %+v", resolved, item)
	}
}

func TestCompletionItemsMatchVocabulary(t *testing.T) {
	server := NewServer(nil, false)
	entries := server.api.Completions()

	if len(entries) == 0 {
		t.Fatal("completion vocabulary is empty")
	}

	// The handler converts entries one-to-one in order; spot-check the
	// kind mapping used for the conversion.
	for _, e := range entries[:10] {
		kind := convertCompletionKind(e.Kind)
		if kind == protocol.CompletionItemKindText {
			t.Errorf("Entry %q mapped to the fallback kind", e.Label)
		}
	}
}
