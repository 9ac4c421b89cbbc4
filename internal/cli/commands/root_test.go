package commands

import (
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("NewRootCommand() returned nil")
	}

	if cmd.Use != "tibasicls" {
		t.Errorf("Expected Use='tibasicls', got %q", cmd.Use)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"serve", "version"} {
		if !names[want] {
			t.Errorf("Missing subcommand %q", want)
		}
	}
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()
	if cmd == nil {
		t.Fatal("NewServeCommand() returned nil")
	}

	if cmd.Use != "serve" {
		t.Errorf("Expected Use='serve', got %q", cmd.Use)
	}

	if cmd.RunE == nil {
		t.Error("serve command has no RunE")
	}
}
