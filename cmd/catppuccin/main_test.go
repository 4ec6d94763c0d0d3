package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestSchemeName(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"mocha", "catppuccin-mocha"},
		{"Latte", "catppuccin-latte"},
		{"catppuccin-frappe", "catppuccin-frappe"},
		{"gruvbox", "gruvbox"},
	}
	for _, tt := range tests {
		if got := schemeName(tt.arg); got != tt.want {
			t.Errorf("schemeName(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestShowAcceptsBareFlavor(t *testing.T) {
	flagConfig = ""
	flagForms = []string{"comment"}
	t.Cleanup(func() { flagForms = nil })

	var out bytes.Buffer
	showCmd.SetOut(&out)
	if err := runShow(showCmd, []string{"mocha"}); err != nil {
		t.Fatalf("show mocha: %v", err)
	}
	if !strings.Contains(out.String(), "catppuccin-mocha") || !strings.Contains(out.String(), "#7f849c") {
		t.Errorf("show mocha output:\n%s", out.String())
	}
}
