package main

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{
		"version":  false,
		"browse":   false,
		"best":     false,
		"genres":   false,
		"top":      false,
		"telegram": false,
		"config":   false,
	}

	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	root := newRootCmd()
	flag := root.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not registered")
	}
	if flag.DefValue != "configs/filmotheque.yaml" {
		t.Errorf("--config default = %q, want %q", flag.DefValue, "configs/filmotheque.yaml")
	}
	if flag.Shorthand != "c" {
		t.Errorf("--config shorthand = %q, want %q", flag.Shorthand, "c")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCmd()
	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}
}

func TestMCPServeCommand_Hidden(t *testing.T) {
	cmd := newMCPServeCmd()
	if !cmd.Hidden {
		t.Error("mcp-serve should be hidden")
	}
}

func TestTopCommand_Flags(t *testing.T) {
	cmd := newTopCmd()

	count := cmd.Flags().Lookup("count")
	if count == nil {
		t.Fatal("--count flag not registered")
	}
	if count.Shorthand != "n" {
		t.Errorf("--count shorthand = %q, want %q", count.Shorthand, "n")
	}

	genre := cmd.Flags().Lookup("genre")
	if genre == nil {
		t.Fatal("--genre flag not registered")
	}
	if genre.Shorthand != "g" {
		t.Errorf("--genre shorthand = %q, want %q", genre.Shorthand, "g")
	}
}
