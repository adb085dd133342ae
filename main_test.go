package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"odict/datastruct/dict"
)

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(&out, nil); err != nil {
		t.Fatal(err)
	}
	var lines []string
	for _, line := range strings.Split(out.String(), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	want := []string{
		"{}",
		"{'Hello': 'World'}",
		"{'Hello': 'World', 'key_2': 'value_2'}",
		"{'Hello': 'World', 'key_2': 'value_2', 'key_3': 'value_3'}",
		"{'Hello': 'Replace Value', 'key_2': 'value_2', 'key_3': 'value_3'}",
		"Length = 3",
		"Value of Key 'Hello': Replace Value",
		"Value of Key 'key_3': value_3",
		"**The key 'Nonexistent' does not exist**",
		"{}",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("demo output mismatch (-want +got):\n%s", diff)
	}
}

func TestDemoAllocationFailure(t *testing.T) {
	var out bytes.Buffer
	err := runDemo(&out, &dict.Options{MemoryLimit: 50})
	if !errors.Is(err, dict.ErrAllocation) {
		t.Errorf("err = %v, want ErrAllocation", err)
	}
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.txt")
	if err := os.WriteFile(path, []byte("PUT a 1\nLEN\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := runScript(path, nil); err != nil {
		t.Fatal(err)
	}
	if err := runScript(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("expected error for missing script")
	}
}
