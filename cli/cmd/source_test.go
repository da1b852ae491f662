package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmdline")
	if err := os.WriteFile(path, []byte("root=/dev/sda1 ro\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  Source
		want int
	}{
		{"file", Source{Path: path}, 2},
		{"literal", Literal("a b c"), 3},
		{"literal wins", Source{Path: "/nonexistent", Line: Literal("a").Line}, 1},
		{"empty literal", Source{Path: "/nonexistent", Line: Literal("").Line}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.src.Load(t.Context())
			if err != nil {
				t.Fatal(err)
			}

			if c.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.want)
			}
		})
	}
}

func TestSource_LoadMissing(t *testing.T) {
	src := Source{Path: filepath.Join(t.TempDir(), "missing")}

	_, err := src.Load(t.Context())
	if !errors.Is(err, ErrReadSource) {
		t.Fatalf("err = %v, want ErrReadSource", err)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist cause", err)
	}
}

func TestSource_Name(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{Source{}, "/proc/cmdline"},
		{Source{Path: "-"}, "-"},
		{Source{Path: "/tmp/x"}, "/tmp/x"},
		{Source{Path: "/tmp/x", Line: Literal("a").Line}, "literal"},
		{Literal(""), "literal"},
	}

	for _, tt := range tests {
		if got := tt.src.Name(); got != tt.want {
			t.Errorf("%+v.Name() = %q, want %q", tt.src, got, tt.want)
		}
	}
}
