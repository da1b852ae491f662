package cmd

import (
	"errors"
	"log/slog"
	"slices"
	"testing"
)

func TestGet_Run(t *testing.T) {
	tests := []struct {
		name string
		get  Get
		want string
	}{
		{"last occurrence", Get{Names: []string{"console"}}, "ttyS0\n"},
		{"all occurrences", Get{All: true, Names: []string{"console"}}, "tty0\nttyS0\n"},
		{"flag prints empty line", Get{Names: []string{"ro"}}, "\n"},
		{"quoted flag", Get{Names: []string{"quiet splash"}}, "\n"},
		{"several", Get{Names: []string{"root", "BOOT-IMAGE"}}, "/dev/sda1\n/vmlinuz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, testLine, tt.get.Run)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	g := Get{Names: []string{"root", "consol"}}

	out, err := run(t, testLine, g.Run)
	if !errors.Is(err, ErrParamNotFound) {
		t.Fatalf("err = %v, want ErrParamNotFound", err)
	}

	if out != "" {
		t.Errorf("output = %q, want nothing on failure", out)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("err %T is not *Error", err)
	}

	attrs := map[string]slog.Value{}
	for _, a := range e.Attrs() {
		attrs[a.Key] = a.Value
	}

	if attrs["param"].String() != "consol" {
		t.Errorf("param = %v, want consol", attrs["param"])
	}

	got, _ := attrs["suggestions"].Any().([]string)
	if !slices.Equal(got, []string{"console"}) {
		t.Errorf("suggestions = %v, want [console]", got)
	}
}

func TestHas_Run(t *testing.T) {
	tests := []struct {
		names []string
		found bool
	}{
		{[]string{"ro"}, true},
		{[]string{"boot-image", "root"}, false},
		{[]string{"BOOT-IMAGE", "root"}, true},
		{[]string{"root", "nomodeset"}, false},
		{nil, true},
	}

	for _, tt := range tests {
		h := Has{Names: tt.names}

		_, err := run(t, testLine, h.Run)
		if (err == nil) != tt.found {
			t.Errorf("Has(%q) err = %v, want found=%v", tt.names, err, tt.found)
		}
	}
}
