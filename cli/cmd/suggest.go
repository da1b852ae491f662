package cmd

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/lkcmdline/cmdline"
)

// maxSuggestions bounds the names offered when a lookup fails.
const maxSuggestions = 3

// suggest returns parameter names in c resembling name, best match first.
// Names are compared with '-' and '_' treated alike.
func suggest(name string, c cmdline.CmdLine) []string {
	fold := strings.NewReplacer("-", "_")

	var names []string
	for n := range c.Names() {
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}

	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = fold.Replace(n)
	}

	matches := fuzzy.Find(fold.Replace(name), folded)

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		out = append(out, names[m.Index])
	}

	return out
}
