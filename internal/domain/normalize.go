package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pravsels/deepwork/internal/logger"
)

// Hostname syntax: dot-separated labels, each alphanumeric with
// interior hyphens, final label alphabetic and at least two chars.
var hostnameRE = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// Valid reports whether s is a syntactically valid hostname.
func Valid(s string) bool {
	return hostnameRE.MatchString(s)
}

type Normalizer struct {
	log logger.Logger
}

func NewNormalizer(log logger.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize validates and canonicalizes a raw domain list. Invalid
// entries are dropped with a warning. Every accepted domain that is
// not already a www. name gets its www. variant added. The result is
// deduplicated and sorted.
func (n *Normalizer) Normalize(raw []string) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(d string) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	for _, entry := range raw {
		d := strings.ToLower(strings.TrimSpace(entry))
		if d == "" {
			continue
		}
		if !Valid(d) {
			n.log.Warnf("skipping invalid domain: %q", entry)
			continue
		}
		add(d)
		if !strings.HasPrefix(d, "www.") {
			add("www." + d)
		}
	}

	sort.Strings(out)
	return out
}
