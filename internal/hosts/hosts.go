// Package hosts holds the static allowed-host table for outbound links.
// Each link on the page maps to one or more acceptable hostname suffixes;
// the table is read-only after load.
package hosts

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed allowed_hosts.yaml
var defaultTableYAML []byte

// Table maps a link identifier (the element id of the anchor) to the
// hostname suffixes it is allowed to point at and resolve to.
type Table map[string][]string

// Default returns the table embedded in the binary.
func Default() (Table, error) {
	return Parse(defaultTableYAML)
}

// Parse decodes a YAML allowed-host table.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse allowed-host table: %w", err)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("allowed-host table is empty")
	}
	return t, nil
}

// Suffixes returns the allowed suffixes for a link id, nil if unknown.
func (t Table) Suffixes(linkID string) []string {
	return t[linkID]
}

// Match reports whether host is acceptable for the given link id.
// Matching is case-insensitive and respects label boundaries:
// "github.com" accepts "gist.github.com" but not "notgithub.com".
func (t Table) Match(linkID, host string) bool {
	suffixes, ok := t[linkID]
	if !ok {
		return false
	}
	host = canonicalHost(host)
	for _, suffix := range suffixes {
		if hostHasSuffix(host, canonicalHost(suffix)) {
			return true
		}
	}
	return false
}

func canonicalHost(h string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(h)), ".")
}

func hostHasSuffix(host, suffix string) bool {
	if host == "" || suffix == "" {
		return false
	}
	if host == suffix {
		return true
	}
	return strings.HasSuffix(host, "."+suffix)
}
