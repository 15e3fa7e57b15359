// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"
	"strings"
)

// Kind enumerates the available representations.
type Kind int

// Projection kinds in canonical order.
const (
	KindBipartite Kind = iota
	KindNonBacktracking
	KindUnipartiteSelfLinks
	KindUnipartite
	KindMultilayerSelfLinks
	KindMultilayerStates
)

type kindInfo struct {
	name string
	file string
}

var kinds = [...]kindInfo{
	KindBipartite:           {"bipartite", "bipartite.net"},
	KindNonBacktracking:     {"bipartite_non_backtracking", "bipartite_non_backtracking.net"},
	KindUnipartiteSelfLinks: {"unipartite_self_links", "unipartite_directed_self_links.net"},
	KindUnipartite:          {"unipartite", "unipartite_directed.net"},
	KindMultilayerSelfLinks: {"multilayer_self_links", "multilayer_self_links.net"},
	KindMultilayerStates:    {"multilayer_states", "multilayer_states.net"},
}

// AllKinds returns every kind in canonical order.
func AllKinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kinds) }

// String returns the stable snake_case name used in config and metrics.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kinds[k].name
}

// FileName returns the conventional output file name.
func (k Kind) FileName() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].file
}

// ParseKind resolves a name (case-insensitive, '-' accepted for '_').
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, info := range kinds {
		if info.name == norm {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}
