// SPDX-License-Identifier: MIT

// Package pajek serializes a network.Network to the Pajek-style ".net" text
// format consumed by map-equation tools.
//
// Layout, one section header per line, records separated by single spaces:
//
//	*Vertices
//	1 "a"
//	2 "b"
//	*States               (only when the network carries state vertices)
//	0 1
//	*Bipartite 7          (KindBipartite: first id of the second class)
//	*Links                (KindLinks, KindStates)
//	*Multilayer           (KindMultilayer: layer1 source layer2 target weight)
//	1 7 2.5
//
// Weights are written as the shortest decimal that round-trips
// (strconv 'f', -1); NaN or infinite weights abort the write with ErrBadWeight.
//
// WriteFile stages output in a temporary file in the target directory and
// renames it into place, so a failed write never leaves a partial file.
package pajek
