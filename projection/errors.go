// SPDX-License-Identifier: MIT

package projection

import "errors"

// Sentinel errors; branch with errors.Is.
var (
	// ErrNilQuantities indicates nil flow tables.
	ErrNilQuantities = errors.New("projection: flow quantities are nil")

	// ErrBadThreshold indicates a negative, NaN or infinite sparsification threshold.
	ErrBadThreshold = errors.New("projection: threshold must be finite and non-negative")

	// ErrUnknownKind indicates an unrecognized projection kind.
	ErrUnknownKind = errors.New("projection: unknown kind")

	// ErrNotMultilayer indicates a state conversion of a non-multilayer network.
	ErrNotMultilayer = errors.New("projection: network is not multilayer")
)
