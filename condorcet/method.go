// SPDX-License-Identifier: MIT

package condorcet

import (
	"fmt"
	"strings"
)

// Method names a resolution strategy.
type Method string

// Supported methods.
const (
	MethodCondorcet   Method = "condorcet"
	MethodMinimax     Method = "minimax"
	MethodRankedPairs Method = "ranked-pairs"
	MethodSchulze     Method = "schulze"
)

// methodAliases maps accepted spellings, including the short command codes
// cm / cp / cs, to methods.
var methodAliases = map[string]Method{
	"condorcet":    MethodCondorcet,
	"c":            MethodCondorcet,
	"minimax":      MethodMinimax,
	"cm":           MethodMinimax,
	"ranked-pairs": MethodRankedPairs,
	"rankedpairs":  MethodRankedPairs,
	"pairs":        MethodRankedPairs,
	"paires":       MethodRankedPairs,
	"tideman":      MethodRankedPairs,
	"cp":           MethodRankedPairs,
	"schulze":      MethodSchulze,
	"cs":           MethodSchulze,
}

// Methods lists the canonical methods in a fixed order.
func Methods() []Method {
	return []Method{MethodCondorcet, MethodMinimax, MethodRankedPairs, MethodSchulze}
}

// ParseMethod resolves a case-insensitive method name or alias.
func ParseMethod(s string) (Method, error) {
	if m, ok := methodAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}

	return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// String returns the canonical name.
func (m Method) String() string { return string(m) }

// Valid reports whether m is one of Methods().
func (m Method) Valid() bool {
	for _, c := range Methods() {
		if c == m {
			return true
		}
	}

	return false
}
