// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name          string
		origin        string
		referer       string
		allowedDomain string
		want          bool
	}{
		{"matching origin", "https://livefireinstruction.com", "", "livefireinstruction.com", true},
		{"matching subdomain origin", "https://www.livefireinstruction.com", "", "livefireinstruction.com", true},
		{"matching referer only", "", "https://livefireinstruction.com/blog/post", "livefireinstruction.com", true},
		{"foreign origin and referer", "https://spam.example.com", "https://spam.example.com/x", "livefireinstruction.com", false},
		{"both headers empty", "", "", "livefireinstruction.com", false},
		{"containment match", "https://livefireinstruction.com.attacker.example", "", "livefireinstruction.com", true},
		{"open mode", "https://anywhere.example.com", "", "", true},
		{"open mode without headers", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOriginAllowed(tt.origin, tt.referer, tt.allowedDomain))
		})
	}
}
