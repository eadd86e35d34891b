// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Ordered(t *testing.T) {
	g := NewUUIDGenerator()
	prev := g.Generate()
	for range 100 {
		next := g.Generate()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %s after %s", next, prev)
		}
		prev = next
	}
}

func TestIsValidUUID(t *testing.T) {
	if !IsValidUUID(NewUUIDGenerator().Generate()) {
		t.Error("generated id must be valid")
	}
	if IsValidUUID("note-1") {
		t.Error("arbitrary string must be invalid")
	}
}
