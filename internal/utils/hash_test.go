// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatal("password must not be stored in plaintext")
	}

	if err := CheckPassword(hashed, "s3cret"); err != nil {
		t.Fatalf("expected password to match, got: %v", err)
	}
}

func TestHashPassword_IsSalted(t *testing.T) {
	first, _ := HashPassword("same", bcrypt.MinCost)
	second, _ := HashPassword("same", bcrypt.MinCost)

	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	if err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hashed, _ := HashPassword("right", bcrypt.MinCost)

	err := CheckPassword(hashed, "wrong")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "anything")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Fatal("malformed hash must not be reported as a mismatch")
	}
}

func TestHasher_MatchesHMAC(t *testing.T) {
	key := "secret-key"
	h := NewHasher(key)
	data := []byte(`{"error":false}`)

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	expected := mac.Sum(nil)

	if got := h.Sum(data); !bytes.Equal(got, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, got)
	}
	if h.SumHex(data) != hex.EncodeToString(expected) {
		t.Fatal("SumHex must hex-encode Sum")
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("k")
	want := h.SumHex([]byte("payload"))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.SumHex([]byte("payload")); got != want {
				t.Errorf("hash mismatch under concurrency: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestHasher_DifferentKeys(t *testing.T) {
	if NewHasher("k1").SumHex([]byte("data")) == NewHasher("k2").SumHex([]byte("data")) {
		t.Fatal("different keys must yield different signatures")
	}
}
