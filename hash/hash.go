/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package hash provides canonical serialization and content digests used to
// prove that derived output is reproducible.
package hash

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Stringify returns a canonical JSON encoding of v in which the keys of every
// object, at every depth, are sorted lexicographically. Array order is kept.
// Structurally equal values encode identically regardless of key insertion
// order or struct field order.
func Stringify(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode value: %w", err)
	}

	// Round-trip through a generic tree: encoding/json writes map keys in
	// sorted order, which struct fields would not get.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return "", fmt.Errorf("failed to decode value: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree); err != nil {
		return "", fmt.Errorf("failed to encode canonical value: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// SHA256 returns the lowercase hex SHA-256 digest of the UTF-8 bytes of text.
func SHA256(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Digest returns the SHA-256 digest of v's canonical serialization.
func Digest(v any) (string, error) {
	s, err := Stringify(v)
	if err != nil {
		return "", err
	}
	return SHA256(s), nil
}
