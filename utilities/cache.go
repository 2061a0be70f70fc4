/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package utilities

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/blueprint/hash"
	"bennypowers.dev/blueprint/token"
)

// DefaultCacheSize is the number of outputs a Cache keeps by default.
const DefaultCacheSize = 32

// Cache memoizes Generate by the content digest of a project's tokens and
// typography. Name, prefix and timestamps do not affect the key.
// A Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, Output]
}

// NewCache creates a cache holding up to size outputs.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, Output](size)
	if err != nil {
		return nil, fmt.Errorf("creating utilities cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Generate returns the cached output for p, generating it on a miss.
// The second return value reports whether the output came from the cache.
// Each call returns its own Segments slice.
func (c *Cache) Generate(p token.Project) (Output, bool, error) {
	key, err := Key(p)
	if err != nil {
		return Output{}, false, err
	}
	if out, ok := c.entries.Get(key); ok {
		out.Segments = slices.Clone(out.Segments)
		return out, true, nil
	}
	out := Generate(p)
	c.entries.Add(key, out)
	out.Segments = slices.Clone(out.Segments)
	return out, false, nil
}

// Len returns the number of cached outputs.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Key returns the content digest that identifies p's generated output.
func Key(p token.Project) (string, error) {
	return hash.Digest(struct {
		Tokens     token.Set        `json:"tokens"`
		Typography token.Typography `json:"typography"`
	}{p.Tokens, p.Typography})
}
