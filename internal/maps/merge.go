// Copyright (c) 2026 The fromfile authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package maps merges decoded documents so that files can be layered.
package maps

import "slices"

// Merge recursively merges the document src into dst.
// Values from src win, except that nested maps on both sides are merged key by key.
//
// If keyMap is not nil, keys that are equal after keyMap are treated as the same key,
// and the key spelled by src replaces the one in dst.
// Keys of src are merged in sorted order, and when several keys of dst match,
// the exact key or else the smallest one is replaced, so the result is deterministic.
func Merge(dst, src map[string]any, keyMap func(string) string) {
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := src[key]
		existingKey, existing := lookup(dst, key, keyMap)

		srcMap, ok := value.(map[string]any)
		if !ok {
			delete(dst, existingKey)
			dst[key] = value

			continue
		}

		dstMap, ok := existing.(map[string]any)
		if !ok {
			// Copy so that later merges into dst never write through to src.
			dstMap = make(map[string]any, len(srcMap))
		}
		Merge(dstMap, srcMap, keyMap)
		delete(dst, existingKey)
		dst[key] = dstMap
	}
}

func lookup(values map[string]any, key string, keyMap func(string) string) (string, any) {
	if value, ok := values[key]; ok || keyMap == nil {
		return key, value
	}

	mapped := keyMap(key)
	found := false
	for k := range values {
		if keyMap(k) == mapped && (!found || k < key) {
			key, found = k, true
		}
	}

	return key, values[key]
}
