// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path parsing errors.
var (
	ErrPathEmpty    = errors.New("path is empty")
	ErrPathSyntax   = errors.New("path syntax is invalid")
	ErrPathEscape   = errors.New("path escape is invalid")
	ErrPathEmptyKey = errors.New("path segment is empty")
)

// PathToken is one step of a target path: either an object key or an array
// index.
type PathToken struct {
	Key   string
	Index int
	IsKey bool
}

// KeyToken returns a key path token.
func KeyToken(key string) PathToken {
	return PathToken{Key: key, IsKey: true}
}

// IndexToken returns an array-index path token.
func IndexToken(i int) PathToken {
	return PathToken{Index: i}
}

// ParsePath tokenizes a dotted target path such as `user.address.city` or
// `items[0]["weird.key"]`. Bracket segments accept a non-negative integer or
// a single- or double-quoted key with backslash escapes.
func ParsePath(path string) ([]PathToken, error) {
	if path == "" {
		return nil, ErrPathEmpty
	}

	runes := []rune(path)
	var tokens []PathToken
	i := 0

	for i < len(runes) {
		if runes[i] == '.' {
			return nil, ErrPathEmptyKey
		}

		if runes[i] == '[' {
			tok, next, err := parseBracket(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		} else {
			start := i
			for i < len(runes) && runes[i] != '.' && runes[i] != '[' {
				i++
			}
			if start == i {
				return nil, ErrPathEmptyKey
			}
			tokens = append(tokens, KeyToken(string(runes[start:i])))
		}

		for i < len(runes) && runes[i] == '[' {
			tok, next, err := parseBracket(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		}

		if i < len(runes) {
			if runes[i] != '.' {
				return nil, ErrPathSyntax
			}
			i++
			if i == len(runes) {
				return nil, ErrPathSyntax
			}
		}
	}

	return tokens, nil
}

func parseBracket(runes []rune, start int) (PathToken, int, error) {
	i := start + 1
	if i >= len(runes) {
		return PathToken{}, 0, ErrPathSyntax
	}

	switch {
	case runes[i] == '"' || runes[i] == '\'':
		return parseQuoted(runes, i)
	case runes[i] >= '0' && runes[i] <= '9':
		return parseIndex(runes, i)
	default:
		return PathToken{}, 0, ErrPathSyntax
	}
}

func parseIndex(runes []rune, start int) (PathToken, int, error) {
	i := start
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i >= len(runes) || runes[i] != ']' {
		return PathToken{}, 0, ErrPathSyntax
	}
	value, err := strconv.Atoi(string(runes[start:i]))
	if err != nil {
		return PathToken{}, 0, fmt.Errorf("%w: %v", ErrPathSyntax, err)
	}
	return IndexToken(value), i + 1, nil
}

func parseQuoted(runes []rune, start int) (PathToken, int, error) {
	quote := runes[start]
	i := start + 1
	var sb strings.Builder
	closed := false

	for i < len(runes) {
		ch := runes[i]
		if ch == '\\' {
			i++
			if i >= len(runes) {
				return PathToken{}, 0, ErrPathEscape
			}
			escaped := runes[i]
			if escaped != '\\' && escaped != quote {
				return PathToken{}, 0, ErrPathEscape
			}
			sb.WriteRune(escaped)
			i++
			continue
		}
		if ch == '[' || ch == ']' {
			return PathToken{}, 0, ErrPathSyntax
		}
		if ch == quote {
			i++
			closed = true
			break
		}
		sb.WriteRune(ch)
		i++
	}

	if sb.Len() == 0 {
		return PathToken{}, 0, ErrPathEmptyKey
	}
	if !closed {
		return PathToken{}, 0, ErrPathSyntax
	}
	if i >= len(runes) || runes[i] != ']' {
		return PathToken{}, 0, ErrPathSyntax
	}
	return KeyToken(sb.String()), i + 1, nil
}
