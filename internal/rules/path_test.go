// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []PathToken
	}{
		{"single key", "user", []PathToken{KeyToken("user")}},
		{"dotted keys", "user.address.city", []PathToken{
			KeyToken("user"), KeyToken("address"), KeyToken("city"),
		}},
		{"index after key", "items[0]", []PathToken{
			KeyToken("items"), IndexToken(0),
		}},
		{"index then key", "items[2].name", []PathToken{
			KeyToken("items"), IndexToken(2), KeyToken("name"),
		}},
		{"leading index", "[0].name", []PathToken{
			IndexToken(0), KeyToken("name"),
		}},
		{"double-quoted key", `user["weird.key"]`, []PathToken{
			KeyToken("user"), KeyToken("weird.key"),
		}},
		{"single-quoted key", `user['k']`, []PathToken{
			KeyToken("user"), KeyToken("k"),
		}},
		{"escaped quote", `user["a\"b"]`, []PathToken{
			KeyToken("user"), KeyToken(`a"b`),
		}},
		{"escaped backslash", `user["a\\b"]`, []PathToken{
			KeyToken("user"), KeyToken(`a\b`),
		}},
		{"consecutive brackets", `m["a"]["b"]`, []PathToken{
			KeyToken("m"), KeyToken("a"), KeyToken("b"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePath_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty path", "", ErrPathEmpty},
		{"lone dot", ".", ErrPathEmptyKey},
		{"double dot", "a..b", ErrPathEmptyKey},
		{"trailing dot", "a.", ErrPathSyntax},
		{"leading dot", ".a", ErrPathEmptyKey},
		{"bare word in brackets", "a[b]", ErrPathSyntax},
		{"empty quoted key", `a[""]`, ErrPathEmptyKey},
		{"unclosed quote", `a["x`, ErrPathSyntax},
		{"unclosed bracket", "a[0", ErrPathSyntax},
		{"bad escape", `a["x\q"]`, ErrPathEscape},
		{"dangling escape", `a["x\`, ErrPathEscape},
		{"junk after digits", "a[1x]", ErrPathSyntax},
		{"negative index", "a[-1]", ErrPathSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
