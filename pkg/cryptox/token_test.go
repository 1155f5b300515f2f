package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret()
	require.NoError(t, err)

	// 32 bytes base64url without padding is always 43 characters.
	require.Len(t, secret, 43)

	raw, err := base64.RawURLEncoding.DecodeString(secret)
	require.NoError(t, err)
	require.Len(t, raw, SecretSize)
}

func TestGenerateSecret_Unique(t *testing.T) {
	const count = 100
	seen := make(map[string]bool, count)

	for range count {
		secret, err := GenerateSecret()
		require.NoError(t, err)
		require.NotContains(t, seen, secret, "duplicate secret generated")
		seen[secret] = true
	}
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(16)
	require.NoError(t, err)
	require.Len(t, code, 16)

	for _, c := range code {
		require.True(t, strings.ContainsRune(CodeAlphabet, c),
			"code contains character outside alphabet: %q", c)
	}
}

func TestGenerateCode_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"zero length", 0},
		{"negative length", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCode(tt.length)
			require.Error(t, err)
			require.Empty(t, code)
		})
	}
}

func TestGenerateCode_Unique(t *testing.T) {
	a, err := GenerateCode(16)
	require.NoError(t, err)
	b, err := GenerateCode(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
