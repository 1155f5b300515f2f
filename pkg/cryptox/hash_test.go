package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAccessToken(t *testing.T) {
	hash, err := HashAccessToken("some-secret")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, VerifyAccessToken("some-secret", hash))
	require.Error(t, VerifyAccessToken("wrong-secret", hash))
}

func TestHashAccessToken_SaltedPerCall(t *testing.T) {
	a, err := HashAccessToken("secret")
	require.NoError(t, err)
	b, err := HashAccessToken("secret")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyAccessToken_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"too few parts", "$argon2id$v=19"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, VerifyAccessToken("secret", tt.hash))
		})
	}
}
