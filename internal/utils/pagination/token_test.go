package pagination_test

import (
	"testing"
	"time"

	"github.com/klarbok/klarbok_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	verificationDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 10, 14, 32, 11, 123456789, time.UTC)

	token := pagination.EncodeToken(verificationDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, verificationDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	cases := []string{
		"not-base64!!",
		"bm8tc2VwYXJhdG9y",             // "no-separator"
		"bm90LWEtZGF0ZXxhbHNvLW5vdA==", // "not-a-date|also-not"
	}
	for _, token := range cases {
		_, _, err := pagination.DecodeToken(token)
		assert.Error(t, err, "token %q should not decode", token)
	}
}
