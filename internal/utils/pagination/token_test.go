package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTransactionToken(t *testing.T) {
	date := time.Date(2026, 3, 15, 14, 30, 45, 123456789, time.UTC)
	id := "0b8f3c1e-5d0a-4c8e-9a51-2f7f0c6a1b23"

	token := EncodeTransactionToken(date, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeTransactionToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate), "Date should match after decode")
	assert.Equal(t, id, decodedID)
}

func TestEncodeTransactionToken_NormalizesToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	date := time.Date(2026, 1, 1, 5, 0, 0, 0, ist)

	decodedDate, _, err := DecodeTransactionToken(EncodeTransactionToken(date, "id-1"))
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate))
	assert.Equal(t, time.UTC, decodedDate.Location())
}

func TestDecodeTransactionTokenError(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		errPart string
	}{
		{name: "not base64", token: "this is not base64!", errPart: "base64 decode"},
		{name: "missing separator", token: base64.URLEncoding.EncodeToString([]byte("2026-03-15T00:00:00Z")), errPart: "split"},
		{name: "empty id", token: base64.URLEncoding.EncodeToString([]byte("2026-03-15T00:00:00Z|")), errPart: "split"},
		{name: "bad date", token: base64.URLEncoding.EncodeToString([]byte("notadate|id-1")), errPart: "date parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeTransactionToken(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
