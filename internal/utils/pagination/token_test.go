package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	dueDate := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(dueDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDueDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, dueDate, decodedDueDate, "Due date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Zero time values survive the round trip
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err, "Invalid base64 should fail")

	_, _, err = DecodeToken("aGVsbG8=") // "hello", no separator
	assert.Error(t, err, "Token without separator should fail")

	_, _, err = DecodeToken("bm90fGRhdGVz") // "not|dates"
	assert.Error(t, err, "Token with unparseable dates should fail")
}

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 9, 15, 0, 987654321, time.UTC)

	token := EncodeDateBasedToken(createdAt)
	assert.NotEmpty(t, token)

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err)
	assert.Equal(t, createdAt, decoded)

	_, err = DecodeDateBasedToken("%%%")
	assert.Error(t, err, "Invalid base64 should fail")
}
