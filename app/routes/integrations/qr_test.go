package integrations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	payload := NewQRPayload("class-1", "subject-1", "teacher-1", 15, now)

	data, err := payload.Encode()
	require.NoError(t, err)

	decoded, err := DecodeQRPayload(data)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
	assert.Equal(t, now.UnixMilli(), decoded.Timestamp)
	assert.Equal(t, 15, decoded.Duration)
}

func TestNewQRPayloadDefaultDuration(t *testing.T) {
	payload := NewQRPayload("class-1", "subject-1", "teacher-1", 0, time.Now())
	assert.Equal(t, defaultQRValidity, payload.Duration)

	payload = NewQRPayload("class-1", "subject-1", "teacher-1", -5, time.Now())
	assert.Equal(t, defaultQRValidity, payload.Duration)
}

func TestQRPayloadExpired(t *testing.T) {
	issued := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	payload := NewQRPayload("class-1", "subject-1", "teacher-1", 10, issued)

	assert.False(t, payload.Expired(issued))
	assert.False(t, payload.Expired(issued.Add(9*time.Minute)))
	assert.False(t, payload.Expired(issued.Add(10*time.Minute)))
	assert.True(t, payload.Expired(issued.Add(10*time.Minute+time.Second)))
	assert.True(t, payload.Expired(issued.Add(time.Hour)))
}

func TestDecodeQRPayloadInvalid(t *testing.T) {
	_, err := DecodeQRPayload("not json")
	assert.Error(t, err)
}
