package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestRequest(t *testing.T) {
	now := time.Date(2024, time.April, 2, 9, 0, 0, 0, time.Local)

	payload, at, err := digestRequest(0, 0, "", now)
	require.NoError(t, err)
	assert.Zero(t, payload.Month)
	assert.Zero(t, payload.Year)
	assert.Equal(t, now, at)

	payload, _, err = digestRequest(2, 0, "", now)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Month)
	assert.Equal(t, 2024, payload.Year)

	_, at, err = digestRequest(3, 2023, "2024-04-03 06:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 3, 6, 30, 0, 0, time.Local), at)
}

func TestDigestRequest_Invalid(t *testing.T) {
	now := time.Now()

	_, _, err := digestRequest(13, 2024, "", now)
	assert.Error(t, err)

	_, _, err = digestRequest(0, 0, "tomorrow", now)
	assert.Error(t, err)
}
