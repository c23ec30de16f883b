package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTripExact(t *testing.T) {
	vec := make([]float64, 128)
	for i := range vec {
		vec[i] = math.Sin(float64(i)) * 0.137
	}

	raw, err := Encode(vec)
	require.NoError(t, err)

	got, err := Decode(raw, 128)
	require.NoError(t, err)
	assert.Equal(t, vec, got, "decoded vector must equal the original exactly")
}

func TestEncode_EmptyVector(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
}

func TestDecode_DimensionMismatch(t *testing.T) {
	raw, err := Encode([]float64{1, 2, 3})
	require.NoError(t, err)

	_, err = Decode(raw, 128)
	assert.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(`{"not":"an array"}`, 128)
	assert.Error(t, err)
}
