package embedding

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a vector as a JSON numeric array, the format the
// identities table stores. The array is ordered and round-trips exactly;
// matching correctness depends on that.
func Encode(vec []float64) (string, error) {
	if len(vec) == 0 {
		return "", fmt.Errorf("embedding: encode empty vector")
	}
	b, err := json.Marshal(vec)
	if err != nil {
		return "", fmt.Errorf("embedding: encode: %w", err)
	}
	return string(b), nil
}

// Decode parses a stored JSON numeric array back into a vector and
// validates its dimensionality.
func Decode(raw string, dim int) ([]float64, error) {
	var vec []float64
	if err := json.Unmarshal([]byte(raw), &vec); err != nil {
		return nil, fmt.Errorf("embedding: decode: %w", err)
	}
	if len(vec) != dim {
		return nil, fmt.Errorf("embedding: decoded dim %d, want %d", len(vec), dim)
	}
	return vec, nil
}
