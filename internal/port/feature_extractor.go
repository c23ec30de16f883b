package port

import "context"

type FeatureExtractor interface {
	// Extract reduces a photo to its face embedding. It returns
	// domain.ErrInvalidImage for an undecodable photo and
	// domain.ErrNoFaceDetected when no face is present.
	Extract(ctx context.Context, photo []byte) ([]float64, error)
}
