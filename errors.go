package classifier

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTrainingSet is returned by Train when there are no documents to learn from.
	ErrEmptyTrainingSet = errors.New("classifier: empty training set")
	// ErrDimensionMismatch is matched by every DimensionMismatchError.
	ErrDimensionMismatch = errors.New("classifier: dimension mismatch")
	// ErrLabelCountMismatch is returned when vectors and labels differ in length.
	ErrLabelCountMismatch = errors.New("classifier: label count does not match document count")
	// ErrInvalidLabel is returned for labels other than Ham and Spam.
	ErrInvalidLabel = errors.New("classifier: invalid label")
	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("classifier: unknown vectorization mode")
)

// DimensionMismatchError is returned when a vector's length does not match
// the vocabulary or model it is used with.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("classifier: vector has %d features, expected %d", e.Got, e.Want)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
