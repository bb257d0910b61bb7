package evaluation

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrHoldOutTooLarge is returned when more documents are held out than exist.
	ErrHoldOutTooLarge = errors.New("evaluation: held-out size exceeds corpus size")
	// ErrNegativeHoldOut is returned for a negative held-out size.
	ErrNegativeHoldOut = errors.New("evaluation: negative held-out size")
)

// Split partitions the indices 0..n-1 into a training set and a held-out set
// of size holdOut. Held-out indices are drawn one at a time from the
// remaining training indices, so no index is chosen twice. Both slices keep
// the order in which rng produced them, so a seeded rng gives a reproducible
// split.
func Split(n, holdOut int, rng *rand.Rand) (train, test []int, err error) {
	if holdOut < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrNegativeHoldOut, holdOut)
	}
	if holdOut > n {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrHoldOutTooLarge, holdOut, n)
	}
	train = make([]int, n)
	for i := range train {
		train[i] = i
	}
	test = make([]int, 0, holdOut)
	for len(test) < holdOut {
		j := rng.Intn(len(train))
		test = append(test, train[j])
		train = append(train[:j], train[j+1:]...)
	}
	return train, test, nil
}
