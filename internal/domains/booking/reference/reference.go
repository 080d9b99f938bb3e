package reference

//go:generate go run go.uber.org/mock/mockgen -source=./reference.go -destination=./mocks/reference_mock.go -package=mocks

import (
	"fmt"
	"math/rand/v2"
	"petcare/shared/timezone"
	"strconv"
	"strings"
)

const (
	timestampDigits = 1_000_000
	suffixLength    = 4
	suffixSpace     = 36 * 36 * 36 * 36
)

// Generator issues human-readable booking references. Uniqueness is not checked here: the
// reference_number index rejects the rare duplicate and the caller retries.
type Generator interface {
	Generate(prefix string) string
}

type generatorImpl struct {
	clock timezone.Clock
}

func New(clock timezone.Clock) Generator {
	return &generatorImpl{clock: clock}
}

// Generate returns prefix, the last six digits of the epoch milliseconds and four random
// base36 characters, e.g. RB482913K7QZ.
func (g *generatorImpl) Generate(prefix string) string {
	millis := g.clock().UnixMilli() % timestampDigits

	suffix := strings.ToUpper(strconv.FormatInt(rand.Int64N(suffixSpace), 36)) //nolint:gosec
	suffix = strings.Repeat("0", suffixLength-len(suffix)) + suffix

	return fmt.Sprintf("%s%06d%s", prefix, millis, suffix)
}
