package reference_test

import (
	"petcare/internal/domains/booking/reference"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var format = regexp.MustCompile(`^RB\d{6}[0-9A-Z]{4}$`)

func TestGenerate_Format(t *testing.T) {
	gen := reference.New(time.Now)

	for range 200 {
		ref := gen.Generate("RB")
		assert.Regexp(t, format, ref)
		assert.Len(t, ref, 12)
	}
}

func TestGenerate_TimestampDigits(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1_748_736_000_042) }

	ref := reference.New(clock).Generate("BK")

	assert.Equal(t, "BK000042", ref[:8])
	assert.Regexp(t, `^[0-9A-Z]{4}$`, ref[8:])
}

func TestGenerate_SuffixVaries(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1_748_736_123_456) }
	gen := reference.New(clock)

	seen := map[string]struct{}{}
	for range 100 {
		seen[gen.Generate("RB")] = struct{}{}
	}

	assert.Greater(t, len(seen), 90)
}
