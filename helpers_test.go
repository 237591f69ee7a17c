package dynstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tracked counts live instances. One byte, byte aligned.
type tracked struct {
	state byte
}

var liveTracked int

func (t *tracked) Init() {
	liveTracked++
	t.state = 1
}

func (t *tracked) Destroy() {
	liveTracked--
	t.state = 0
}

// ordered records the order in which elements are destroyed.
type ordered struct {
	idx int32
}

var (
	nextOrdered  int32
	destroyOrder []int32
)

func (o *ordered) Init() {
	o.idx = nextOrdered
	nextOrdered++
}

func (o *ordered) Destroy() {
	destroyOrder = append(destroyOrder, o.idx)
}

// exploding fails to initialise.
type exploding struct {
	_ int32
}

func (*exploding) Init() {
	panic("init failed")
}

// brittle panics in Init once brittleLimit instances are live.
type brittle struct {
	idx int32
}

var (
	liveBrittle      int
	brittleLimit     int
	brittleDestroyed []int
)

func (b *brittle) Init() {
	if liveBrittle == brittleLimit {
		panic("init failed")
	}
	b.idx = int32(liveBrittle)
	liveBrittle++
}

func (b *brittle) Destroy() {
	brittleDestroyed = append(brittleDestroyed, int(b.idx))
	liveBrittle--
}

func resetCounters(t *testing.T) {
	t.Helper()
	clearCounters()
	t.Cleanup(clearCounters)
}

func clearCounters() {
	liveTracked = 0
	nextOrdered = 0
	destroyOrder = nil
	liveBrittle = 0
	brittleLimit = 0
	brittleDestroyed = nil
}

// requirePanicsWith runs fn and requires it to panic with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a panic wrapping %v", target)
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
