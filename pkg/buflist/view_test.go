package buflist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPrefixPresentsClampedView(t *testing.T) {
	var l List[int]
	for i := 1; i <= 6; i++ {
		l.Add(i)
	}

	called := false
	l.WithPrefix(4, func(view []int) {
		called = true
		require.Len(t, view, 4)
		assert.Equal(t, []int{1, 2, 3, 4}, view)
	})
	require.True(t, called)

	// Requested length beyond the live region clamps to Len().
	l.WithPrefix(100, func(view []int) {
		assert.Len(t, view, 6)
	})

	// The list itself is untouched.
	assert.Equal(t, 6, l.Len())
}

func TestWithPrefixNoOps(t *testing.T) {
	var l List[int]
	l.Add(1)

	l.WithPrefix(3, nil)
	l.WithPrefix(0, func(view []int) { t.Fatal("callback must not run for n <= 0") })
	l.WithPrefix(-1, func(view []int) { t.Fatal("callback must not run for n <= 0") })
}

func TestWithPrefixIsZeroCopy(t *testing.T) {
	var l List[int]
	l.Add(10)
	l.Add(20)

	l.WithPrefix(2, func(view []int) {
		view[0] = 99 // writes through to the backing buffer
	})
	assert.Equal(t, 99, l.Buffer()[0])
}

func TestWithPrefixSurvivesCallbackPanic(t *testing.T) {
	var l List[int]
	for i := 1; i <= 5; i++ {
		l.Add(i)
	}

	func() {
		defer func() {
			require.NotNil(t, recover(), "panic should propagate")
		}()
		l.WithPrefix(3, func(view []int) {
			panic("boom")
		})
	}()

	// Size and untouched data are intact after the panic.
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Buffer()[:l.Len()])
}

func TestWithLivePresentsExactlyTheLiveRegion(t *testing.T) {
	var l List[string]
	l.Add("a")
	l.Add("b")
	l.Add("c")
	l.Pop()

	var got []string
	l.WithLive(func(view []string) {
		got = append(got, view...)
	})
	assert.Equal(t, []string{"a", "b"}, got)

	// Empty list: no callback.
	var empty List[string]
	empty.WithLive(func(view []string) { t.Fatal("callback must not run for an empty list") })
}
