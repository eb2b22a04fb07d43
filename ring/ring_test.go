package ring

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestRingBuffer_New(t *testing.T) {
	r := New[int](4)
	assert.Equal(t, 4, r.Cap())
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsFull())
	assert.Equal(t, api.StateEmpty, r.State())
}

func TestRingBuffer_NewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -256} {
		t.Run(strconv.Itoa(capacity), func(t *testing.T) {
			defer func() {
				rec := recover()
				require.NotNil(t, rec)
				err, ok := rec.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, api.ErrInvalidCapacity)
			}()
			New[int](capacity)
		})
	}
}

// Mirrors the message queue scenario: 256 slots of string pointers.
func TestRingBuffer_CannotInsertWhenFull(t *testing.T) {
	queue := New[*string](256)

	for i := 0; i < 255; i++ {
		msg := strconv.Itoa(i)
		require.True(t, queue.Insert(&msg))
	}
	assert.False(t, queue.IsFull())

	msg := "255"
	assert.True(t, queue.Insert(&msg))
	assert.True(t, queue.IsFull())

	overflow := "256"
	assert.False(t, queue.Insert(&overflow))
	assert.Equal(t, 256, queue.Len())

	first, ok := queue.Peek()
	require.True(t, ok)
	assert.Equal(t, "0", *first)
}

func TestRingBuffer_FillThenReject(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 64} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			r := New[int](n)
			for i := 0; i < n; i++ {
				assert.False(t, r.IsFull(), "full before insert %d", i)
				require.True(t, r.Insert(i))
			}
			assert.True(t, r.IsFull())
			assert.Equal(t, api.StateFull, r.State())

			before := r.Items()
			for i := 0; i < 5; i++ {
				assert.False(t, r.Insert(-1))
				assert.Equal(t, n, r.Len())
			}
			assert.Equal(t, before, r.Items(), "rejected inserts must not touch contents")
		})
	}
}

func TestRingBuffer_FIFO(t *testing.T) {
	r := New[string](5)
	in := []string{"a", "b", "c", "d"}
	for _, v := range in {
		require.True(t, r.Insert(v))
	}
	assert.Equal(t, api.StatePartial, r.State())

	var out []string
	for range in {
		v, ok := r.Pop()
		require.True(t, ok)
		out = append(out, v)
	}
	assert.Equal(t, in, out)
	assert.True(t, r.IsEmpty())
}

func TestRingBuffer_WrapAround(t *testing.T) {
	r := New[int](3)
	next := 0
	var got []int
	// Keep the ring partially full while head and tail lap several times.
	for round := 0; round < 10; round++ {
		for !r.IsFull() {
			require.True(t, r.Insert(next))
			next++
		}
		for i := 0; i < 2; i++ {
			v, ok := r.Pop()
			require.True(t, ok)
			got = append(got, v)
		}
	}
	got = append(got, r.Items()...)
	for i, v := range got {
		require.Equal(t, i, v)
	}
	assert.Len(t, got, next)
}

func TestRingBuffer_PopFromFullClearsFull(t *testing.T) {
	r := New[int](2)
	r.Insert(1)
	r.Insert(2)
	require.True(t, r.IsFull())

	v, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, r.IsFull())
	assert.Equal(t, 1, r.Len())
}

func TestRingBuffer_Underflow(t *testing.T) {
	r := New[int](2)
	for i := 0; i < 3; i++ {
		v, ok := r.Pop()
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.Equal(t, 0, r.Len())
	}
	_, ok := r.Peek()
	assert.False(t, ok)
}

// A stored zero value must stay distinguishable from an empty ring.
func TestRingBuffer_ZeroValueElement(t *testing.T) {
	r := New[int](1)
	require.True(t, r.Insert(0))
	v, ok := r.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	_, ok = r.Pop()
	assert.False(t, ok)
}

func TestRingBuffer_RoundTrip(t *testing.T) {
	r := New[string](8)
	require.True(t, r.Insert("x"))
	v, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.True(t, r.IsEmpty())
}

func TestRingBuffer_PopZeroesSlot(t *testing.T) {
	r := New[*int](2)
	v := 7
	r.Insert(&v)
	r.Pop()
	for _, slot := range r.data {
		assert.Nil(t, slot)
	}
}

func TestRingBuffer_Items(t *testing.T) {
	t.Run("empty returns nil", func(t *testing.T) {
		assert.Nil(t, New[int](3).Items())
	})

	t.Run("wrapped contents in order", func(t *testing.T) {
		r := New[int](3)
		r.Insert(1)
		r.Insert(2)
		r.Insert(3)
		r.Pop()
		r.Insert(4)

		items := r.Items()
		assert.Equal(t, []int{2, 3, 4}, items)

		items[0] = 100
		v, _ := r.Peek()
		assert.Equal(t, 2, v, "Items must return a copy")
	})
}

func TestRingBuffer_All(t *testing.T) {
	r := New[int](4)
	for i := 0; i < 4; i++ {
		r.Insert(i)
	}
	r.Pop()
	r.Insert(4)

	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(r.All()))
	assert.Equal(t, 4, r.Len(), "iteration must not consume")

	var first []int
	for v := range r.All() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, first)
}

func TestRingBuffer_Reset(t *testing.T) {
	r := New[int](3)
	r.Insert(1)
	r.Insert(2)
	r.Insert(3)

	r.Reset()

	assert.True(t, r.IsEmpty())
	assert.Nil(t, r.Items())
	assert.Equal(t, 3, r.Cap())

	r.Insert(10)
	assert.Equal(t, []int{10}, r.Items())
}

func TestRingBuffer_OccupancyQueries(t *testing.T) {
	r := New[int](4)
	check := func() {
		t.Helper()
		assert.Equal(t, r.Len() == 0, r.IsEmpty())
		assert.Equal(t, r.Len() == r.Cap(), r.IsFull())
		assert.GreaterOrEqual(t, r.Len(), 0)
		assert.LessOrEqual(t, r.Len(), r.Cap())
	}
	ops := []bool{true, true, false, true, true, true, true, false, false, false, false, false}
	for i, insert := range ops {
		if insert {
			r.Insert(i)
		} else {
			r.Pop()
		}
		check()
	}
}
