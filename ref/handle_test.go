package ref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracked counts how often it is disposed.
type tracked struct {
	name     string
	disposed *int
}

func (p *tracked) Dispose() {
	if p.disposed != nil {
		*p.disposed++
	}
}

// closer reports Close calls and can fail.
type closer struct {
	closed *int
	err    error
}

func (c *closer) Close() error {
	*c.closed++
	return c.err
}

func TestZeroHandle_IsInvalid(t *testing.T) {
	t.Parallel()
	var h Handle[int]
	assert.False(t, h.IsValid())
	assert.Equal(t, 0, h.Owners())

	_, err := h.TryGet()
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.PanicsWithValue(t, ErrInvalidHandle, func() { h.Get() })
}

func TestNew_OneOwnerZeroPayload(t *testing.T) {
	t.Parallel()
	h := New[tracked]()
	require.True(t, h.IsValid())
	assert.Equal(t, 1, h.Owners())
	assert.Equal(t, "", h.Get().name)
}

func TestNewValue_CopiesValue(t *testing.T) {
	t.Parallel()
	v := 41
	h := NewValue(v)
	*h.Get()++
	assert.Equal(t, 41, v)
	assert.Equal(t, 42, *h.Get())
}

func TestClone_SharesCellAndCounts(t *testing.T) {
	t.Parallel()
	disposed := 0
	a := NewValue(tracked{name: "a", disposed: &disposed})
	b := a.Clone()

	assert.True(t, a.Same(&b))
	assert.Equal(t, 2, a.Owners())
	b.Get().name = "changed through b"
	assert.Equal(t, "changed through b", a.Get().name)

	a.Release()
	assert.False(t, a.IsValid())
	assert.Equal(t, 1, b.Owners())
	assert.Equal(t, 0, disposed)

	b.Release()
	assert.Equal(t, 1, disposed)
	assert.False(t, b.IsValid())
}

func TestClone_InvalidYieldsInvalid(t *testing.T) {
	t.Parallel()
	var a Handle[int]
	b := a.Clone()
	assert.False(t, b.IsValid())
}

func TestMove_TransfersWithoutCounting(t *testing.T) {
	t.Parallel()
	a := NewValue(7)
	b := a.Move()

	assert.False(t, a.IsValid())
	require.True(t, b.IsValid())
	assert.Equal(t, 1, b.Owners())
	assert.Equal(t, 7, *b.Get())
}

func TestRelease_Idempotent(t *testing.T) {
	t.Parallel()
	disposed := 0
	h := NewValue(tracked{disposed: &disposed})
	h.Release()
	h.Release()
	assert.Equal(t, 1, disposed)
	assert.False(t, h.IsValid())
}

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("replaces and releases previous cell", func(t *testing.T) {
		oldDisposed, newDisposed := 0, 0
		dst := NewValue(tracked{name: "old", disposed: &oldDisposed})
		src := NewValue(tracked{name: "new", disposed: &newDisposed})

		dst.Assign(&src)
		assert.Equal(t, 1, oldDisposed)
		assert.True(t, dst.Same(&src))
		assert.Equal(t, 2, src.Owners())
		assert.Equal(t, "new", dst.Get().name)

		dst.Release()
		src.Release()
		assert.Equal(t, 1, newDisposed)
	})

	t.Run("from invalid makes destination invalid", func(t *testing.T) {
		disposed := 0
		dst := NewValue(tracked{disposed: &disposed})
		var src Handle[tracked]
		dst.Assign(&src)
		assert.False(t, dst.IsValid())
		assert.Equal(t, 1, disposed)
	})

	t.Run("self assignment is a no-op", func(t *testing.T) {
		h := NewValue(3)
		h.Assign(&h)
		assert.Equal(t, 1, h.Owners())
		assert.Equal(t, 3, *h.Get())
	})

	t.Run("assign between owners of the same cell keeps the count", func(t *testing.T) {
		a := NewValue(3)
		b := a.Clone()
		b.Assign(&a)
		assert.Equal(t, 2, a.Owners())
	})
}

func TestMoveFrom(t *testing.T) {
	t.Parallel()

	t.Run("takes ownership and releases previous", func(t *testing.T) {
		oldDisposed := 0
		dst := NewValue(tracked{name: "old", disposed: &oldDisposed})
		src := NewValue(tracked{name: "new"})

		dst.MoveFrom(&src)
		assert.False(t, src.IsValid())
		assert.Equal(t, 1, oldDisposed)
		assert.Equal(t, "new", dst.Get().name)
		assert.Equal(t, 1, dst.Owners())
	})

	t.Run("self move is a no-op", func(t *testing.T) {
		h := NewValue(5)
		h.MoveFrom(&h)
		require.True(t, h.IsValid())
		assert.Equal(t, 5, *h.Get())
		assert.Equal(t, 1, h.Owners())
	})

	t.Run("move between owners of the same cell drops one owner", func(t *testing.T) {
		a := NewValue(5)
		b := a.Clone()
		b.MoveFrom(&a)
		assert.False(t, a.IsValid())
		assert.Equal(t, 1, b.Owners())
	})
}

func TestClose_ReportsCloserError(t *testing.T) {
	t.Parallel()
	closed := 0
	boom := errors.New("close failed")
	h := NewValue(closer{closed: &closed, err: boom})
	other := h.Clone()

	require.NoError(t, h.Close(), "not the last owner")
	assert.Equal(t, 0, closed)

	assert.ErrorIs(t, other.Close(), boom)
	assert.Equal(t, 1, closed)
	assert.NoError(t, other.Close(), "already invalid")
}

func TestDispose_ClearsPayload(t *testing.T) {
	t.Parallel()
	h := NewValue("payload")
	c := h.c
	h.Release()
	assert.Equal(t, "", c.payload)
	assert.Equal(t, 0, c.owners)
}

func TestNilHandle_Safe(t *testing.T) {
	t.Parallel()
	var h *Handle[int]
	assert.False(t, h.IsValid())
	moved := h.Move()
	assert.False(t, moved.IsValid())
}
