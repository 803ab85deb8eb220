package category

import (
	"iter"
	"reflect"
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type (
	orderID   uuid.UUID
	stamp     time.Time
	rawID     [16]byte
	priority  int8
	flags     [4]bool
	document  struct{ Name *string }
	documents []*document
)

func TestFromReflectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rtype reflect.Type
		want  Enum
	}{
		{"nil type", nil, Unsupported},
		{"string", reflect.TypeFor[string](), Text},
		{"double pointer string", reflect.TypeFor[**string](), Text},
		{"uuid", reflect.TypeFor[uuid.UUID](), Identifier},
		{"named uuid", reflect.TypeFor[orderID](), Identifier},
		{"raw 16 bytes", reflect.TypeFor[rawID](), Identifier},
		{"time", reflect.TypeFor[time.Time](), Timestamp},
		{"named time", reflect.TypeFor[*stamp](), Timestamp},
		{"slice", reflect.TypeFor[[]int](), Sequence},
		{"named slice", reflect.TypeFor[documents](), Sequence},
		{"map", reflect.TypeFor[map[string][]int](), Mapping},
		{"seq", reflect.TypeFor[iter.Seq[string]](), Iterable},
		{"seq2", reflect.TypeFor[iter.Seq2[int, string]](), Iterable},
		{"receive channel", reflect.TypeFor[<-chan int](), Iterable},
		{"bidirectional channel", reflect.TypeFor[chan int](), Iterable},
		{"send channel", reflect.TypeFor[chan<- int](), Unsupported},
		{"plain func", reflect.TypeFor[func() error](), Unsupported},
		{"interface", reflect.TypeFor[error](), Unsupported},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), Unsupported},
		{"struct", reflect.TypeFor[document](), Composite},
		{"pointer to struct", reflect.TypeFor[*document](), Composite},
		{"bool", reflect.TypeFor[*bool](), Value},
		{"named int", reflect.TypeFor[priority](), Value},
		{"float", reflect.TypeFor[float64](), Value},
		{"complex", reflect.TypeFor[complex128](), Value},
		{"duration", reflect.TypeFor[time.Duration](), Value},
		{"array", reflect.TypeFor[flags](), Value},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FromReflectType(tt.rtype))
		})
	}
}

func TestIsIterator(t *testing.T) {
	t.Parallel()

	assert.True(t, IsIterator(reflect.TypeFor[func(func(int) bool)]()))
	assert.True(t, IsIterator(reflect.TypeFor[func(func(int, int) bool)]()))
	assert.False(t, IsIterator(reflect.TypeFor[func(func(int))]()))
	assert.False(t, IsIterator(reflect.TypeFor[func(func(int, int, int) bool)]()))
	assert.False(t, IsIterator(reflect.TypeFor[func(func(int) bool) bool]()))
	assert.False(t, IsIterator(reflect.TypeFor[func(...func(int) bool)]()))
	assert.False(t, IsIterator(reflect.TypeFor[int]()))
}

func TestPointerDepth(t *testing.T) {
	t.Parallel()

	depth, base := PointerDepth(reflect.TypeFor[***document]())
	assert.Equal(t, 3, depth)
	assert.Equal(t, reflect.TypeFor[document](), base)

	depth, base = PointerDepth(reflect.TypeFor[int]())
	assert.Equal(t, 0, depth)
	assert.Equal(t, reflect.TypeFor[int](), base)

	depth, base = PointerDepth(nil)
	assert.Equal(t, 0, depth)
	assert.Nil(t, base)
}

func TestEnumPredicates(t *testing.T) {
	t.Parallel()

	for e := Enum(0); int(e) < Total; e++ {
		assert.False(t, e.IsCollection() && e.IsLeaf(), "%s cannot be both", e)
	}

	assert.True(t, Sequence.IsCollection())
	assert.True(t, Mapping.IsCollection())
	assert.True(t, Iterable.IsCollection())
	assert.True(t, Identifier.IsLeaf())
	assert.False(t, Composite.IsLeaf())
	assert.False(t, Composite.IsCollection())
	assert.Equal(t, "Enum(42)", Enum(42).String())
}

func TestIsNilable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNilable(reflect.Ptr))
	assert.True(t, IsNilable(reflect.Interface))
	assert.True(t, IsNilable(reflect.Chan))
	assert.False(t, IsNilable(reflect.Struct))
	assert.False(t, IsNilable(reflect.Array))
	assert.False(t, IsNilable(reflect.String))
}
