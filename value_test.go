package tachyon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessors(t *testing.T) {
	var zero Value
	assert.Equal(t, KindUndefined, zero.Kind())
	assert.True(t, zero.IsUndefined())

	assert.Equal(t, "x", String("x").Str())
	assert.Equal(t, 2.5, Number(2.5).Num())
	assert.Equal(t, KindTrue, Bool(true).Kind())
	assert.Equal(t, KindFalse, Bool(false).Kind())

	pairs := []Pair{KV("a", Null)}
	obj := ObjectOf(pairs)
	assert.Equal(t, KindObject, obj.Kind())
	// borrowed, not copied
	assert.Same(t, &pairs[0], &obj.Pairs()[0])

	items := []Value{True, False}
	arr := ArrayOf(items)
	assert.Same(t, &items[1], &arr.Items()[1])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "undefined", KindUndefined.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestStrObj(t *testing.T) {
	v := StrObj("a", "1", "b", "2")
	assert.Len(t, v.Pairs(), 2)
	assert.Equal(t, "b", v.Pairs()[1].Key)
	assert.Equal(t, "2", v.Pairs()[1].Value.Str())
	assert.Panics(t, func() { StrObj("dangling") })
}
