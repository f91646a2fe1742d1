package tachyon

// Literal helpers for building trees inline:
//
//	v := tachyon.Obj(
//		tachyon.KV("id", tachyon.Number(7)),
//		tachyon.KV("tags", tachyon.Arr(tachyon.String("a"), tachyon.Null)),
//	)

// KV builds a Pair.
func KV(key string, v Value) Pair { return Pair{Key: key, Value: v} }

// Obj builds an object over the argument list.
func Obj(pairs ...Pair) Value { return ObjectOf(pairs) }

// Arr builds an array over the argument list.
func Arr(items ...Value) Value { return ArrayOf(items) }

// StrObj builds an object whose members are all strings from alternating
// keys and values. It panics on an odd argument count.
func StrObj(kv ...string) Value {
	if len(kv)%2 != 0 {
		panic("tachyon: StrObj needs key/value pairs")
	}
	pairs := make([]Pair, len(kv)/2)
	for i := range pairs {
		pairs[i] = Pair{Key: kv[2*i], Value: String(kv[2*i+1])}
	}
	return ObjectOf(pairs)
}
