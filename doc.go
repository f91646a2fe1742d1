// Package tachyon encodes in-memory JSON value trees into fixed-capacity
// buffers without allocating.
//
// A tree is built from Values over borrowed data (see Obj, Arr, KV) and
// written with Value.Encode into a caller-owned Buffer. Overflow never
// panics or grows the buffer: the write is dropped and the Buffer's sticky
// failure flag is set, so callers check Buffer.Failed once after encoding.
// Encoder offers the same operation with error returns.
//
//	b := tachyon.NewBuffer(256)
//	v := tachyon.Obj(tachyon.KV("a", tachyon.String("x")), tachyon.KV("c", tachyon.Number(1.5)))
//	v.Encode(b, false)
//	if b.Failed() {
//		// too small
//	}
//	_ = b.Bytes() // {"a":"x","c":1.5}
//
// Object keys are never escaped. They are expected to be trusted constants.
package tachyon
