package tachyon

import (
	"math/rand"
	"strconv"
)

const stringAlphabet = "abcxyz019 _-\"\\\x00\x01\x08\x09\x0a\x0b\x0c\x0d\x1b\x1f/~"

func randomString(r *rand.Rand) string {
	n := r.Intn(20)
	out := make([]byte, 0, n+2)
	for i := 0; i < n; i++ {
		if r.Intn(10) == 0 {
			out = append(out, "é"...)
			continue
		}
		out = append(out, stringAlphabet[r.Intn(len(stringAlphabet))])
	}
	return string(out)
}

// keys avoid anything that would need escaping
func randomKey(r *rand.Rand, i int) string {
	lengths := []int{1, 3, 6, 7, 7, 12, 13, 13, 20}
	n := lengths[r.Intn(len(lengths))]
	key := make([]byte, n)
	for j := range key {
		key[j] = byte('a' + r.Intn(26))
	}
	return string(key) + strconv.Itoa(i)
}

func randomTree(r *rand.Rand, depth int) Value {
	k := r.Intn(8)
	if depth <= 0 && (k == 2 || k == 3) {
		k = 0
	}
	switch k {
	case 0:
		return String(randomString(r))
	case 1:
		return Number(float64(r.Intn(4000)-2000) / 8)
	case 2:
		pairs := make([]Pair, r.Intn(6))
		for i := range pairs {
			pairs[i] = KV(randomKey(r, i), randomMember(r, depth-1))
		}
		return ObjectOf(pairs)
	case 3:
		items := make([]Value, r.Intn(6))
		for i := range items {
			items[i] = randomMember(r, depth-1)
		}
		return ArrayOf(items)
	case 4:
		return True
	case 5:
		return False
	case 6:
		return Null
	default:
		return String("")
	}
}

func randomMember(r *rand.Rand, depth int) Value {
	if r.Intn(4) == 0 {
		return Undefined
	}
	return randomTree(r, depth)
}

// strip rebuilds v with every Undefined member and element removed.
func strip(v Value) Value {
	switch v.Kind() {
	case KindObject:
		pairs := make([]Pair, 0, len(v.Pairs()))
		for _, p := range v.Pairs() {
			if p.Value.IsUndefined() {
				continue
			}
			pairs = append(pairs, KV(p.Key, strip(p.Value)))
		}
		return ObjectOf(pairs)
	case KindArray:
		items := make([]Value, 0, len(v.Items()))
		for _, it := range v.Items() {
			if it.IsUndefined() {
				continue
			}
			items = append(items, strip(it))
		}
		return ArrayOf(items)
	default:
		return v
	}
}

// toAny mirrors the tree the way a generic JSON decoder would see it.
func toAny(v Value) any {
	switch v.Kind() {
	case KindString:
		return v.Str()
	case KindNumber:
		return v.Num()
	case KindObject:
		m := make(map[string]any, len(v.Pairs()))
		for _, p := range v.Pairs() {
			if p.Value.IsUndefined() {
				continue
			}
			m[p.Key] = toAny(p.Value)
		}
		return m
	case KindArray:
		out := make([]any, 0, len(v.Items()))
		for _, it := range v.Items() {
			if it.IsUndefined() {
				continue
			}
			out = append(out, toAny(it))
		}
		return out
	case KindTrue:
		return true
	case KindFalse:
		return false
	default:
		return nil
	}
}

func encodeString(v Value, capacity int, noEscape bool) (string, bool) {
	b := NewBuffer(capacity)
	v.Encode(b, noEscape)
	return string(b.Bytes()), b.Failed()
}
