package tachyon

import (
	"errors"

	"github.com/rawbytedev/tachyon/internal/common"
	"github.com/rawbytedev/tachyon/internal/fastcopy"
)

var (
	ErrOverflow       = errors.New("tachyon: output does not fit in buffer")
	ErrUndefinedValue = errors.New("tachyon: undefined top-level value")
)

// Options controls encoding.
type Options struct {
	// NoEscape copies string values verbatim. The caller asserts that no
	// string in the tree needs escaping; never set it for untrusted input.
	NoEscape bool
}

// Encoder wraps Value.Encode with error reporting. It keeps no per-call
// state and may be shared between goroutines, each with its own Buffer.
type Encoder struct {
	Opts Options
}

func NewEncoder(opts Options) *Encoder {
	return &Encoder{Opts: opts}
}

// Encode appends v to b. It returns ErrUndefinedValue when v is Undefined
// and ErrOverflow when b is failed after the encode, including when it was
// already failed on entry. The buffer flag is set in both cases.
func (e *Encoder) Encode(b *Buffer, v Value) error {
	if v.kind == KindUndefined {
		b.fail()
		return ErrUndefinedValue
	}
	encode(b, &v, e.Opts.NoEscape)
	if b.failed {
		return ErrOverflow
	}
	return nil
}

// Marshal encodes v into storage and returns the written prefix, which
// aliases storage. On error the prefix is whatever fit before the failure.
func (e *Encoder) Marshal(v Value, storage []byte) ([]byte, error) {
	b := Buffer{buf: storage}
	err := e.Encode(&b, v)
	return b.buf[:b.pos], err
}

// Encode appends the minified JSON form of v to b.
//
// With noEscape set, string values are copied verbatim. Object keys are
// always copied verbatim. A top-level Undefined writes nothing and marks b
// failed; overflow also marks b failed. Either way b.Failed reports it.
func (v Value) Encode(b *Buffer, noEscape bool) {
	if v.kind == KindUndefined {
		b.fail()
		return
	}
	encode(b, &v, noEscape)
}

func encode(b *Buffer, v *Value, noEscape bool) {
	switch v.kind {
	case KindString:
		if noEscape {
			writeVerbatim(b, v.str)
		} else {
			writeEscaped(b, v.str)
		}
	case KindNumber:
		var scratch [32]byte
		b.Write(common.AppendFloat(scratch[:0], v.num))
	case KindObject:
		encodeObject(b, v.pairs, noEscape)
	case KindArray:
		encodeArray(b, v.items, noEscape)
	case KindTrue:
		writeToken(b, common.TokenTrue)
	case KindFalse:
		writeToken(b, common.TokenFalse)
	case KindNull:
		writeToken(b, common.TokenNull)
	case KindUndefined:
		// only reachable for nested values, which callers skip
	}
}

func encodeObject(b *Buffer, pairs []Pair, noEscape bool) {
	if !b.reserve(1) {
		return
	}
	b.writeCharFast('{')
	first := true
	for i := range pairs {
		p := &pairs[i]
		if p.Value.kind == KindUndefined {
			continue
		}
		// ,"key":
		n := len(p.Key) + 3
		if !first {
			n++
		}
		if !b.reserve(n) {
			return
		}
		if !first {
			b.writeCharFast(',')
		}
		first = false
		b.writeCharFast('"')
		b.pos += fastcopy.Copy(b.buf[b.pos:], p.Key)
		b.writeCharFast('"')
		b.writeCharFast(':')
		encode(b, &p.Value, noEscape)
		if b.failed {
			return
		}
	}
	if b.reserve(1) {
		b.writeCharFast('}')
	}
}

func encodeArray(b *Buffer, items []Value, noEscape bool) {
	if !b.reserve(1) {
		return
	}
	b.writeCharFast('[')
	first := true
	for i := range items {
		item := &items[i]
		if item.kind == KindUndefined {
			continue
		}
		if !first {
			if !b.reserve(1) {
				return
			}
			b.writeCharFast(',')
		}
		first = false
		encode(b, item, noEscape)
		if b.failed {
			return
		}
	}
	if b.reserve(1) {
		b.writeCharFast(']')
	}
}

func writeToken(b *Buffer, tok string) {
	if b.reserve(len(tok)) {
		b.writeRaw(tok)
	}
}

// writeVerbatim writes "s" without escaping. The reservation covers the
// fast-copy slack: the overrun byte lands where the closing quote goes.
func writeVerbatim(b *Buffer, s string) {
	if !b.reserve(len(s) + 2) {
		return
	}
	b.writeCharFast('"')
	b.pos += fastcopy.Copy(b.buf[b.pos:], s)
	b.writeCharFast('"')
}

func writeEscaped(b *Buffer, s string) {
	// the escaped form is never shorter than len(s)+2
	if !b.reserve(len(s) + 2) {
		return
	}
	b.writeCharFast('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !common.NeedsEscape(c) {
			continue
		}
		if start < i {
			b.WriteString(s[start:i])
		}
		b.WriteString(common.Escape(c))
		start = i + 1
	}
	if start < len(s) {
		b.WriteString(s[start:])
	}
	b.WriteChar('"')
}
