package tachyon

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindUndefined is the zero Kind: an omission marker that is never
	// written. Members and elements holding it are skipped.
	KindUndefined Kind = iota
	KindString
	KindNumber
	KindObject
	KindArray
	KindTrue
	KindFalse
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is one node of a JSON value tree. The zero Value is Undefined.
//
// Objects and arrays borrow the slices they are built from; nothing is
// copied. The backing storage must outlive every Encode call that reads the
// tree and must not be modified while one is running.
type Value struct {
	kind  Kind
	num   float64
	str   string
	pairs []Pair
	items []Value
}

// Pair is one object member.
//
// Keys are trusted: they are written verbatim and never escaped, whatever
// escaping mode the encode runs in. A key containing '"', '\\' or a control
// byte produces invalid JSON.
type Pair struct {
	Key   string
	Value Value
}

var (
	True      = Value{kind: KindTrue}
	False     = Value{kind: KindFalse}
	Null      = Value{kind: KindNull}
	Undefined = Value{}
)

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns True or False.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// ObjectOf returns an object viewing pairs in order.
func ObjectOf(pairs []Pair) Value { return Value{kind: KindObject, pairs: pairs} }

// ArrayOf returns an array viewing items in order.
func ArrayOf(items []Value) Value { return Value{kind: KindArray, items: items} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// Str returns the payload of a String value.
func (v Value) Str() string { return v.str }

// Num returns the payload of a Number value.
func (v Value) Num() float64 { return v.num }

// Pairs returns the borrowed member list of an Object value.
func (v Value) Pairs() []Pair { return v.pairs }

// Items returns the borrowed element list of an Array value.
func (v Value) Items() []Value { return v.items }
