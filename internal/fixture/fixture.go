// Package fixture loads YAML or JSON documents into tachyon value trees for
// tests and the bench harness.
//
// Mappings keep document order. A node tagged !undefined becomes Undefined,
// so fixtures can exercise member omission.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rawbytedev/tachyon"
	"github.com/rawbytedev/tachyon/internal/common"
	"gopkg.in/yaml.v3"
)

// UndefinedTag marks a node that loads as tachyon.Undefined.
const UndefinedTag = "!undefined"

var (
	ErrEmptyDocument = errors.New("fixture: empty document")
	ErrUnsafeKey     = errors.New("fixture: key needs escaping")
	ErrUnsupported   = errors.New("fixture: unsupported node")
)

// Load decodes the first document in r.
func Load(r io.Reader) (tachyon.Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return tachyon.Undefined, ErrEmptyDocument
		}
		return tachyon.Undefined, fmt.Errorf("fixture: decode: %w", err)
	}
	return FromNode(&doc)
}

func LoadFile(path string) (tachyon.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return tachyon.Undefined, err
	}
	defer f.Close()
	return Load(f)
}

// FromNode converts a parsed YAML node. Keys are written unescaped by the
// encoder, so a key that would need escaping is rejected here.
func FromNode(n *yaml.Node) (tachyon.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return tachyon.Undefined, ErrEmptyDocument
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.MappingNode:
		if n.Tag == UndefinedTag {
			return tachyon.Undefined, nil
		}
		pairs := make([]tachyon.Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return tachyon.Undefined, fmt.Errorf("%w: non-scalar key at line %d", ErrUnsupported, k.Line)
			}
			if !safeKey(k.Value) {
				return tachyon.Undefined, fmt.Errorf("%w: %q at line %d", ErrUnsafeKey, k.Value, k.Line)
			}
			v, err := FromNode(n.Content[i+1])
			if err != nil {
				return tachyon.Undefined, err
			}
			pairs = append(pairs, tachyon.KV(k.Value, v))
		}
		return tachyon.ObjectOf(pairs), nil
	case yaml.SequenceNode:
		if n.Tag == UndefinedTag {
			return tachyon.Undefined, nil
		}
		items := make([]tachyon.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := FromNode(c)
			if err != nil {
				return tachyon.Undefined, err
			}
			items = append(items, v)
		}
		return tachyon.ArrayOf(items), nil
	case yaml.ScalarNode:
		return scalar(n)
	}
	return tachyon.Undefined, fmt.Errorf("%w: kind %d at line %d", ErrUnsupported, n.Kind, n.Line)
}

func scalar(n *yaml.Node) (tachyon.Value, error) {
	switch n.ShortTag() {
	case "!!str":
		return tachyon.String(n.Value), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return tachyon.Undefined, fmt.Errorf("fixture: number at line %d: %w", n.Line, err)
		}
		return tachyon.Number(f), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return tachyon.Undefined, fmt.Errorf("fixture: bool at line %d: %w", n.Line, err)
		}
		return tachyon.Bool(b), nil
	case "!!null":
		return tachyon.Null, nil
	case UndefinedTag:
		return tachyon.Undefined, nil
	}
	return tachyon.Undefined, fmt.Errorf("%w: tag %s at line %d", ErrUnsupported, n.ShortTag(), n.Line)
}

func safeKey(k string) bool {
	for i := 0; i < len(k); i++ {
		if common.NeedsEscape(k[i]) {
			return false
		}
	}
	return true
}

// ToAny converts v to the generic form encoding libraries take
// (map[string]any, []any, string, float64, bool, nil), dropping Undefined.
// Member order is lost.
func ToAny(v tachyon.Value) any {
	switch v.Kind() {
	case tachyon.KindString:
		return v.Str()
	case tachyon.KindNumber:
		return v.Num()
	case tachyon.KindObject:
		m := make(map[string]any, len(v.Pairs()))
		for _, p := range v.Pairs() {
			if p.Value.IsUndefined() {
				continue
			}
			m[p.Key] = ToAny(p.Value)
		}
		return m
	case tachyon.KindArray:
		out := make([]any, 0, len(v.Items()))
		for _, it := range v.Items() {
			if it.IsUndefined() {
				continue
			}
			out = append(out, ToAny(it))
		}
		return out
	case tachyon.KindTrue:
		return true
	case tachyon.KindFalse:
		return false
	}
	return nil
}
