package set

import "github.com/svlis-go/svlis/report"

// Attribute is one link in a set node's annotation chain: an integer tag
// plus an opaque payload (spec §4.2). Attributes never affect set
// semantics (Union/Intersection/Member ignore them entirely).
type Attribute struct {
	Tag     int
	Payload any
	Next    *Attribute
}

// AttributeCodec serialises and deserialises the payload registered for one
// attribute tag, so serial can round-trip attributes without a type switch
// over every consumer's payload type (mirrors the teacher's functional-
// option registries, generalized to a read/write pair).
type AttributeCodec interface {
	Write(payload any) string
	Read(data string) (any, error)
}

var attributeCodecs = map[int]AttributeCodec{}

// RegisterAttributeCodec installs the codec used for every attribute
// carrying tag.
func RegisterAttributeCodec(tag int, codec AttributeCodec) {
	attributeCodecs[tag] = codec
}

// CodecFor looks up the registered codec for tag.
func CodecFor(tag int) (AttributeCodec, bool) {
	c, ok := attributeCodecs[tag]
	return c, ok
}

// Attributes returns the head of s's attribute chain, in the order
// WithAttribute added them (most-recently-added first).
func (s Set) Attributes() *Attribute {
	if s.zero() {
		return nil
	}
	return s.node().attrs
}

// WithAttribute prepends (tag, payload) to s's attribute chain and returns
// s. Attributes are mutable scratch data on the shared node (like prim's
// flag word), not structural DAG content, so this mutates in place rather
// than rebuilding the node.
func (s Set) WithAttribute(tag int, payload any) Set {
	if s.zero() {
		report.Warn(site, "WithAttribute: %v", ErrNilSet)
		return s
	}
	n := s.node()
	n.attrs = &Attribute{Tag: tag, Payload: payload, Next: n.attrs}
	return s
}

// Attribute looks up the first attribute with the given tag.
func (s Set) Attribute(tag int) (any, bool) {
	for a := s.Attributes(); a != nil; a = a.Next {
		if a.Tag == tag {
			return a.Payload, true
		}
	}
	return nil, false
}
