package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with [Equal] within a
// process. Spans are not hashed.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	n.hash(&h)
	return h.Sum64()
}

func (n *Node) hash(h *maphash.Hash) {
	var b [8]byte
	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NilType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntegerType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case BigIntType:
		if n.BigInt != nil {
			h.WriteByte(byte(n.BigInt.Sign() + 1))
			h.Write(n.BigInt.Bytes())
		}
	case FloatType:
		f := float64(n.Float64)
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case TextType:
		h.WriteString(n.Text)
	case SymbolType, KeywordType:
		h.WriteString(n.Namespace)
		h.WriteByte('/')
		h.WriteString(n.Name)
	case ListType, VectorType, SetType, MapType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Values)))
		h.Write(b[:])
		for i, v := range n.Values {
			if i < len(n.Fields) {
				n.Fields[i].hash(h)
			}
			v.hash(h)
		}
	}
}
