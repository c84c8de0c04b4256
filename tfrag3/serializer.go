package tfrag3

import (
	"bytes"
	"encoding/binary"
	"math"
)

const FR3_MAGIC = 0x33335246 // "FR33"
const FR3_VERSION = 1

// Serializer accumulates the little-endian file image of a level. Field
// order is fixed, so identical levels always serialize to identical
// bytes.
type Serializer struct {
	buf bytes.Buffer
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

func (s *Serializer) U8(v uint8) {
	s.buf.WriteByte(v)
}

func (s *Serializer) Bool(v bool) {
	if v {
		s.U8(1)
	} else {
		s.U8(0)
	}
}

func (s *Serializer) U32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	s.buf.Write(tmp[:])
}

func (s *Serializer) F32(v float32) {
	s.U32(math.Float32bits(v))
}

func (s *Serializer) String(v string) {
	s.U32(uint32(len(v)))
	s.buf.WriteString(v)
}

func (s *Serializer) Bytes(v []byte) {
	s.U32(uint32(len(v)))
	s.buf.Write(v)
}

func (s *Serializer) Result() []byte {
	return s.buf.Bytes()
}

func (s *Serializer) saveDraws(draws []Draw) {
	s.U32(uint32(len(draws)))
	for _, draw := range draws {
		s.U32(draw.TextureID)
		s.U32(uint32(len(draw.Vertices)))
		for _, vert := range draw.Vertices {
			s.F32(vert[0])
			s.F32(vert[1])
			s.F32(vert[2])
		}
	}
}

// Serialize writes the whole level into the serializer.
func (l *Level) Serialize(s *Serializer) {
	s.U32(FR3_MAGIC)
	s.U32(FR3_VERSION)
	s.String(l.LevelName)

	s.U32(uint32(len(l.Textures)))
	for _, tex := range l.Textures {
		s.U32(tex.ComboID)
		s.U32(tex.W)
		s.U32(tex.H)
		s.String(tex.DebugTpageName)
		s.String(tex.DebugName)
		s.Bytes(tex.Data)
		s.Bool(tex.LoadToPool)
	}

	s.U32(uint32(len(l.TfragTrees)))
	for _, tree := range l.TfragTrees {
		s.String(tree.Name)
		s.U8(tree.Kind)
		s.Bool(tree.AtestDisable)
		s.saveDraws(tree.Draws)
	}

	s.U32(uint32(len(l.TieTrees)))
	for _, tree := range l.TieTrees {
		s.String(tree.Name)
		s.saveDraws(tree.Draws)
	}

	s.U32(uint32(len(l.ShrubTrees)))
	for _, tree := range l.ShrubTrees {
		s.String(tree.Name)
		s.saveDraws(tree.Draws)
	}

	s.U32(uint32(len(l.CollideFragments)))
	for _, frags := range l.CollideFragments {
		s.String(frags.Name)
		s.U32(uint32(len(frags.Vertices)))
		for _, vert := range frags.Vertices {
			s.F32(vert[0])
			s.F32(vert[1])
			s.F32(vert[2])
		}
		s.U32(uint32(len(frags.Pats)))
		for _, pat := range frags.Pats {
			s.U32(pat)
		}
	}

	s.U32(uint32(len(l.MercModels)))
	for _, model := range l.MercModels {
		s.String(model.Name)
		s.saveDraws(model.Draws)
	}
}
