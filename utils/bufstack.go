package utils

import (
	"encoding/binary"
	"fmt"
)

// BufStack is a cursor over a binary buffer. Sub-buffers remember their
// parent and absolute position so decode errors can name the exact place
// in the file that failed.
type BufStack struct {
	parent         *BufStack
	buf            []byte
	relativeOffset int
	absoluteOffset int
	size           int
	pos            int
	kind           string
	name           string
}

func NewBufStack(kind string, b []byte) *BufStack {
	return &BufStack{
		buf:  b,
		size: len(b),
		kind: kind,
	}
}

func (bs *BufStack) SubBuf(kind string, offset int) *BufStack {
	return &BufStack{
		parent:         bs,
		relativeOffset: offset,
		absoluteOffset: bs.absoluteOffset + offset,
		kind:           kind,
		buf:            bs.buf[offset:],
		size:           len(bs.buf) - offset,
	}
}

func (bs *BufStack) SetName(name string) *BufStack {
	bs.name = name
	return bs
}

func (bs *BufStack) Name() string {
	return bs.name
}

func (bs *BufStack) Kind() string {
	return bs.kind
}

func (bs *BufStack) Size() int {
	return bs.size
}

func (bs *BufStack) Pos() int {
	return bs.pos
}

func (bs *BufStack) Remaining() int {
	return bs.size - bs.pos
}

func (bs *BufStack) String() string {
	return fmt.Sprintf("buf<%v>(%v)[pos:0x%x,s:0x%x,ao:0x%x]",
		bs.kind, bs.name, bs.pos, bs.size, bs.absoluteOffset)
}

func (bs *BufStack) StringChain() string {
	s := bs.String()
	if bs.parent != nil {
		s += fmt.Sprintf("::%s", bs.parent.String())
	}
	return s
}

func (bs *BufStack) Raw() []byte {
	return bs.buf[:bs.size]
}

func (bs *BufStack) Read(amount int) []byte {
	if bs.pos+amount > bs.size {
		panic(fmt.Sprintf("read of 0x%x bytes over end of %v", amount, bs.StringChain()))
	}
	oldPos := bs.pos
	bs.pos += amount
	return bs.buf[oldPos:bs.pos]
}

func (bs *BufStack) Skip(amount int) {
	bs.Read(amount)
}

func (bs *BufStack) ReadByte() byte {
	return bs.Read(1)[0]
}

func (bs *BufStack) ReadLU16() uint16 {
	return binary.LittleEndian.Uint16(bs.Read(2))
}

func (bs *BufStack) ReadLU32() uint32 {
	return binary.LittleEndian.Uint32(bs.Read(4))
}

func (bs *BufStack) ReadLU64() uint64 {
	return binary.LittleEndian.Uint64(bs.Read(8))
}

// ReadString reads a u16 length prefix followed by that many bytes.
func (bs *BufStack) ReadString() string {
	l := int(bs.ReadLU16())
	return string(bs.Read(l))
}

func (bs *BufStack) VerifyAllRead() error {
	if bs.pos != bs.size {
		return fmt.Errorf("0x%x bytes left unread in %v", bs.size-bs.pos, bs.StringChain())
	}
	return nil
}
