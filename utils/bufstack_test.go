package utils

import (
	"bytes"
	"testing"
)

func TestBufStackReads(t *testing.T) {
	bs := NewBufStack("test", []byte{
		0x11,
		0x22, 0x33,
		0x44, 0x55, 0x66, 0x77,
		0x03, 0x00, 'a', 'b', 'c',
	})

	if v := bs.ReadByte(); v != 0x11 {
		t.Errorf("ReadByte()=0x%x; expected 0x11", v)
	}
	if v := bs.ReadLU16(); v != 0x3322 {
		t.Errorf("ReadLU16()=0x%x; expected 0x3322", v)
	}
	if v := bs.ReadLU32(); v != 0x77665544 {
		t.Errorf("ReadLU32()=0x%x; expected 0x77665544", v)
	}
	if v := bs.ReadString(); v != "abc" {
		t.Errorf("ReadString()=%q; expected \"abc\"", v)
	}
	if err := bs.VerifyAllRead(); err != nil {
		t.Errorf("VerifyAllRead() = %v", err)
	}
}

func TestBufStackVerifyAllRead(t *testing.T) {
	bs := NewBufStack("test", []byte{1, 2, 3, 4})
	bs.ReadLU16()
	if err := bs.VerifyAllRead(); err == nil {
		t.Error("expected error for 2 unread bytes")
	}
}

func TestBufStackOverread(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on read over end of buffer")
		}
	}()
	bs := NewBufStack("test", []byte{1, 2})
	bs.ReadLU32()
}

func TestCompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("jak and daxter "), 64)

	compressed := CompressZstd(data)
	if len(compressed) >= len(data) {
		t.Errorf("compressed %d bytes to %d; expected reduction", len(data), len(compressed))
	}

	restored, err := DecompressZstd(compressed)
	if err != nil {
		t.Fatalf("DecompressZstd() = %v", err)
	}
	if !bytes.Equal(restored, data) {
		t.Error("round trip mismatch")
	}
}
