package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseHeaderSuccess(t *testing.T) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(buf[HeaderMagicOffset:], Magic)
	binary.LittleEndian.PutUint16(buf[HeaderVersionOffset:], 2)
	binary.LittleEndian.PutUint32(buf[HeaderNameTableOffset:], 0x20)
	binary.LittleEndian.PutUint32(buf[HeaderValueTableOffset:], 0x30)
	binary.LittleEndian.PutUint32(buf[HeaderRootOffset:], 0x40)

	hdr, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.Version != 2 || !hdr.KnownVersion() {
		t.Fatalf("version mismatch: %+v", hdr)
	}
	if hdr.NameTableOffset != 0x20 || hdr.ValueTableOffset != 0x30 || hdr.RootOffset != 0x40 {
		t.Fatalf("offset mismatch: %+v", hdr)
	}
	if !hdr.HasValueTable() || !hdr.HasRoot() {
		t.Fatalf("expected value table and root: %+v", hdr)
	}
}

func TestParseHeaderMagicCheckedFirst(t *testing.T) {
	// Too short for a header AND wrong magic: the magic must win.
	if _, err := ParseHeader([]byte{'B', 'Y', 0x02}); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}

	buf := make([]byte, HeaderSize)
	buf[0], buf[1] = 'B', 'Y'
	if _, err := ParseHeader(buf); !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch for big-endian magic, got %v", err)
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	if _, err := ParseHeader([]byte{'Y'}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds for 1 byte, got %v", err)
	}
	if _, err := ParseHeader([]byte{'Y', 'B', 0x01, 0x00}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds for short header, got %v", err)
	}
}

func TestPutHeaderRoundTrip(t *testing.T) {
	want := Header{Magic: Magic, Version: 7, NameTableOffset: 0x10, RootOffset: 0x80}
	buf := make([]byte, HeaderSize)
	if err := PutHeader(buf, want); err != nil {
		t.Fatalf("PutHeader: %v", err)
	}
	if buf[0] != 'Y' || buf[1] != 'B' {
		t.Fatalf("magic bytes on disk = %q, want \"YB\"", buf[:2])
	}
	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if err := PutHeader(buf[:4], want); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestU24Encoding(t *testing.T) {
	b := make([]byte, 5)
	PutU24(b, 1, 0x00abcdef)
	if b[0] != 0 || b[4] != 0 {
		t.Fatalf("PutU24 wrote outside its 3 bytes: %x", b)
	}
	if got := ReadU24(b, 1); got != 0xabcdef {
		t.Fatalf("ReadU24 = 0x%x, want 0xabcdef", got)
	}
	PutU24(b, 1, 0xff123456)
	if got := ReadU24(b, 1); got != 0x123456 {
		t.Fatalf("PutU24 must drop the high byte, got 0x%x", got)
	}
}
