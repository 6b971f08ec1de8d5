package util

import (
	"encoding/binary"
	"errors"
)

// ErrTruncated is returned for any read that would extend past the end of the
// buffer it is taken from.
var ErrTruncated = errors.New("read exceeds buffer bounds")

// Window returns buf[off:off+n] if the whole range lies within buf. The
// returned slice has its capacity clipped to n.
func Window(buf []byte, off, n uint64) ([]byte, error) {
	size := uint64(len(buf))
	if off > size || n > size-off {
		return nil, ErrTruncated
	}
	return buf[off : off+n : off+n], nil
}

// Cursor is a read position into an immutable buffer. Reads either succeed in
// full and advance, or fail with ErrTruncated and leave the position alone.
type Cursor struct {
	buf []byte
	off uint64
}

func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Offset is the current position from the start of the buffer.
func (c *Cursor) Offset() uint64 {
	return c.off
}

// Len is the number of unread bytes.
func (c *Cursor) Len() uint64 {
	return uint64(len(c.buf)) - c.off
}

// Seek moves to an absolute offset. Seeking to the end of the buffer is valid.
func (c *Cursor) Seek(off uint64) error {
	if off > uint64(len(c.buf)) {
		return ErrTruncated
	}
	c.off = off
	return nil
}

func (c *Cursor) Skip(n uint64) error {
	if _, err := Window(c.buf, c.off, n); err != nil {
		return err
	}
	c.off += n
	return nil
}

func (c *Cursor) Peek(n uint64) ([]byte, error) {
	return Window(c.buf, c.off, n)
}

func (c *Cursor) Read(n uint64) ([]byte, error) {
	b, err := Window(c.buf, c.off, n)
	if err != nil {
		return nil, err
	}
	c.off += n
	return b, nil
}

// Rest returns every unread byte and moves to the end.
func (c *Cursor) Rest() []byte {
	b, _ := c.Read(c.Len())
	return b
}

func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) Uint64() (uint64, error) {
	b, err := c.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) GUID() (EFIGUID, error) {
	b, err := c.Read(uint64(SizeofEFIGUID))
	if err != nil {
		return EFIGUID{}, err
	}
	return GUIDFromBytes([16]byte(b)), nil
}
