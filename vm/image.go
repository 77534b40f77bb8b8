package vm

import (
	"encoding/binary"
	goIO "io"
)

// LoadImage reads an object image from r into memory. The image is a
// sequence of big-endian 16-bit words; the first word is the load origin,
// every following word lands at the next address, wrapping past 0xFFFF.
// An image shorter than one word or with a trailing odd byte is malformed.
func (m *Machine) LoadImage(r goIO.Reader) (err error) {
	data, err := goIO.ReadAll(r)
	if err != nil {
		return &ErrImage{Err: err}
	}
	if len(data) < 2 || len(data)%2 != 0 {
		return &ErrImage{}
	}

	addr := binary.BigEndian.Uint16(data)
	for at := 2; at < len(data); at += 2 {
		m.Mem.Write(addr, binary.BigEndian.Uint16(data[at:]))
		addr++
	}

	return
}
