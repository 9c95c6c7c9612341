// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package buffer provides bounds-checked cursors over fixed byte regions.
// Neither cursor allocates: reads return views into the underlying region,
// and writes go to a caller-owned region. Every operation that would cross
// the region boundary fails without modifying the cursor.
package buffer

// Reader is a read cursor over an immutable byte region. The zero value is
// an empty reader. Reader does not own its region; the region must outlive
// the reader and any view obtained from it.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) Reader {
	return Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Bytes returns the unread remainder as a view into the region.
func (r *Reader) Bytes() []byte {
	return r.data[r.off:]
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if r.off >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	return r.data[r.off], nil
}

// ReadBytes consumes the next n bytes and returns them as a view into the
// region, not a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrUnexpectedEOF
	}
	p := r.data[r.off : r.off+n]
	r.off += n
	return p, nil
}

// Slice consumes the next n bytes and returns a sub-cursor over exactly
// those bytes. The sub-cursor shares the region with r.
func (r *Reader) Slice(n int) (Reader, error) {
	p, err := r.ReadBytes(n)
	if err != nil {
		return Reader{}, err
	}
	return Reader{data: p}, nil
}

// Skip consumes the next n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return ErrUnexpectedEOF
	}
	r.off += n
	return nil
}
