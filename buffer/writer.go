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

package buffer

// Writer is an append cursor over a caller-owned byte region. The region is
// never grown; a write that does not fit fails with ErrBufferFull and
// leaves the region unmodified.
type Writer struct {
	data []byte
	off  int
}

// NewWriter returns a Writer appending into buf.
func NewWriter(buf []byte) Writer {
	return Writer{data: buf}
}

// Remaining returns the capacity left in the region.
func (w *Writer) Remaining() int {
	return len(w.data) - w.off
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.off
}

// Bytes returns the written prefix of the region.
func (w *Writer) Bytes() []byte {
	return w.data[:w.off]
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) error {
	if w.off >= len(w.data) {
		return ErrBufferFull
	}
	w.data[w.off] = b
	w.off++
	return nil
}

// Write appends p. It writes either all of p or nothing.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) > w.Remaining() {
		return 0, ErrBufferFull
	}
	n := copy(w.data[w.off:], p)
	w.off += n
	return n, nil
}
