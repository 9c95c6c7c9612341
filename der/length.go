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

package der

import (
	"math"

	"github.com/notaryproject/der-go/buffer"
)

// ReadLength decodes the length field at the reader's position and advances
// past it, leaving the reader at the first content byte. The decoded length
// never exceeds the bytes remaining after the field; a length that claims
// more fails with buffer.ErrUnexpectedEOF.
func ReadLength(r *buffer.Reader) (int, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	var length int
	switch {
	case b0 < 0x80:
		// short form
		length = int(b0)
	case b0 == 0x80:
		// DER restriction: the indefinite-length method is forbidden
		return 0, ErrInvalidEncoding
	default:
		// long form: low 7 bits give the octet count
		n := int(b0 & 0x7f)
		if n > maxLengthOctets {
			return 0, ErrInvalidEncoding
		}
		octets, err := r.ReadBytes(n)
		if err != nil {
			return 0, err
		}
		if n > 1 && octets[0] == 0x00 {
			// non-minimal octet count
			return 0, ErrInvalidEncoding
		}
		var v uint64
		for _, b := range octets {
			v = v<<8 | uint64(b)
		}
		if v < 0x80 {
			// DER restriction: values below 128 must use the short form
			return 0, ErrInvalidEncoding
		}
		if v > math.MaxInt {
			return 0, ErrInvalidEncoding
		}
		length = int(v)
	}

	if length > r.Remaining() {
		return 0, buffer.ErrUnexpectedEOF
	}
	return length, nil
}

// WriteLength encodes length in its unique canonical form: short form below
// 128, otherwise the minimal long form. A failed write leaves the writer's
// position unchanged.
func WriteLength(w *buffer.Writer, length int) error {
	if length < 0 || uint64(length) > maxLength {
		return ErrInvalidEncoding
	}
	if length < 0x80 {
		return w.WriteByte(byte(length))
	}

	n := contentOctets(length)
	if w.Remaining() < 1+n {
		return buffer.ErrBufferFull
	}
	if err := w.WriteByte(0x80 | byte(n)); err != nil {
		return err
	}
	for i := n - 1; i >= 0; i-- {
		if err := w.WriteByte(byte(length >> (8 * i))); err != nil {
			return err
		}
	}
	return nil
}

// EncodedLengthSize returns the number of octets WriteLength emits for a
// non-negative length.
func EncodedLengthSize(length int) int {
	if length < 0x80 {
		return 1
	}
	return 1 + contentOctets(length)
}

// contentOctets gives the minimal big-endian octet count for length,
// which must be positive.
func contentOctets(length int) int {
	n := 0
	for v := uint64(length); v > 0; v >>= 8 {
		n++
	}
	return n
}
