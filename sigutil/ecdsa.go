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

// Package sigutil converts ECDSA signatures between their DER wire form,
// SEQUENCE { INTEGER r, INTEGER s }, and the fixed-width big-endian r‖s
// form used by raw verifiers. Both directions operate on caller-owned
// buffers and perform no allocation.
package sigutil

import (
	"errors"

	"github.com/notaryproject/der-go/buffer"
	"github.com/notaryproject/der-go/der"
)

// ErrInvalidSignature is returned when input bytes delimit correctly but do
// not form a valid ECDSA signature: a wrong tag, a negative or non-minimal
// INTEGER, trailing bytes at any level, or a value wider than the target
// buffer. Malformed DER framing is reported with the der and buffer package
// errors instead.
var ErrInvalidSignature = errors.New("sigutil: invalid ecdsa signature")

// DecodeECDSA parses the DER-encoded signature sig and writes r and s
// big-endian, left-padded with zeros, into the first and second half of rs.
// len(rs) must be twice the curve's element size.
func DecodeECDSA(sig, rs []byte) error {
	if len(rs) == 0 || len(rs)%2 != 0 {
		return ErrInvalidSignature
	}
	r := buffer.NewReader(sig)
	seq, err := der.ReadItem(&r)
	if err != nil {
		return err
	}
	if seq.Tag != der.TagSequence || r.Remaining() != 0 {
		return ErrInvalidSignature
	}
	size := len(rs) / 2
	if err := readInteger(&seq.Content, rs[:size]); err != nil {
		return err
	}
	if err := readInteger(&seq.Content, rs[size:]); err != nil {
		return err
	}
	if seq.Content.Remaining() != 0 {
		return ErrInvalidSignature
	}
	return nil
}

// EncodeECDSA writes the DER encoding of the fixed-width r‖s signature rs
// into dst and returns the number of bytes written.
func EncodeECDSA(dst, rs []byte) (int, error) {
	if len(rs) == 0 || len(rs)%2 != 0 {
		return 0, ErrInvalidSignature
	}
	size := len(rs) / 2
	rLen := integerLen(rs[:size])
	sLen := integerLen(rs[size:])
	contentLen := 1 + der.EncodedLengthSize(rLen) + rLen +
		1 + der.EncodedLengthSize(sLen) + sLen

	w := buffer.NewWriter(dst)
	if err := der.WriteHeader(&w, der.TagSequence, contentLen); err != nil {
		return 0, err
	}
	if err := writeInteger(&w, rs[:size]); err != nil {
		return 0, err
	}
	if err := writeInteger(&w, rs[size:]); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// readInteger decodes one INTEGER item and left-pads its value into out.
// The value must be non-negative and DER-minimal: a leading zero octet is
// allowed only when the next octet has its high bit set.
func readInteger(r *buffer.Reader, out []byte) error {
	item, err := der.ReadItem(r)
	if err != nil {
		return err
	}
	if item.Tag != der.TagInteger {
		return ErrInvalidSignature
	}
	v, err := item.Content.ReadBytes(item.Content.Remaining())
	if err != nil {
		return err
	}
	if len(v) == 0 {
		return ErrInvalidSignature
	}
	if v[0]&0x80 != 0 {
		// negative
		return ErrInvalidSignature
	}
	if v[0] == 0x00 && len(v) > 1 {
		if v[1]&0x80 == 0 {
			// non-minimal
			return ErrInvalidSignature
		}
		v = v[1:]
	}
	if len(v) > len(out) {
		return ErrInvalidSignature
	}
	pad := len(out) - len(v)
	for i := range out[:pad] {
		out[i] = 0
	}
	copy(out[pad:], v)
	return nil
}

// integerLen gives the content octet count of the INTEGER encoding of the
// big-endian value v: leading zeros stripped, one zero octet re-added when
// the value is zero or its high bit is set.
func integerLen(v []byte) int {
	for len(v) > 0 && v[0] == 0 {
		v = v[1:]
	}
	if len(v) == 0 || v[0]&0x80 != 0 {
		return len(v) + 1
	}
	return len(v)
}

func writeInteger(w *buffer.Writer, v []byte) error {
	for len(v) > 0 && v[0] == 0 {
		v = v[1:]
	}
	pad := len(v) == 0 || v[0]&0x80 != 0
	n := len(v)
	if pad {
		n++
	}
	if err := der.WriteHeader(w, der.TagInteger, n); err != nil {
		return err
	}
	if pad {
		if err := w.WriteByte(0x00); err != nil {
			return err
		}
	}
	_, err := w.Write(v)
	return err
}
