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
	"bytes"
	"errors"
	"testing"

	"github.com/notaryproject/der-go/buffer"
)

func TestReadItemNested(t *testing.T) {
	// SEQUENCE(3) { INTEGER(1) 0x05 }
	data := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	r := buffer.NewReader(data)

	seq, err := ReadItem(&r)
	if err != nil {
		t.Fatalf("ReadItem() error = %v", err)
	}
	if seq.Tag != TagSequence {
		t.Errorf("outer tag = %#x, want %#x", seq.Tag, TagSequence)
	}
	if seq.Content.Remaining() != 3 {
		t.Errorf("outer content Remaining() = %d, want 3", seq.Content.Remaining())
	}
	if r.Remaining() != 0 {
		t.Errorf("outer cursor Remaining() = %d, want 0", r.Remaining())
	}

	inner, err := ReadItem(&seq.Content)
	if err != nil {
		t.Fatalf("inner ReadItem() error = %v", err)
	}
	if inner.Tag != TagInteger {
		t.Errorf("inner tag = %#x, want %#x", inner.Tag, TagInteger)
	}
	got, err := inner.Content.ReadBytes(inner.Content.Remaining())
	if err != nil {
		t.Fatalf("inner content read error = %v", err)
	}
	if !bytes.Equal(got, []byte{0x05}) {
		t.Errorf("inner content = %x, want 05", got)
	}
	if seq.Content.Remaining() != 0 {
		t.Errorf("inner cursor not fully consumed: %d bytes left", seq.Content.Remaining())
	}
}

func TestReadItemErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "empty input",
			wantErr: buffer.ErrUnexpectedEOF,
		},
		{
			name:    "missing length field",
			data:    []byte{0x30},
			wantErr: buffer.ErrUnexpectedEOF,
		},
		{
			name:    "indefinite length",
			data:    []byte{0x30, 0x80},
			wantErr: ErrInvalidEncoding,
		},
		{
			name:    "content beyond input",
			data:    []byte{0x02, 0x05, 0x01},
			wantErr: buffer.ErrUnexpectedEOF,
		},
		{
			name:    "non-minimal length",
			data:    []byte{0x02, 0x81, 0x01, 0x05},
			wantErr: ErrInvalidEncoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buffer.NewReader(tt.data)
			if _, err := ReadItem(&r); !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadItemUnknownTag(t *testing.T) {
	// tags are opaque: unknown values pass through to the caller
	data := []byte{0x04, 0x02, 0xde, 0xad}
	r := buffer.NewReader(data)
	item, err := ReadItem(&r)
	if err != nil {
		t.Fatalf("ReadItem() error = %v", err)
	}
	if item.Tag != 0x04 {
		t.Errorf("tag = %#x, want 0x04", item.Tag)
	}
	if item.Content.Remaining() != 2 {
		t.Errorf("content Remaining() = %d, want 2", item.Content.Remaining())
	}
}

func TestWriteHeader(t *testing.T) {
	tests := []struct {
		name    string
		tag     byte
		length  int
		want    []byte
		wantErr error
	}{
		{
			name:   "short form header",
			tag:    TagSequence,
			length: 3,
			want:   []byte{0x30, 0x03},
		},
		{
			name:   "long form header",
			tag:    TagInteger,
			length: 300,
			want:   []byte{0x02, 0x82, 0x01, 0x2c},
		},
		{
			name:    "negative length",
			tag:     TagInteger,
			length:  -1,
			wantErr: ErrInvalidEncoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := buffer.NewWriter(make([]byte, 8))
			err := WriteHeader(&w, tt.tag, tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("WriteHeader() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Errorf("header = %x, want %x", w.Bytes(), tt.want)
			}
		})
	}
}

func TestWriteHeaderBufferFull(t *testing.T) {
	w := buffer.NewWriter(make([]byte, 1))
	err := WriteHeader(&w, TagSequence, 3)
	if !errors.Is(err, buffer.ErrBufferFull) {
		t.Fatalf("WriteHeader() error = %v, want ErrBufferFull", err)
	}
	if w.Len() != 0 {
		t.Errorf("Len() after failed header write = %d, want 0", w.Len())
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	content := bytes.Repeat([]byte{0xab}, 200)
	buf := make([]byte, len(content)+8)
	w := buffer.NewWriter(buf)
	if err := WriteHeader(&w, TagSequence, len(content)); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	r := buffer.NewReader(w.Bytes())
	item, err := ReadItem(&r)
	if err != nil {
		t.Fatalf("ReadItem() error = %v", err)
	}
	if item.Tag != TagSequence {
		t.Errorf("tag = %#x, want %#x", item.Tag, TagSequence)
	}
	got, err := item.Content.ReadBytes(item.Content.Remaining())
	if err != nil {
		t.Fatalf("content read error = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("content does not round trip through WriteHeader/ReadItem")
	}
	if r.Remaining() != 0 {
		t.Errorf("cursor Remaining() = %d, want 0", r.Remaining())
	}
}
