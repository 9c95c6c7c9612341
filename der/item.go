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

import "github.com/notaryproject/der-go/buffer"

// ReadItem decodes one TLV item at the reader's position: a tag byte, a
// length field, and a content view over exactly the declared number of
// bytes. The reader is advanced past the whole item. Content is not
// interpreted; callers parse nested structures by calling ReadItem on
// Item.Content. After a failure the reader's position is unspecified and
// the reader must be discarded.
func ReadItem(r *buffer.Reader) (Item, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return Item{}, err
	}
	length, err := ReadLength(r)
	if err != nil {
		return Item{}, err
	}
	// Slice re-checks the bound; ReadLength already guarantees it.
	content, err := r.Slice(length)
	if err != nil {
		return Item{}, err
	}
	return Item{Tag: tag, Content: content}, nil
}

// WriteHeader writes the tag and length fields for an item whose content
// the caller emits next. Either the whole header is written or nothing is.
func WriteHeader(w *buffer.Writer, tag byte, length int) error {
	if length < 0 || uint64(length) > maxLength {
		return ErrInvalidEncoding
	}
	if w.Remaining() < 1+EncodedLengthSize(length) {
		return buffer.ErrBufferFull
	}
	if err := w.WriteByte(tag); err != nil {
		return err
	}
	return WriteLength(w, length)
}
