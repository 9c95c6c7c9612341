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

// Package der reads and writes DER length fields and tag-delimited items
// over caller-owned buffers, restricted to definite-length canonical
// encodings. Content bytes are never copied: a decoded item is a view into
// the input region.
// Reference: ITU-T X.690 §8.1.3, §10.1.
package der

import "github.com/notaryproject/der-go/buffer"

// Universal tags matched by callers of this package. Tags are opaque bytes;
// no class or constructed-flag decomposition is performed.
const (
	TagInteger  byte = 0x02
	TagSequence byte = 0x30
)

// maxLengthOctets bounds the long-form length octet count, limiting lengths
// to 2^32-1. The bound is part of the canonical encoding contract: both
// codec directions enforce it, so any length this package writes can be
// read back and vice versa.
const maxLengthOctets = 4

// maxLength is the largest length value the codec represents.
const maxLength = 1<<(8*maxLengthOctets) - 1

// Item is one decoded TLV node. Content is a cursor over exactly the item's
// declared content bytes, sharing the region of the reader the item was
// decoded from.
type Item struct {
	Tag     byte
	Content buffer.Reader
}
