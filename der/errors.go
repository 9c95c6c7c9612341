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

import "errors"

// ErrInvalidEncoding is returned for length forms DER forbids: indefinite
// length, non-minimal long form, a leading zero length octet, or a length
// octet count above maxLengthOctets. Truncated input and exhausted write
// capacity are reported as buffer.ErrUnexpectedEOF and buffer.ErrBufferFull
// respectively.
var ErrInvalidEncoding = errors.New("der: invalid length encoding")
