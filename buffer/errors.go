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

import "errors"

var (
	// ErrUnexpectedEOF is returned when a read would pass the end of the
	// region.
	ErrUnexpectedEOF = errors.New("buffer: unexpected end of data")

	// ErrBufferFull is returned when a write would pass the end of the
	// region.
	ErrBufferFull = errors.New("buffer: insufficient capacity")
)
