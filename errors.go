// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sitterdiff

import "fmt"

// IoError wraps a failure to read one of the two files a front end is about to diff, letting
// callers distinguish "couldn't read the input" from the grammar/parse/diff errors [Run] itself
// can return.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("sitterdiff: reading %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// InternalError reports a programming error in the caller, such as a nil [RunOptions.Grammar],
// rather than anything about the files being diffed.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("sitterdiff: internal error: %s", e.Msg)
}
