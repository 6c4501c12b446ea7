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

import "sitterdiff.dev/sitterdiff/internal/types"

// Op describes an edit operation.
type Op = types.Op

const (
	Match  = types.Match  // The token is unchanged.
	Delete = types.Delete // The token only exists on the left side.
	Insert = types.Insert // The token only exists on the right side.
)
