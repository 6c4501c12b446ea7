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

package leaves

import "testing"

func TestIsAllWhitespace(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{" \t\n ", true},
		{"x", false},
		{"  x  ", false},
		{"// hi   ", false},
	}
	for _, tt := range tests {
		if got := isAllWhitespace([]byte(tt.text)); got != tt.want {
			t.Errorf("isAllWhitespace(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
