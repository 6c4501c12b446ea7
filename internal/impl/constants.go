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

package impl

// minCostLimit is a lower bound for the TOO_EXPENSIVE heuristic: it's only applied once the cost
// exceeds this number (large inputs with a lot of differences).
const minCostLimit = 4096

// Constants for the GOOD_DIAGONAL heuristic.
const goodDiagMinLen = 20     // Minimal length of a diagonal for it to be considered.
const goodDiagCostLimit = 256 // The heuristic is only applied once the cost exceeds this number.
const goodDiagMagic = 4       // Magic number for diagonal selection.

// anchoringHeuristicMinInputLen is the minimum combined input length for the ANCHORING heuristic
// to kick in; below it, the preprocessing and segmenting work isn't worth its own cost.
const anchoringHeuristicMinInputLen = 5_000
