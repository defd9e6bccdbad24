// Copyright 2025 Poiesic Systems
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


// Package filtering applies extracted query constraints to retrieval
// candidates.
//
// The pipeline runs hard filters first (duration ceiling, remote support,
// adaptive support, category membership) and then two soft re-ranking
// stages (roles, then skills). Hard filters remove candidates outright;
// soft stages only reorder, using stable sorts so the semantic-similarity
// order survives as the tie-break.
package filtering
