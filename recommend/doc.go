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


// Package recommend orchestrates the recommendation pipeline.
//
// A run extracts constraints from the query, over-fetches semantically
// similar candidates from the vector index, reconstructs full records from
// stored metadata, applies the constraint filter pipeline, and truncates to
// the requested count.
//
// The recommender fails open: callers only ever receive a (possibly empty)
// list, never an error. The LastError diagnostic distinguishes a degraded
// empty result from a legitimate absence of matches.
package recommend
