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


// Package evaluation provides an offline quality harness.
//
// Relevance is derived from hard constraints only, so the harness measures
// how well semantic retrieval plus filtering recovers the records a
// constraint-complete scan of the catalog would accept. Metrics are
// precision and recall at k, average precision, and mean average precision
// across the labeled query set.
package evaluation
