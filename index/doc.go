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


// Package index builds and queries the semantic vector index over the
// assessment catalog.
//
// Each catalog record is synthesized into a text document enriched with its
// category, detected skill tags, and support annotations, embedded via an
// ai.Embedder, and stored through a storage.DocumentRepository keyed by
// catalog position. Retrieval is intentionally recall-oriented: callers
// over-fetch and apply precise constraints downstream.
package index
