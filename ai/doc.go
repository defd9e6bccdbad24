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


// Package ai provides abstractions for the embedding services used in TalentSift.
//
// The Embedder interface generates vector embeddings from text; the index and
// the recommender depend on it rather than on a concrete implementation.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// CachingEmbedder wraps any Embedder with process-wide memoization and an
// eager warm list, so repeated queries and index rebuilds never re-encode
// strings the process has already seen.
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewEmbedder) return INTERFACE types to enforce
// abstraction. Test utility constructors (mock.NewMockEmbedder) return
// CONCRETE types to enable behavior injection and call-count assertions.
package ai
