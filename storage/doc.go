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


// Package storage provides the document persistence layer for TalentSift.
//
// It defines the DocumentRepository interface that decouples the vector
// index from its storage backend, plus the MUS binary serialization for
// stored documents. The storage/badger subpackage is the production
// implementation; an in-memory variant of the same backend serves tests.
//
// # Constructor Return Type Pattern
//
// Public constructors return interface types to enforce abstraction:
//
//	repo, err := badger.NewDocumentRepository(backend)  // returns storage.DocumentRepository
//
// so consumers never couple to BadgerDB specifics.
package storage
