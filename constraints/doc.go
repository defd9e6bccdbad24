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


// Package constraints extracts structured query constraints from free text.
//
// Extraction is pure pattern matching over fixed vocabularies: a duration
// ceiling, remote/adaptive requirements, technology and competency skills,
// assessment categories, and role keywords. The same query always yields
// the same constraints.
package constraints
