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


// Package core contains the domain model of TalentSift.
//
// It defines the assessment catalog entry, its indexed document form, and
// the structured query constraints shared by the extractor, the filter
// pipeline, and the recommender. Category and support-flag values are closed
// string enumerations validated at the catalog boundary, so downstream
// equality checks are exhaustive.
package core
