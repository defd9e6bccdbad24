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


// Package catalog loads assessment catalogs from JSON files.
//
// Loading is lenient per entry and strict per file: a file that cannot be
// read or parsed is an error, but individual entries that fail validation
// or duplicate an earlier URL are skipped with a warning so one bad row
// never takes the whole catalog down.
package catalog
