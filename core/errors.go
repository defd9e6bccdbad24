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


package core

import "errors"

var (
	// ErrMissingName is returned when a record has no name.
	ErrMissingName = errors.New("assessment record missing name")

	// ErrMissingURL is returned when a record has no URL.
	ErrMissingURL = errors.New("assessment record missing url")

	// ErrInvalidCategory is returned when a record's category is not a
	// member of the closed category enumeration.
	ErrInvalidCategory = errors.New("invalid assessment category")

	// ErrInvalidSupportFlag is returned when a remote or adaptive support
	// value is not "Yes" or "No".
	ErrInvalidSupportFlag = errors.New("invalid support flag")
)
