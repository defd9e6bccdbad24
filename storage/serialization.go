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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/talentsift/core"
)

// vectorSer serializes embedding vectors. Raw float32 encoding keeps the
// stored vectors byte-aligned and cheap to decode during similarity scans.
var vectorSer = ord.NewSliceSer[float32](raw.Float32)

// MarshalDocument serializes an AssessmentDocument to bytes.
func MarshalDocument(doc *core.AssessmentDocument) []byte {
	buf := make([]byte, sizeDocument(doc))
	n := varint.Int.Marshal(doc.Position, buf)
	n += ord.String.Marshal(doc.Text, buf[n:])
	n += ord.String.Marshal(doc.Record.Name, buf[n:])
	n += ord.String.Marshal(doc.Record.URL, buf[n:])
	n += ord.String.Marshal(doc.Record.Description, buf[n:])
	n += ord.String.Marshal(doc.Record.Duration, buf[n:])
	n += ord.String.Marshal(string(doc.Record.RemoteSupport), buf[n:])
	n += ord.String.Marshal(string(doc.Record.AdaptiveSupport), buf[n:])
	n += ord.String.Marshal(string(doc.Record.Category), buf[n:])
	vectorSer.Marshal(doc.Vector, buf[n:])
	return buf
}

// UnmarshalDocument deserializes an AssessmentDocument from bytes.
func UnmarshalDocument(data []byte) (*core.AssessmentDocument, error) {
	doc := &core.AssessmentDocument{}

	position, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	doc.Position = position

	fields := []*string{&doc.Text, &doc.Record.Name, &doc.Record.URL,
		&doc.Record.Description, &doc.Record.Duration}
	for _, field := range fields {
		value, m, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		*field = value
		n += m
	}

	remote, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	doc.Record.RemoteSupport = core.SupportFlag(remote)
	n += m

	adaptive, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	doc.Record.AdaptiveSupport = core.SupportFlag(adaptive)
	n += m

	category, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	doc.Record.Category = core.Category(category)
	n += m

	vector, _, err := vectorSer.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	doc.Vector = vector

	return doc, nil
}

func sizeDocument(doc *core.AssessmentDocument) int {
	size := varint.Int.Size(doc.Position)
	size += ord.String.Size(doc.Text)
	size += ord.String.Size(doc.Record.Name)
	size += ord.String.Size(doc.Record.URL)
	size += ord.String.Size(doc.Record.Description)
	size += ord.String.Size(doc.Record.Duration)
	size += ord.String.Size(string(doc.Record.RemoteSupport))
	size += ord.String.Size(string(doc.Record.AdaptiveSupport))
	size += ord.String.Size(string(doc.Record.Category))
	size += vectorSer.Size(doc.Vector)
	return size
}
