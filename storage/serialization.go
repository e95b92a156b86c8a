// Copyright 2025 Selekta
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
	"github.com/selekta/selekta/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalCandidateVector serializes a CandidateVector to bytes.
func MarshalCandidateVector(vector *core.CandidateVector) []byte {
	buf := make([]byte, core.CandidateVectorMUS.Size(*vector))
	core.CandidateVectorMUS.Marshal(*vector, buf)
	return buf
}

// UnmarshalCandidateVector deserializes a CandidateVector from bytes.
func UnmarshalCandidateVector(data []byte) (*core.CandidateVector, error) {
	vector, _, err := core.CandidateVectorMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &vector, nil
}
