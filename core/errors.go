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


package core

import "errors"

// Domain errors
var (
	// ErrEmptyQuery indicates a blank or whitespace-only query.
	// The caller must resubmit; retrying the same input never succeeds.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrNotAJobQuery indicates the utterance does not look like a
	// candidate-search request and the pipeline was short-circuited
	// before ranking.
	ErrNotAJobQuery = errors.New("text is not a candidate search query")

	// ErrNoCandidatesFound indicates the filter chain yielded no results
	// after the semantic fallback was attempted. It is a definitive empty
	// result, not a system failure.
	ErrNoCandidatesFound = errors.New("no candidates match the request")

	// ErrCatalogLoad indicates reference data (roles, skills, cities,
	// languages) is missing or malformed. Fatal at startup.
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrInvalidProfile indicates a CandidateProfile failed validation.
	ErrInvalidProfile = errors.New("invalid candidate profile")

	// ErrEmptyProfileID indicates the profile ID field is empty.
	ErrEmptyProfileID = errors.New("profile id cannot be empty")

	// ErrNegativeExperience indicates a negative years-of-experience value.
	ErrNegativeExperience = errors.New("years of experience cannot be negative")
)
