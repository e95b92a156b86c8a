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

import "fmt"

// ValidateCandidateProfile validates a CandidateProfile according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - YearsExperience must not be negative
//
// NOT validated:
//   - Role, Location, Skills, Languages (free text, may legitimately be empty)
func ValidateCandidateProfile(profile *CandidateProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyProfileID)
	}

	if profile.YearsExperience < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrNegativeExperience)
	}

	return nil
}

// ValidateQueryRequirements checks invariants on an interpreted query.
//
// Validation rules:
//   - YearsExperience, when set, must not be negative (0 means "sin experiencia")
//   - NumCandidates, when set, must be positive
func ValidateQueryRequirements(req *QueryRequirements) error {
	if req == nil {
		return fmt.Errorf("requirements are nil")
	}

	if req.YearsExperience != nil && *req.YearsExperience < 0 {
		return ErrNegativeExperience
	}

	if req.NumCandidates != nil && *req.NumCandidates <= 0 {
		return fmt.Errorf("num candidates must be positive, got %d", *req.NumCandidates)
	}

	return nil
}
