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


// Package query interprets free-text Spanish recruiting queries into
// structured requirements.
//
// The Interpreter combines pattern rules (intent verbs, experience and
// candidate-count expressions) with literal lookups against the reference
// catalog (skills, cities, languages) and a strict string-similarity match
// against the role catalog. Every extracted field is optional; an absent
// field means the query leaves that dimension unconstrained.
//
// The package also provides a lightweight relevance heuristic
// (AnalyzeJobQuery) that decides whether an utterance looks like a
// candidate-search request at all, so the pipeline can reject unrelated
// text before doing any embedding work.
package query
