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


// Package rank implements the semantic ranking engine.
//
// The engine scores every candidate against an interpreted query by cosine
// similarity of text embeddings. Candidate vectors are embedded once and
// cached, in memory always and optionally in a persistent storage.VectorCache,
// since candidate embedding is the dominant cost. Only the query vector is
// computed per request.
//
// Ranking never filters. The deterministic filter chain (package filter)
// narrows the ranked list afterwards.
package rank
