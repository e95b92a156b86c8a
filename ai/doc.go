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


// Package ai provides abstractions for the embedding services used in
// Selekta.
//
// The ranking core depends only on the Embedder contract: text in, fixed
// length vector out, with the same model serving query and candidate sides.
// Vector dimensionality is opaque to callers; it only has to be consistent
// within one model.
//
// Two implementation sub-packages exist:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles with no external dependencies
//
// Public constructors in ai/openai return interface types to enforce
// abstraction; mock constructors return concrete types so tests can inject
// behavior and assert call counts.
//
// Embedding failures propagate to the caller as-is. The ranking core
// performs no retries; retry policy belongs to whoever drives cache
// warm-up or to the provider's own client.
package ai
