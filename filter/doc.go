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


// Package filter narrows a semantically ranked candidate list by the hard
// constraints of an interpreted query.
//
// Stages run in fixed order: role, location, experience. Each stage operates
// on the output of the previous one. The role stage carries a semantic
// fallback: when no candidate matches the requested role lexically but the
// top unfiltered similarity is high enough, the role constraint is dropped
// and the full semantically ordered list flows on. A stage with no
// corresponding constraint in the query is skipped.
package filter
