package badger

import (
	"fmt"

	"github.com/selekta/selekta/core"
)

// Key prefixes for different data types
const (
	candidateVectorPrefix = "candvec"
)

// makeVectorKey generates a key for a cached vector by model and candidate ID.
// The model is part of the key so switching embedding models never serves
// stale vectors.
func makeVectorKey(model string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", candidateVectorPrefix, model, id))
}

// makeVectorModelPrefix generates the key prefix covering all vectors cached
// for a given model.
func makeVectorModelPrefix(model string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", candidateVectorPrefix, model))
}
