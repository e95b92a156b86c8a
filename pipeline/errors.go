package pipeline

import "errors"

var (
	// ErrInterpreterRequired is returned when an Orchestrator is constructed
	// without a query interpreter.
	ErrInterpreterRequired = errors.New("query interpreter is required")

	// ErrEngineRequired is returned when an Orchestrator is constructed
	// without a ranking engine.
	ErrEngineRequired = errors.New("ranking engine is required")
)
