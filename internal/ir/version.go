package ir

// Version constants for the result schema and engine.
const (
	// IRVersion is the result schema version.
	IRVersion = "1"

	// EngineVersion is the relcheck engine version.
	EngineVersion = "0.1.0"
)
