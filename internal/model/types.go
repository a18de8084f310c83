package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord summarizes one approximation run. It carries run metadata and
// the error trajectory only; trained weights are never persisted.
type RunRecord struct {
	VersionedRecord
	ID           string    `json:"id"`
	CreatedAtUTC string    `json:"created_at_utc"`
	Target       string    `json:"target"`
	Steps        int       `json:"steps"`
	Seed         int64     `json:"seed"`
	RuleCount    int       `json:"rule_count"`
	LearningRate float64   `json:"learning_rate"`
	FinalError   float64   `json:"final_error"`
	ErrorHistory []float64 `json:"error_history"`
}
