package faq

// IngestMode selects how Ingest treats an existing collection.
type IngestMode string

const (
	// IngestExistence skips ingestion when the collection already exists.
	IngestExistence IngestMode = "existence"
	// IngestContentHash versions the collection name by corpus hash.
	IngestContentHash IngestMode = "content_hash"
	// IngestForce drops and rebuilds the collection.
	IngestForce IngestMode = "force"
)

// Valid reports whether m is a known mode.
func (m IngestMode) Valid() bool {
	switch m {
	case IngestExistence, IngestContentHash, IngestForce:
		return true
	}
	return false
}

// IngestInput is the input for Ingest. Empty fields fall back to configured defaults.
type IngestInput struct {
	Source string     // file path or doublestar glob
	Mode   IngestMode // defaults to IngestExistence
}

// IngestOutput reports what Ingest did.
type IngestOutput struct {
	Collection string   `json:"collection"`
	Skipped    bool     `json:"skipped"`
	Entries    int      `json:"entries"`
	Files      []string `json:"files"`
	Pruned     []string `json:"pruned,omitempty"`
}

// Entry is one retrieved FAQ pair.
type Entry struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}
