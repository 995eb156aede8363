package models

// EnrichmentSummary counts the outcome of one pass of the enrichment pipeline.
type EnrichmentSummary struct {
	Total          int `json:"total"`
	Geocoded       int `json:"geocoded"`
	Skipped        int `json:"skipped"`
	MissingAddress int `json:"missing_address"`
	Failed         int `json:"failed"`
}

// Add folds other into s.
func (s *EnrichmentSummary) Add(other EnrichmentSummary) {
	s.Total += other.Total
	s.Geocoded += other.Geocoded
	s.Skipped += other.Skipped
	s.MissingAddress += other.MissingAddress
	s.Failed += other.Failed
}

// BatchReport aggregates a whole batch run across target files.
type BatchReport struct {
	FilesProcessed int               `json:"files_processed"`
	FilesFailed    int               `json:"files_failed"`
	FilesMissing   int               `json:"files_missing"`
	Records        EnrichmentSummary `json:"records"`
}
