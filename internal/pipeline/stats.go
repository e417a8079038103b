package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total      int
	Current    int
	Renamed    int
	Skipped    int
	Failed     int
	Suffixed   int   // names that needed a collision suffix
	TotalBytes int64 // bytes copied or moved
}
