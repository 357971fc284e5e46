package types

// MetricsCollector defines methods for recording roster metrics.
//
// Implementations must not block and must tolerate being called from the
// HTTP API's request goroutines.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	EngineMetrics
	EditMetrics
}

// EngineMetrics defines metrics recorded while a schedule is generated.
type EngineMetrics interface {
	// RecordRun records one completed engine run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - dates: Number of dates scheduled (exception dates excluded)
	RecordRun(duration float64, dates int)

	// RecordAssignment records a filled slot at place.
	RecordAssignment(place string)

	// RecordUnfilledSlot records a slot at place left empty for lack of candidates.
	RecordUnfilledSlot(place string)
}

// EditMetrics defines metrics for manual edits of a generated schedule.
type EditMetrics interface {
	// RecordSwap records a swap request and whether it was applied.
	RecordSwap(success bool)
}
