// Package reflection parses session reflection logs (markdown) into typed
// records and aggregates recurring themes across sessions.
//
// The package supports:
//   - Parsing semi-structured reflection markdown into category lists
//   - Keyword extraction from free text with stop-word filtering
//   - Cross-session theme aggregation (frequency and recurrence tables)
//   - Structured (JSON) and bounded human-readable reporting
//
// # Architecture
//
// The main components are:
//   - ParseReflection: turns one document into a Reflection record
//   - Keywords: lazy keyword sequence over free text
//   - AggregateThemes: folds all records into one ThemeAggregate
//   - Load: enumerates and parses a reflections directory
//   - NewReport / WriteSummary / WriteJSON: render the final aggregate
//
// # Usage
//
// Load a directory of reflections and render a report:
//
//	reflections, err := reflection.Load("history/reflections")
//	if err != nil {
//	    // ErrDirNotFound and ErrNoReflections are distinct fatal
//	    // conditions for CLI callers
//	}
//	report := reflection.NewReport("history/reflections", reflections)
//	reflection.WriteSummary(os.Stdout, report)
//
// # Lifecycle
//
// The analyzer is a stateless batch computation. Each run parses the full
// input set, builds its aggregate from scratch, and writes output only after
// aggregation completes. Records are immutable once parsed.
package reflection
