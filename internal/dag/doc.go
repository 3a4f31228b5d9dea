// Package dag inspects the dependency structure of a calculator graph.
//
// It is advisory only. The evaluation engine tolerates cycles by truncating
// them, so hosts use DetectCycles to warn the user rather than to reject the
// graph.
package dag
