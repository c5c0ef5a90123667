// Package event is the shared vocabulary of the pipeline: the Event input
// row, the Parameters a run is configured with, and the sentinel error
// kinds every later stage wraps with its own context.
package event
