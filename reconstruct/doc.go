// Package reconstruct turns noisy relative times back into absolute
// timestamps, compresses the result into the original temporal
// envelope, and assigns fresh opaque case identifiers for the final
// output table.
//
// The three passes (timestamp walk, envelope compression, case-id
// anonymization) run in that fixed order and are each exposed
// separately so callers can inspect intermediate state in tests.
package reconstruct
