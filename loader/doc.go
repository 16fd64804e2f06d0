// Package loader populates a core.Graph from the plain-text subway map format.
//
// Format
//
//	Alpha            ┐
//	Beta             │ section 1: one station per line,
//	Gamma            │ terminated by a blank line
//	                 ┘
//	Red Line         ┐
//	Alpha            │ section 2: line blocks; a line name followed by
//	Beta             │ two or more stations, terminated by a blank line
//	Gamma            │ (the last block may end at EOF)
//	                 ┘
//
// A block [a, b, c] registers AddConnection(line, a, b) then
// AddConnection(line, b, c): a simple path per block. Surrounding whitespace
// and trailing '\r' are trimmed; extra blank lines between blocks are skipped.
//
// Policy
//
//   - Default (permissive): a block naming an undeclared station keeps its
//     other pairs; pairs touching the unknown station are dropped and counted
//     in Stats.Dropped.
//   - WithStrict(): the same block fails the load with a *LoadFormatError
//     wrapping *core.UnknownStationError.
//   - Every block is validated before any of its pairs is applied, so a
//     failing block never leaves half of itself in the graph. Blocks before
//     it stay applied.
//
// Errors
//
//   - ErrLoadFormat (via *LoadFormatError): empty input, a station section
//     cut off by EOF, a block with fewer than two stations, or (strict) an
//     undeclared station.
//   - I/O errors from the reader, wrapped.
package loader
