// Package errs defines the sentinel errors shared by all textfmt packages.
//
// Callers match them with errors.Is; producing sites wrap them with
// fmt.Errorf("%w: ...") to attach call-specific context.
package errs

import "errors"

// Formatting errors.
var (
	// ErrArgExhausted indicates a conversion directive had no argument left
	// to consume.
	ErrArgExhausted = errors.New("argument list exhausted")

	// ErrArgTypeMismatch indicates an argument's type is not accepted by the
	// directive that consumed it.
	ErrArgTypeMismatch = errors.New("argument type mismatch")
)

// Matching errors.
var (
	// ErrSlotExhausted indicates a conversion directive had no output slot
	// left to fill.
	ErrSlotExhausted = errors.New("output slot list exhausted")

	// ErrSlotTypeMismatch indicates an output slot's type is not accepted by
	// the directive that consumed it.
	ErrSlotTypeMismatch = errors.New("output slot type mismatch")

	// ErrNilSlot indicates an output slot was constructed from a nil pointer.
	ErrNilSlot = errors.New("nil slot pointer")

	// ErrInputDepleted indicates the input text ran out before the first
	// value was assigned.
	ErrInputDepleted = errors.New("input depleted")
)

// Record container errors.
var (
	// ErrInvalidHeaderSize indicates a record blob is shorter than its
	// fixed-size header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidHeaderFlags indicates the header flag word failed
	// validation, usually a bad magic number.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidPayloadSize indicates a payload size the container cannot
	// represent, either a header whose sizes disagree with the data that
	// follows it or a writer payload past the encodable limit.
	ErrInvalidPayloadSize = errors.New("invalid payload size")

	// ErrUnsupportedCompression indicates the header names a compression
	// codec this build does not provide.
	ErrUnsupportedCompression = errors.New("unsupported compression codec")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header, i.e. the blob is corrupt.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrRecordTooLarge indicates a single record exceeds the maximum
	// encodable record size.
	ErrRecordTooLarge = errors.New("record too large")

	// ErrTooManyRecords indicates the writer reached the maximum record
	// count a header can describe.
	ErrTooManyRecords = errors.New("too many records")

	// ErrRecordOutOfRange indicates a record index outside [0, Count).
	ErrRecordOutOfRange = errors.New("record index out of range")

	// ErrWriterFinished indicates an append to a writer after Finish.
	ErrWriterFinished = errors.New("writer already finished")
)
