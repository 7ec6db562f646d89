package cli

import "errors"

var (
	// ErrNoSource is returned when neither --fixture nor --builder is given.
	ErrNoSource = errors.New("meshwalk: no topology source, use --fixture or --builder")

	// ErrTwoSources is returned when both --fixture and --builder are given.
	ErrTwoSources = errors.New("meshwalk: --fixture and --builder are exclusive")

	// ErrBadFixture is returned for a malformed fixture file.
	ErrBadFixture = errors.New("meshwalk: invalid fixture")

	// ErrBadSpec is returned for a malformed builder, weight, order or distance spec.
	ErrBadSpec = errors.New("meshwalk: invalid spec")

	// ErrUnreachable is returned by shortest when the target cannot be reached.
	ErrUnreachable = errors.New("meshwalk: target unreachable")
)
