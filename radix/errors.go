package radix

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for the kinds spec.md §7 names. Out-of-range indices are
// deliberately not one of these: per the contract, bounds-checking beyond
// the stated invariants is the caller's responsibility and is not
// detected here.
var (
	ErrInvalidConfig     = errors.New("radix: invalid thread configuration")
	ErrUnsupportedTarget = errors.New("radix: SIMD partitioner unavailable on this target")
)

// validateConfig checks RadixThreadConfig per spec §8 ("numThreads < 1,
// unknown queue mode" is a fatal configuration error).
func validateConfig(cfg RadixThreadConfig) error {
	if cfg.NumThreads < 1 {
		return fmt.Errorf("%w: numThreads must be >= 1, got %d", ErrInvalidConfig, cfg.NumThreads)
	}
	if cfg.QueueMode != FIFO && cfg.QueueMode != LIFO {
		return fmt.Errorf("%w: unknown queue mode %v", ErrInvalidConfig, cfg.QueueMode)
	}
	if cfg.SlaveFac < 0 {
		return fmt.Errorf("%w: slaveFac must be >= 0, got %v", ErrInvalidConfig, cfg.SlaveFac)
	}
	return nil
}

// fatal logs diagnostic and aborts the process, matching
// original_source's fprintf-then-exit(-1) handling of invalid
// configuration (spec §7: "fatal, aborts the process with a diagnostic").
// Idiomatic Go callers should prefer the error-returning constructors;
// fatal exists only for call sites that want the source's unrecoverable
// contract literally.
func fatal(err error) {
	logrus.WithError(err).Fatal("radix: unrecoverable configuration error")
}
