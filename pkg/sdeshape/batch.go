package sdeshape

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// Record is one undecoded row: its identity, geometry type from the layer
// metadata, and the raw stream bytes.
type Record struct {
	ID   int64
	Type GeometryType
	Data []byte
}

// BatchOptions controls parallel batch decoding and error handling.
type BatchOptions struct {
	// Parallel enables concurrent decoding.
	// When true, records are decoded using multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of decoder goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes decoding to continue even when individual records
	// fail. Failed records are skipped and errors are collected.
	// When false, the first error stops decoding and is returned
	// immediately.
	SkipErrors bool

	// Progress is an optional callback for tracking decode progress.
	// Called after each record is decoded (successfully or with error).
	// Parameters: (decoded, total) where decoded is the count of records
	// processed so far.
	Progress func(decoded, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each decode error is written here with the record ID and error
	// details.
	ErrorLog io.Writer
}

// DefaultBatchOptions returns batch options with sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Progress:   nil,
		ErrorLog:   nil,
	}
}

// DecodeBatch decodes a set of records against one coordinate system, in
// parallel, with progress reporting.
//
// Each worker goroutine owns a private decoder session, so scratch buffer
// reuse inside the decoder never crosses goroutines. Decoded features are
// returned in record order regardless of which worker finished first.
//
// Example:
//
//	features, errs := sdeshape.DecodeBatch(records, ref.CoordinateSystem(),
//	    sdeshape.BatchOptions{
//	        Parallel:   true,
//	        SkipErrors: true,
//	        Progress: func(decoded, total int) {
//	            fmt.Printf("\rDecoding: %d/%d", decoded, total)
//	        },
//	        ErrorLog: os.Stderr,
//	    })
//
//	if len(errs) > 0 {
//	    fmt.Printf("\nSkipped %d records due to errors\n", len(errs))
//	}
//	layer := sdeshape.NewLayer(features)
func DecodeBatch(records []Record, cs CoordinateSystem, opts BatchOptions) ([]Feature, []error) {
	if len(records) == 0 {
		return []Feature{}, nil
	}

	if !opts.Parallel {
		return decodeBatchSerial(records, cs, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	type decodeResult struct {
		index   int
		feature Feature
		err     error
	}

	jobs := make(chan int, len(records))
	results := make(chan decodeResult, len(records))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dec := NewDecoder(cs)
			for index := range jobs {
				rec := records[index]
				feature, err := dec.DecodeFeature(rec.ID, rec.Type, rec.Data)
				results <- decodeResult{
					index:   index,
					feature: feature,
					err:     err,
				}
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	featureMap := make(map[int]Feature)
	var errors []error
	decoded := 0

	for result := range results {
		decoded++

		if opts.Progress != nil {
			opts.Progress(decoded, len(records))
		}

		if result.err != nil {
			err := fmt.Errorf("record %d: %w", records[result.index].ID, result.err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error decoding record: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			} else {
				return nil, []error{err}
			}
		}

		featureMap[result.index] = result.feature
	}

	features := make([]Feature, 0, len(featureMap))
	for i := 0; i < len(records); i++ {
		if feature, ok := featureMap[i]; ok {
			features = append(features, feature)
		}
	}

	return features, errors
}

// decodeBatchSerial decodes records one at a time with a single reused
// decoder session (fallback when Parallel=false).
func decodeBatchSerial(records []Record, cs CoordinateSystem, opts BatchOptions) ([]Feature, []error) {
	features := make([]Feature, 0, len(records))
	var errors []error

	dec := NewDecoder(cs)
	for i, rec := range records {
		if opts.Progress != nil {
			opts.Progress(i, len(records))
		}

		feature, err := dec.DecodeFeature(rec.ID, rec.Type, rec.Data)
		if err != nil {
			err := fmt.Errorf("record %d: %w", rec.ID, err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error decoding record: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			} else {
				return nil, []error{err}
			}
		}

		features = append(features, feature)
	}

	if opts.Progress != nil {
		opts.Progress(len(records), len(records))
	}

	return features, errors
}
