// Package schedula converts government records-retention schedules into
// uniform structured records.
//
// A schedule document arrives as positioned words and optional table grids
// per page (see [model.Document]). The processor runs each configured
// extraction strategy, normalizes and scores every candidate record set, and
// keeps the highest-scoring one.
//
// Basic usage:
//
//	p, err := schedula.New(schedula.Config{Profile: dialect.Virginia()})
//	if err != nil {
//	    // handle error
//	}
//	result, warnings := p.Process(ctx, doc)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", schedula.FormatWarnings(warnings))
//	}
//	if result != nil {
//	    // result.Records holds the winning extraction
//	}
//
// For advanced use cases, the lower-level layout, tables, and normalize
// packages are also available.
package schedula

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	p := schedula.Must(schedula.New(schedula.Config{Profile: dialect.Virginia()}))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
