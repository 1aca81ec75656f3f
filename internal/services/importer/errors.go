package importer

import "errors"

// ErrSourceUnreadable means the import source could not be parsed as
// tabular data at all. It is a batch-level failure: no rows are
// processed and the registry is untouched.
var ErrSourceUnreadable = errors.New("import source is not readable as tabular data")
