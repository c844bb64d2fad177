/*
Package storagemodels defines the data structures used throughout RelStore.

Key Types:

Query:
One page of a keyset-paginated scan:

	query := &storagemodels.Query{
	    Cursor: "u47",
	    Limit:  50,
	    Filter: map[string]storagemodels.Predicate{
	        "age":  {Gt: int64(45)},
	        "name": {In: []any{"ada", "grace"}},
	    },
	}

QueryResult:
The returned page. Cursor is nil when the scan is exhausted; otherwise it is
the key of the last returned item and feeds the next Query verbatim.

StreamResult:
Results from streaming operations with metadata:

	type StreamResult[T any] struct {
	    Item  T          // The decoded item
	    Key   string     // The item's primary key
	    Error error      // Stream-terminating error, if any
	    Meta  StreamMeta // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
