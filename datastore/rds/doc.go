/*
Package rds provides an Aurora Serverless implementation of the DataStore
interface over the AWS RDS Data API.

The RdsDataStore supports:
  - One logical table per store: key column, JSONB item blob, one column per
    declared secondary index
  - Strict inserts (Create), in-place updates (Update) and single-statement
    atomic upserts (Put)
  - Batch point lookups with one statement (GetMany)
  - Forward-only keyset pagination with overfetch-by-one (Find)
  - Channel-based streaming over all remaining pages (Stream)
  - Schema lifecycle: Setup / Teardown / Clear

Every operation maps to exactly one ExecuteStatement call; the adapter holds
no connection, pool or retry state. Failures from the Data API propagate
unmodified.

Index Descriptors:
Secondary fields are declared once, at construction, from a closed set of
variants. The same descriptor drives the written columns, the filterable
columns and the schema columns:

	store, err := rds.NewRdsDataStore[User](client, cfg,
	    func(u User) string { return u.ID },
	    rds.Ordered("age", func(u User) *int64 { return u.Age }, rds.Nullable(rds.IntCodec())),
	    rds.Exact("country", func(u User) string { return u.Country }, rds.StringCodec()),
	)

Scanning:
Find takes a Query with an optional cursor, limit and filter map; the fluent
builder assembles one:

	page, err := store.NewFind().
	    WhereGreaterThan("age", int64(45)).
	    WhereIn("country", "US", "CA").
	    WithLimit(50).
	    Execute(ctx)

The returned cursor is the key of the last item of the page, or nil when the
scan is exhausted; feed it back via StartAfter to continue.
*/
package rds
