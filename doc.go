/*
Package relstore provides a typed, storage-agnostic item store for Go
applications, persisted in a relational database reached through the AWS RDS
Data API (Aurora Serverless).

Every item type T maps onto one logical table holding the item's string
primary key, the item itself as a JSON blob, and one column per declared
secondary index. Each store operation translates into a single parameterized
SQL statement executed remotely; the adapter holds no connection state.

Key Features:
  - Type-safe operations using Go generics
  - Secondary-index descriptors shared by writes, filters and schema setup
  - Keyset-paginated scans with composable filter predicates
  - Single-statement upserts (Put) next to strict inserts (Create)
  - Semantic error types for better error handling
  - Thread-safe storage management and in-memory mocks for testing

Basic Usage:

	client, _ := rds.NewRDSDataClient(accessKey, secretKey, region)
	store, _ := rds.NewRdsDataStore[User](client,
	    rds.StoreConfig{ResourceArn: arn, SecretArn: secret, Database: "app", Table: "users"},
	    func(u User) string { return u.ID },
	    rds.Ordered("age", func(u User) *int64 { return u.Age }, rds.Nullable(rds.IntCodec())),
	)

	_ = store.Setup(ctx)
	_ = store.Create(ctx, User{ID: "u1", Age: &age})
	page, _ := store.Find(ctx, &storagemodels.Query{Limit: 50})

For more information, see the documentation at https://github.com/suparena/relstore
*/
package relstore
