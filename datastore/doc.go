/*
Package datastore defines the core interfaces for RelStore's data persistence layer.

The main interface is DataStore[T], which provides generic CRUD and scan
operations for any item type T:

	type DataStore[T any] interface {
	    Get(ctx context.Context, key string) (*T, error)
	    GetMany(ctx context.Context, keys []string) ([]*T, error)
	    Create(ctx context.Context, item T) error
	    Update(ctx context.Context, item T) error
	    Put(ctx context.Context, item T) error
	    Find(ctx context.Context, query *storagemodels.Query) (*storagemodels.QueryResult[T], error)
	    Stream(ctx context.Context, query *storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	    Setup(ctx context.Context) error
	    Teardown(ctx context.Context) error
	    Clear(ctx context.Context) error
	}

Implementations:
  - rds: Aurora Serverless implementation over the AWS RDS Data API
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
maintaining flexibility for different storage backends.
*/
package datastore
