/*
Package registry maps Go types to the SQL tables their items persist in.

Registration is a startup-time step, typically in init() functions:

	registry.RegisterTableName[User]("users")

A store constructed without an explicit table name resolves it here once, at
construction time. Index descriptors are not registered globally; they are
passed to the store constructor so that the write columns, schema columns and
filterable columns all derive from one immutable collection.

The registry is thread-safe and should be populated during initialization.
*/
package registry
