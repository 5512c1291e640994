/*
Package store defines the fetch contract consumed by QueryWatch keys.

The Store[T] interface couples two things every backend must provide: a
descriptor-driven fetch (eager, via Fetch, or lazy and batched, via
FetchPaged) and a change broadcast hub that fires after every write.

Implementations:
  - memory: thread-safe in-memory store, also the fallback used when no
    store is registered for a record type
  - ddb: DynamoDB-backed store

Rows[T] is the lazy collection handed out by FetchPaged and passed
through fetch-paged keys unconverted; it pulls one batch at a time so
large result sets are not materialized eagerly.
*/
package store
