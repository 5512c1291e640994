/*
Package memory provides a thread-safe in-memory implementation of the
store.Store interface.

Descriptors are evaluated client-side against a snapshot of the current
records. Every successful write (Put, Delete, Clear) broadcasts on the
store's change hub, which is what drives re-fetches in subscribed keys.

The registry package uses an empty Store as the fallback when a key is
constructed for a record type with no registered store.
*/
package memory
