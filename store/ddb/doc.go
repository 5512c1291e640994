/*
Package ddb provides a DynamoDB implementation of the store.Store interface.

Records are stored as plain items keyed by a single hash-key attribute
(default "Id"). Because descriptor predicates are expression-language
predicates rather than DynamoDB filter expressions, Fetch scans the table
with retry and pagination and evaluates the descriptor client-side. This
trades scan cost for full predicate fidelity; tables observed through this
package are expected to be small reference sets, not high-volume event data.

Change notifications cover writes made through the store (Put, Delete).
Processes that share a table with other writers can bridge external signals
by calling Changes().Broadcast() themselves, for example from a DynamoDB
Streams consumer.

Configuration comes from a YAML file or AWS_* environment variables:

	cfg, err := ddb.LoadConfig("querywatch.yaml")
	players, err := ddb.New[Player](ctx, cfg)
*/
package ddb
