/*
Package notify implements the change-notification side of QueryWatch.

A Hub is an unbounded broadcast of "the store changed" events with no
payload. Each store backend owns one Hub and broadcasts on it after
every successful write. Each active subscription holds one subscriber
channel and re-fetches its descriptor on every signal.

Subscriber channels are buffered with capacity 1: broadcasts that land
while a subscriber is still processing the previous signal coalesce
into a single pending signal. Combined with the one-goroutine-per-
subscription loop in the key types, this serializes fetch-and-yield per
subscription and rules out out-of-order yields.
*/
package notify
