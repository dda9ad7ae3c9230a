// Package ordering implements the application's core mutation logic for
// categories and tasks: ownership-scoped reads and writes, dense zero-based
// sort_order maintenance on create and delete, bulk reorders, and the
// archived/not-archived partition handling for task status changes.
//
// Every operation runs as a single transactional unit injected through
// store.TransactionManager: begin, operate through transaction-bound stores,
// commit on success, roll back on error. Ownership is enforced by scoping
// every read and write to the caller-supplied user ID; a row owned by
// another user is indistinguishable from a missing row.
//
// Concurrency note: read-then-write decisions (duplicate-title pre-checks,
// max sort_order lookups) can race between transactions for the same owner.
// The database unique constraint on (user_id, title) turns title races into
// reported conflicts; duplicate sort_order values produced by concurrent
// writers are an accepted weak-consistency tradeoff and are re-densified by
// the next delete in the scope.
package ordering
