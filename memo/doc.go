// Package memo caches the results of one pure function keyed by string.
//
// Contract:
//   - The wrapped function must be referentially transparent: the same key
//     always yields the same value. Caching is only sound under that rule.
//   - Hit: Call returns the stored value and does not invoke the function.
//   - Miss: Call invokes the function once, stores the value, returns it.
//   - Failure: nothing is stored for that key and the error is returned
//     wrapped as `memo: key "<k>": <cause>`; errors.Is reaches the cause.
//   - The cache is unbounded and never evicts. It grows until Clear, which
//     drops the entries but keeps the function. Use it for small or bounded
//     key spaces only.
//
// Two flavours share the same surface (Call / Size / Clear):
//
//	Memoizer — no internal locking; one goroutine at a time.
//	Sync     — one exclusive lock over the cache, plus singleflight so that
//	           concurrent misses on one key invoke the function exactly once.
package memo
