// SPDX-License-Identifier: MIT

// Package window holds the small data model shared by the scanners in this
// module: the half-open Window over a sequence and the FrequencyMap used to
// count symbols or substrings inside a window.
//
// What
//
//   - Window{Left, Right} describes the index range [Left, Right).
//   - FrequencyMap counts string keys. Counts never go negative and keys whose
//     count drops to zero disappear, so two maps with the same multiset of keys
//     are Equal regardless of the order in which keys were added or removed.
//   - Every FrequencyMap keeps an order-independent xxhash fingerprint of its
//     contents, updated in O(1) on Add/Remove. Equal compares fingerprints
//     first and only walks the keys when they agree.
//
// Ownership
//
//	Values of both types are created, mutated and discarded inside a single
//	call. A FrequencyMap is not safe for concurrent mutation.
//
// Complexity
//
//   - Add, Remove, Count, Fingerprint: O(1) amortized (plus hashing the key).
//   - Equal: O(1) on mismatch of size/fingerprint, O(distinct keys) otherwise.
//   - Keys: O(d log d) for d distinct keys (sorted output).
package window
