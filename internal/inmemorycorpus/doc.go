// Package inmemorycorpus provides an ephemeral, thread-safe, in-memory
// implementation of the plant.Corpus interface.
//
// # When to Use
//
// This implementation is suitable for:
//   - `--mock` runs that must not touch the filesystem
//   - Tests of the planting policy and the app run loop
//
// Trees are cloned on the way in and on the way out, so callers can keep
// mutating what they stored or loaded without affecting the corpus.
package inmemorycorpus
