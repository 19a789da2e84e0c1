// Package montage re-references multichannel recordings.
//
// Three montages are provided:
//
//   - Rereference: subtract one reference channel from every other channel
//   - Bipolarize: subtract from each numbered electrode its lower-numbered
//     neighbour on the same shaft/stem (h3-h2, h2-h1, ...)
//   - CommonAverage: subtract the mean of all considered channels
//
// Every transform mutates the matrix and the names in place and returns a
// consider mask: true where the channel holds a valid derived signal.
// Channels excluded through WithIgnore/WithIgnoreIndices are never written
// and are always false in the mask. Copy runs a Transform on deep copies
// instead, leaving the caller's buffers untouched.
//
// Neither the matrix shape nor the number of names is ever changed.
package montage
