// Package naming implements the metadata-to-filename normalization pipeline:
// filename sanitization, smart title casing, conservative author reordering,
// stem assembly, and batch collision resolution.
//
// The pipeline is deterministic and total: every function accepts any string
// (including empty) and always produces a usable result. Ambiguous input is
// handled by declining to transform rather than by returning an error; the
// only cross-item state is the [UsedNameSet] owned by the caller for the
// duration of one batch.
//
// File boundaries: sanitize.go, titlecase.go, author.go, stem.go,
// collision.go.
package naming
