// Package share implements the URL sharing codec: a compact, versioned,
// reversible encoding of baskets and recipes into URL-safe strings.
//
// # Envelope
//
// The current format is minimal-projection JSON, deflate-compressed,
// mapped to the unpadded URL-safe base64 alphabet, and prefixed with a
// one-character tag identifying the generation that produced it. The
// decoder is a strict superset of every encoder generation: tagged
// payloads take the versioned path, untagged payloads fall through to
// the legacy pre-compression encoding (standard base64 of
// percent-encoded JSON), and both full and abbreviated field names are
// accepted when expanding items. Encoders move forward freely; decode
// paths are never retired.
//
// # Failure semantics
//
// Decoding never returns a partial object and never panics across the
// package boundary: every malformed, truncated, or structurally wrong
// payload yields an error wrapping ErrMalformed. Encoding a basket
// whose link would exceed MaxURLLength yields ErrTooLong, distinct
// from encoding failure, so the caller can tell the user to shrink
// the list rather than report a broken link.
package share
