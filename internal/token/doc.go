// Package token defines preprocessing token kinds and the static C89 lexeme
// catalog (keywords, operators, punctuators).
// Invariants:
//   - Catalog maps are built at package init and never written afterwards;
//     concurrent lookups need no locking.
//   - Token.Pos is the position of the token's first scalar.
//   - HeaderName tokens carry the text between the delimiters, never the
//     delimiters themselves. The same holds for StringLit.
//   - Keywords are never produced by the preprocessing scanner; LookupKeyword
//     exists for the later phase that turns identifiers into language tokens.
package token
