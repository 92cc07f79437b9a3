// SPDX-License-Identifier: MIT

// Package ballot defines ranked ballots and the read-only tabular view the
// tallying packages consume.
//
// What:
//
//   - Rank: a positive integer position (1 = most preferred) or Unranked.
//   - Candidate: a stable integer index paired with a display name.
//   - Table: the collaborator interface giving candidate names, ballot count
//     and per-ballot ranks. Any storage (CSV frame, database rows, fixtures)
//     can satisfy it.
//   - Set: an in-memory Table with validation at construction.
//
// Validation rules:
//
//   - at least one candidate (ErrNoCandidates);
//   - names unique after Unicode NFC normalisation (ErrDuplicateCandidate);
//   - every rank is either positive or Unranked (ErrMalformedRank).
//
// Errors:
//
//   - ErrNoCandidates        no candidate names supplied
//   - ErrUnknownCandidate    a referenced name is absent
//   - ErrMalformedRank       rank is non-positive and not Unranked
//   - ErrDuplicateCandidate  two names collide
//   - ErrBallotOutOfRange    ballot index outside [0, BallotCount)
//
// Set never mutates after construction, so it may be shared by readers.
package ballot
