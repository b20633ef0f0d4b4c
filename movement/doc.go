// Package movement encodes the vehicle rules that constrain a heat-loss search.
//
// Overview:
//
//   - A Policy decides, from the previous heading and the length of the
//     current straight run, whether a proposed heading is legal and what the
//     new run length becomes.
//   - Two closed variants exist: Regular (at most 3 straight moves) and Ultra
//     (at least 4 straight moves before turning or stopping, at most 10).
//   - Policies are pure and stateless; one value may be shared by any number of
//     concurrent searches.
//
// Rules, evaluated in order:
//
//  1. Reversing the previous heading is never allowed (no previous heading at
//     the start, so the rule does not apply there).
//  2. Continuing straight is allowed while prevRun < MaxRun; run = prevRun+1.
//  3. Turning (or leaving the start) is allowed when there is no previous
//     heading or prevRun ≥ MinTurnRun; run = 1.
//
// The whole difference between the variants is the pair of thresholds
// reported by Limits.
package movement
