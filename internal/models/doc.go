// Package models defines the core domain models for Splitscan.
//
// # Data Flow
//
// Raw OCR text is parsed into a ReceiptRecord (best-effort extraction, fields
// may be empty). A ReceiptRecord plus a participant list and tax/tip
// configuration feeds the calculator, which produces a SplitResult.
//
// # Design Principles
//
//  1. **Missing vs empty is explicit**: extraction never guarantees numeric
//     validity, so ReceiptRecord money fields are strings ("" = not found).
//  2. **Value snapshots**: SplitResult carries no back-reference to the
//     engine that produced it; it is recomputed in full on every calculation.
//  3. **Avoid circular references**: items reference participants by ID.
//
// The same structs serve the RPC layer (JSON codec) and the storage layer
// (JSON columns), so field tags are part of the persisted contract.
package models
