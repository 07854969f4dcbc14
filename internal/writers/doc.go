// Package writers turns filter evaluations into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (list repr, text, TSV, JSON/JSONL).
//   • result stays domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • Streaming formats write each evaluation as soon as it arrives, so output
//     for earlier files survives a failure on a later one.
package writers
