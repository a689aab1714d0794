// Package writers turns translated ORFs into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTA/TSV/JSON/JSONL).
//   • core/orf stays domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
