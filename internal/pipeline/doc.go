// Package pipeline runs one orf.Reader per sequence file on a pool of
// workers and hands ORFs to a visit callback in input order.
//
// Per-file output is buffered in its own channel; the collector drains the
// files strictly in order, so the thread count never changes the output.
package pipeline
