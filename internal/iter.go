// Package internal holds helpers shared by the duel17 packages.
package internal

import (
	"iter"
)

// Concat2 chains key/value sequences, in order, into a single sequence.
// Later sequences may repeat keys of earlier ones; consumers that build
// maps from the result therefore see the last value win.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
