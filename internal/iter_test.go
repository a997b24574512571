package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"A": 1}
	b := map[string]int{"B": 2, "C": 3}

	got := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"A": 1, "B": 2, "C": 3}, got)

	// Last value wins.
	got = maps.Collect(Concat2(maps.All(a), maps.All(map[string]int{"A": 9})))
	assert.Equal(9, got["A"])

	// Early stop.
	var keys []string
	for key := range Concat2(slices.All([]string{"x", "y"}), slices.All([]string{"z"})) {
		keys = append(keys, "k")
		if key == 1 {
			break
		}
	}
	assert.Equal([]string{"k", "k"}, keys)

	assert.Empty(maps.Collect(Concat2[string, int]()))
}
