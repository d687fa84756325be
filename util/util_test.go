package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int{}))
}
