package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestGetKeysLength(t *testing.T) {
	m := map[int]string{1: "x", 2: "y"}
	assert.Equal(t, 2, len(GetKeys(m)))
}
