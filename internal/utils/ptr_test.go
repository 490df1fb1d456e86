package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	p := Ptr(42)
	assert.Equal(t, 42, *p)

	// Each call returns a fresh copy.
	assert.NotSame(t, Ptr("a"), Ptr("a"))
}

func TestTrimmedOrNil(t *testing.T) {
	assert.Nil(t, TrimmedOrNil(nil))
	assert.Nil(t, TrimmedOrNil(Ptr("")))
	assert.Nil(t, TrimmedOrNil(Ptr(" \t\n")))
	assert.Equal(t, "Chess", *TrimmedOrNil(Ptr("  Chess ")))
}
