package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummary_Add(t *testing.T) {
	var summary RunSummary

	summary.Add(FileResult{Path: "a.c", Replacements: 2, Changed: true})
	summary.Add(FileResult{Path: "b.c"})
	summary.Add(FileResult{Path: "c.c", Skipped: true})

	assert.Equal(t, 3, summary.Examined)
	assert.Equal(t, 1, summary.Changed)
	assert.Equal(t, 2, summary.Replaced)
	assert.Equal(t, 1, summary.Skipped)
}
