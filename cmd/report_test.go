package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/motif/model"
)

func TestAnalyzeCatalog(t *testing.T) {
	c := model.Catalog{Entries: []model.CatalogEntry{
		{Source: "a.ly", Notes: 3, NextOffset: 48},
		{Source: "b.ly", Notes: 8, NextOffset: 128, Warnings: []string{"w"}},
	}}
	r := analyzeCatalog(c)

	assert := assert.New(t)
	assert.Equal(2, r.numFiles)
	assert.Equal(int64(11), r.numNotes)
	assert.Equal(int64(176), r.numTicks)
	assert.Equal(1, r.numWarnings)
	assert.Equal("b.ly", r.longest)
	assert.Contains(report(c), "longest: b.ly")
}
