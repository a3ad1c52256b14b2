package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for tattoo documents.
//
// The mapping is designed with these priorities:
//  1. Full-text search on descriptions with English stemming
//  2. Boosted relevance for artist name matches
//  3. Exact keyword matching for style, tag, and body-part filters
//  4. Numeric range queries on price
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	// Description is the main prose field.
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = true
	descFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// Artist name - no stemming; names are not English prose.
	artistFieldMapping := bleve.NewTextFieldMapping()
	artistFieldMapping.Analyzer = simple.Name
	artistFieldMapping.Store = true
	artistFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("artist_name", artistFieldMapping)

	// Studio location, searchable text.
	locationFieldMapping := bleve.NewTextFieldMapping()
	locationFieldMapping.Analyzer = simple.Name
	locationFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("location", locationFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	artistIDFieldMapping := bleve.NewTextFieldMapping()
	artistIDFieldMapping.Analyzer = keyword.Name
	artistIDFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("artist_id", artistIDFieldMapping)

	// Style is a controlled vocabulary ("traditional", "fine-line", ...),
	// matched and faceted exactly.
	styleFieldMapping := bleve.NewTextFieldMapping()
	styleFieldMapping.Analyzer = keyword.Name
	styleFieldMapping.Store = true
	styleFieldMapping.IncludeTermVectors = true // For faceting
	docMapping.AddFieldMappingsAt("style", styleFieldMapping)

	// Tags - keyword analyzer keeps compound slugs intact (e.g., "fine-line").
	tagsFieldMapping := bleve.NewTextFieldMapping()
	tagsFieldMapping.Analyzer = keyword.Name
	tagsFieldMapping.Store = true
	tagsFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	bodyPartFieldMapping := bleve.NewTextFieldMapping()
	bodyPartFieldMapping.Analyzer = keyword.Name
	bodyPartFieldMapping.Store = true
	bodyPartFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("body_part", bodyPartFieldMapping)

	sizeFieldMapping := bleve.NewTextFieldMapping()
	sizeFieldMapping.Analyzer = keyword.Name
	sizeFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("size", sizeFieldMapping)

	// --- Numeric fields (range queries, sorting) ---

	priceFieldMapping := bleve.NewNumericFieldMapping()
	priceFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("price", priceFieldMapping)

	createdAtFieldMapping := bleve.NewNumericFieldMapping()
	createdAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("created_at", createdAtFieldMapping)

	updatedAtFieldMapping := bleve.NewNumericFieldMapping()
	updatedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("updated_at", updatedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
