package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Sentence is a contiguous span of document text with trimmed boundaries.
// Ordering follows document order.
type Sentence struct {
	Text string
}

// Entity is a text span tagged with a semantic category, e.g. PERSON.
type Entity struct {
	Text  string
	Label string
}

// Annotation holds the linguistic pipeline output for one document.
type Annotation struct {
	Sentences []Sentence
	Entities  []Entity
}

// Pipeline segments text into sentences and annotates named entities.
// The underlying model is loaded once and is read-only afterwards, so a
// single Pipeline is safe for concurrent parse calls.
type Pipeline struct {
	model *prose.Model
}

// NewPipeline loads the language model. With an empty modelPath the built-in
// English model is used; otherwise the model is read from disk and a missing
// path fails with ErrModelUnavailable.
func NewPipeline(modelPath string) (*Pipeline, error) {
	if modelPath == "" {
		return &Pipeline{}, nil
	}

	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrModelUnavailable, modelPath)
	}

	return &Pipeline{model: prose.ModelFromDisk(modelPath)}, nil
}

// Process runs segmentation and entity extraction over the full document
// text once. The returned annotation is owned by the caller.
func (p *Pipeline) Process(text string) (*Annotation, error) {
	opts := []prose.DocOpt{
		prose.WithSegmentation(true),
		prose.WithTagging(true),
		prose.WithExtraction(true),
	}
	if p.model != nil {
		opts = append(opts, prose.UsingModel(p.model))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}

	annotation := &Annotation{}
	for _, sent := range doc.Sentences() {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed == "" {
			continue
		}
		annotation.Sentences = append(annotation.Sentences, Sentence{Text: trimmed})
	}
	for _, ent := range doc.Entities() {
		annotation.Entities = append(annotation.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}

	return annotation, nil
}
