// Package chart defines the rendering collaborator contract. The query core
// only assembles chart specs and hands them off; it never inspects the
// rendered artifact.
package chart

import "EconScout/internal/model"

// Renderer receives a chart spec plus the datasets it references.
type Renderer interface {
	Render(spec model.ChartSpec, datasets []model.ProcessedDataset) error
}

// NoopRenderer is used when no rendering backend is wired in.
type NoopRenderer struct{}

func NewNoopRenderer() *NoopRenderer { return &NoopRenderer{} }

func (n *NoopRenderer) Render(_ model.ChartSpec, _ []model.ProcessedDataset) error { return nil }
