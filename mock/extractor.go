package mock

import (
	"github.com/fwojciec/propgen"
)

var _ propgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of propgen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*propgen.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*propgen.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ propgen.Converter = (*Converter)(nil)

// Converter is a mock implementation of propgen.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
