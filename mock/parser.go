// Package mock provides function-field mocks for propgen interfaces.
package mock

import (
	"github.com/fwojciec/propgen"
)

var _ propgen.Parser = (*Parser)(nil)

// Parser is a mock implementation of propgen.Parser.
type Parser struct {
	ParseFn      func(filename string, content []byte) (*propgen.RFP, error)
	CanParseFn   func(ext string) bool
	ExtensionsFn func() []string
}

func (p *Parser) Parse(filename string, content []byte) (*propgen.RFP, error) {
	return p.ParseFn(filename, content)
}

func (p *Parser) CanParse(ext string) bool {
	return p.CanParseFn(ext)
}

func (p *Parser) Extensions() []string {
	return p.ExtensionsFn()
}
