package wcfg

import (
	"io"

	"github.com/wcfg-go/wcfg/semiring"
)

// Pipeline bundles a parsed grammar with its precomputed CNF form:
// NewPipeline parses once and converts to CNF eagerly so repeated Accept
// calls never reconvert.
type Pipeline struct {
	Grammar *Grammar
	cnf     *Grammar
}

// NewPipeline parses a grammar from r and eagerly computes its CNF form.
func NewPipeline(r io.Reader, cfg ParseConfig) (*Pipeline, error) {
	g, err := Parse(r, cfg)
	if err != nil {
		return nil, err
	}
	cnf, err := g.CNF()
	if err != nil {
		return nil, err
	}
	return &Pipeline{Grammar: g, cnf: cnf}, nil
}

// Accept computes the total weight the pipeline's grammar assigns to
// input.
func (p *Pipeline) Accept(input []Terminal) (semiring.Value, error) {
	return p.cnf.Accept(input)
}
