package main

import (
	"context"

	md2html "github.com/alnah/go-md2html"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2html.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2html.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// libraryPool adapts md2html.ServicePool to the Pool interface.
type libraryPool struct {
	pool *md2html.ServicePool
}

func newLibraryPool(n int, opts ...md2html.Option) *libraryPool {
	return &libraryPool{pool: md2html.NewServicePool(n, opts...)}
}

func (p *libraryPool) Acquire() Converter {
	return p.pool.Acquire()
}

func (p *libraryPool) Release(c Converter) {
	if svc, ok := c.(*md2html.Service); ok {
		p.pool.Release(svc)
	}
}

func (p *libraryPool) Size() int {
	return p.pool.Size()
}
