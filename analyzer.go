package main

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/binweight/binweight/elf"
	"github.com/binweight/binweight/internal/report"
	"github.com/binweight/binweight/internal/sizeattr"
)

type Options struct {
	Prefix           string
	CompilationUnits bool
	SplitPaths       bool
	Format           string
	Top              int
}

type Analyzer struct {
	bin  string
	elf  *elf.ELF
	opts Options
}

func NewAnalyzer(bin string, opts Options) (_ *Analyzer, err error) {
	elf, err := elf.New(bin)
	if err != nil {
		return
	}
	return &Analyzer{
		bin:  bin,
		elf:  elf,
		opts: opts,
	}, nil
}

func (a *Analyzer) Run(w io.Writer) (err error) {
	contributors, err := sizeattr.Analyze(a.elf.DWARF(), &sizeattr.Options{
		Prefix:           a.opts.Prefix,
		CompilationUnits: a.opts.CompilationUnits,
		SplitPaths:       a.opts.SplitPaths,
	})
	if err != nil {
		return
	}
	log.Debugf("attributed %d bytes over %d keys", contributors.Total(), len(contributors))
	return report.Render(w, contributors, report.Options{
		Format:   a.opts.Format,
		Top:      a.opts.Top,
		TextSize: a.elf.TextSize(),
	})
}

func (a *Analyzer) Close() error {
	return a.elf.Close()
}
