package main

import (
	"fmt"
	"io"

	"github.com/sirkon/errors"

	"github.com/sirkon/sllist/internal/logging"
)

const noValueMarker = "<none>"

var _ logging.Logger = &printer{}

// printer вывод событий прогона построчно. Запоминает первую ошибку записи,
// последующие события после неё игнорируются.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// Popped для реализации logging.Logger.
func (p *printer) Popped(v int) {
	if p.err != nil {
		return
	}

	if _, err := fmt.Fprintln(p.w, v); err != nil {
		p.err = errors.Wrap(err, "print popped value").Int("value", v)
	}
}

// PoppedNothing для реализации logging.Logger.
func (p *printer) PoppedNothing() {
	if p.err != nil {
		return
	}

	if _, err := fmt.Fprintln(p.w, noValueMarker); err != nil {
		p.err = errors.Wrap(err, "print no value marker")
	}
}

// Err возврат первой случившейся ошибки записи.
func (p *printer) Err() error {
	return p.err
}
