// Package trace writes one line per executed instruction, optionally
// brotli compressed, for offline comparison against other emulators.
package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/thelolagemann/dmgcore/internal/cpu"
)

// Writer formats trace lines onto an io.Writer.
type Writer struct {
	buf *bufio.Writer
	enc *brotli.Writer
}

// New returns a Writer writing to w. With compress set the stream is
// brotli encoded. The caller must Close the Writer to flush it; w
// itself is left open.
func New(w io.Writer, compress bool) *Writer {
	t := &Writer{}
	if compress {
		t.enc = brotli.NewWriterLevel(w, brotli.DefaultCompression)
		w = t.enc
	}
	t.buf = bufio.NewWriter(w)
	return t
}

// Trace writes the line for the instruction op, named name, about to be
// executed with the registers in regs:
//
//	PC:0150 OP:C3 JP nn A:01 F:Z--- B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE
func (t *Writer) Trace(regs cpu.Snapshot, op []byte, name string) error {
	_, err := fmt.Fprintf(t.buf, "PC:%04X OP:%X %s A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X\n",
		regs.PC, op, name, regs.A, Flags(regs.F), regs.B, regs.C, regs.D, regs.E, regs.H, regs.L, regs.SP)
	return err
}

// Flags renders the upper nibble of F as ZNHC, with a dash for every
// flag that is reset.
func Flags(f uint8) string {
	b := []byte("----")
	for i, c := range "ZNHC" {
		if f&(0x80>>i) != 0 {
			b[i] = byte(c)
		}
	}
	return string(b)
}

// Close flushes any buffered lines and finishes the compressed stream.
func (t *Writer) Close() error {
	if err := t.buf.Flush(); err != nil {
		return err
	}
	if t.enc != nil {
		return t.enc.Close()
	}
	return nil
}
