//Package topas writes closepack Structures as TOPAS str phase blocks in P1
//symmetry, ready to paste into a refinement input file.
package topas

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"closepack"
)

//Write serializes st into w as one str phase block named name: phase name,
//P1 space group, the six cell parameters and one site line per site in
//traversal order. TOPAS requires unique site labels, so the sites of st are
//renamed through closepack.UniqueLabels first.
func Write(w io.Writer, name string, st *closepack.Structure) error {
	if st == nil {
		return Error{NilStructure, "", []string{"Write"}}
	}
	closepack.UniqueLabels(st)
	l := st.Lattice()
	out := bufio.NewWriter(w)
	out.WriteString("str\n")
	fmt.Fprintf(out, "    phase_name \"%s\"\n", name)
	fmt.Fprintf(out, "    space_group \"P1\"\n")
	fmt.Fprintf(out, "    a  %.6f\n", l.A())
	fmt.Fprintf(out, "    b  %.6f\n", l.B())
	fmt.Fprintf(out, "    c  %.6f\n", l.C())
	fmt.Fprintf(out, "    al %.4f\n", l.Alpha())
	fmt.Fprintf(out, "    be %.4f\n", l.Beta())
	fmt.Fprintf(out, "    ga %.4f\n", l.Gamma())
	for _, s := range st.Sites() {
		fmt.Fprintf(out, "    site %-6s x %10.6f y %10.6f z %10.6f occ %-3s %7.4f beq %6.3f\n",
			s.Name, s.Fx(), s.Fy(), s.Fz(), s.Species, s.Occ, s.Biso)
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), "", []string{"Write"}}
	}
	return nil
}

//WriteFile writes st to the named file. A name without extension gets ".str"
//appended; names ending in ".gz" or ".zst" are compressed transparently
//(gzip and zstd respectively). The phase is named after the file's base
//name.
func WriteFile(name string, st *closepack.Structure) error {
	fname := name
	switch filepath.Ext(fname) {
	case ".str", ".gz", ".zst":
	default:
		fname += ".str"
	}
	f, err := os.Create(fname)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), fname, []string{"WriteFile"}}
	}
	defer f.Close()
	var w io.Writer = f
	switch filepath.Ext(fname) {
	case ".gz":
		h := gzip.NewWriter(f)
		defer h.Close()
		w = h
	case ".zst":
		h, err := zstd.NewWriter(f)
		if err != nil {
			return Error{err.Error(), fname, []string{"WriteFile"}}
		}
		defer h.Close()
		w = h
	}
	if err := Write(w, phaseName(fname), st); err != nil {
		return errDecorate(err, "WriteFile")
	}
	return nil
}

//phaseName derives the phase name from a file name: base name with the
//format and compression extensions stripped.
func phaseName(fname string) string {
	base := filepath.Base(fname)
	for _, ext := range []string{".zst", ".gz", ".str"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

//Errors

//Error is the error type for str writing. It fulfills closepack.Error.
type Error struct {
	message  string
	filename string //the output file with problems, or empty if none
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("topas error: %s", err.message)
	}
	return fmt.Sprintf("topas file %s error: %s", err.filename, err.message)
}

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty string only retrieves the current value.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the file the failing write was associated to.
func (err Error) FileName() string { return err.filename }

//errDecorate asserts that err implements closepack.Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(closepack.Error)
	err2.Decorate(caller)
	return err2
}

const (
	NilStructure = "given nil structure"
	UnableToOpen = "unable to open file"
)
