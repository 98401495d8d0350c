//Package cif writes closepack Structures as CIF files in P1 symmetry.
//The writers are plain collaborators of the core: they consume a finished
//Structure (ordered sites plus a six-parameter lattice) and only format it.
package cif

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

//Write serializes st into w as one CIF data block named name: the six cell
//parameters, the P1 space group, and one atom-site loop row per site in
//traversal order. Site labels are uniquified first (see
//closepack.UniqueLabels), which renames the sites of st.
func Write(w io.Writer, name string, st *closepack.Structure) error {
	if st == nil {
		return Error{NilStructure, "", []string{"Write"}}
	}
	closepack.UniqueLabels(st)
	l := st.Lattice()
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "data_%s\n", sanitize(name))
	fmt.Fprintf(out, "_audit_creation_method    'closepack'\n")
	fmt.Fprintf(out, "_cell_length_a            %.6f\n", l.A())
	fmt.Fprintf(out, "_cell_length_b            %.6f\n", l.B())
	fmt.Fprintf(out, "_cell_length_c            %.6f\n", l.C())
	fmt.Fprintf(out, "_cell_angle_alpha         %.4f\n", l.Alpha())
	fmt.Fprintf(out, "_cell_angle_beta          %.4f\n", l.Beta())
	fmt.Fprintf(out, "_cell_angle_gamma         %.4f\n", l.Gamma())
	fmt.Fprintf(out, "_symmetry_space_group_name_H-M    'P 1'\n")
	fmt.Fprintf(out, "_symmetry_Int_Tables_number       1\n")
	out.WriteString("loop_\n")
	out.WriteString("_atom_site_label\n")
	out.WriteString("_atom_site_type_symbol\n")
	out.WriteString("_atom_site_occupancy\n")
	out.WriteString("_atom_site_fract_x\n")
	out.WriteString("_atom_site_fract_y\n")
	out.WriteString("_atom_site_fract_z\n")
	out.WriteString("_atom_site_B_iso_or_equiv\n")
	for _, s := range st.Sites() {
		fmt.Fprintf(out, "%-6s %-3s %7.4f  %10.6f %10.6f %10.6f  %6.3f\n",
			s.Name, s.Species, s.Occ, s.Fx(), s.Fy(), s.Fz(), s.Biso)
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), "", []string{"Write"}}
	}
	return nil
}

//WriteFile writes st to the named file. A name without extension gets ".cif"
//appended; names ending in ".gz" or ".zst" are compressed transparently
//(gzip and zstd respectively), which keeps long stacking supercells
//manageable. The data block is named after the file's base name.
func WriteFile(name string, st *closepack.Structure) error {
	fname := name
	switch filepath.Ext(fname) {
	case ".cif", ".gz", ".zst":
	default:
		fname += ".cif"
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
	if err := Write(w, blockName(fname), st); err != nil {
		return errDecorate(err, "WriteFile")
	}
	return nil
}

//blockName derives the data block name from a file name: base name with the
//format and compression extensions stripped.
func blockName(fname string) string {
	base := filepath.Base(fname)
	for _, ext := range []string{".zst", ".gz", ".cif"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

//sanitize keeps data block names single-token: CIF parsers stop at
//whitespace.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return '_'
		}
		return r
	}, name)
}

//Errors

//Error is the error type for CIF writing. It fulfills closepack.Error.
type Error struct {
	message  string
	filename string //the output file with problems, or empty if none
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("cif error: %s", err.message)
	}
	return fmt.Sprintf("cif file %s error: %s", err.filename, err.message)
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
