package io

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/phil-mansfield/comcot2xyz/grid"
)

// XYZSet writes a group of XYZ files which should appear together. Add
// writes each file to a temporary file next to its destination, and Commit
// moves all of them into place. Until Commit is called, existing files at the
// destinations are untouched.
type XYZSet struct {
	paths, tmps []string
}

// Add writes recs as one "x y value" line per record, in order, with no
// header, to a temporary file which Commit will rename to path.
func (set *XYZSet) Add(path string, recs []grid.Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil { return err }
	tmpName := tmp.Name()

	if err = writeRecords(tmp, recs); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	set.paths = append(set.paths, path)
	set.tmps = append(set.tmps, tmpName)
	return nil
}

func writeRecords(f *os.File, recs []grid.Record) error {
	if err := f.Chmod(0644); err != nil { return err }

	wr := bufio.NewWriter(f)
	for _, r := range recs {
		wr.WriteString(r.X)
		wr.WriteByte(' ')
		wr.WriteString(r.Y)
		wr.WriteByte(' ')
		wr.WriteString(r.Value)
		wr.WriteByte('\n')
	}
	return wr.Flush()
}

// Commit renames every staged file to its destination.
func (set *XYZSet) Commit() error {
	for i := range set.tmps {
		if err := os.Rename(set.tmps[i], set.paths[i]); err != nil {
			set.tmps, set.paths = set.tmps[i:], set.paths[i:]
			set.Discard()
			return err
		}
	}
	set.tmps, set.paths = nil, nil
	return nil
}

// Discard removes every staged file which hasn't been committed.
func (set *XYZSet) Discard() {
	for _, tmp := range set.tmps {
		os.Remove(tmp)
	}
	set.tmps, set.paths = nil, nil
}

// WriteXYZ writes a single XYZ file. path never holds a partial file.
func WriteXYZ(path string, recs []grid.Record) error {
	set := &XYZSet{}
	if err := set.Add(path, recs); err != nil { return err }
	return set.Commit()
}
