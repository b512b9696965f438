// Package comcot2xyz converts the gridded output of COMCOT tsunami runs into
// XYZ point files.
//
// For every layer, COMCOT writes a longitude file, a latitude file and two
// grids: the maximum inundation height (zmax) and the arrival time of the
// wave front (ttt). The grids are written row by row, but each row is wrapped
// over several lines of fixed width. The conversion rebuilds the rows with
// grid.Reassemble and writes one "lon lat value" line per grid cell.
package comcot2xyz

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/phil-mansfield/comcot2xyz/grid"
	"github.com/phil-mansfield/comcot2xyz/io"
)

// Dataset holds everything read for a single layer.
type Dataset struct {
	Layer     io.LayerID
	Xs, Ys    []string
	Zmax, TTT *grid.Matrix
}

// LoadLayer reads the four files of a layer from dir and rebuilds its two
// grids. Each grid works out its own wrap width from its first line, since
// the zmax and ttt files aren't required to share a line width.
func LoadLayer(dir string, id io.LayerID, ext string) (*Dataset, error) {
	files := id.Files(ext)
	ds := &Dataset{Layer: id}

	var err error
	if ds.Xs, err = readCoordinates(dir, id, files.X); err != nil {
		return nil, err
	}
	if ds.Ys, err = readCoordinates(dir, id, files.Y); err != nil {
		return nil, err
	}

	width, height := len(ds.Xs), len(ds.Ys)
	if ds.Zmax, err = readGrid(dir, id, files.Zmax, width, height); err != nil {
		return nil, err
	}
	if ds.TTT, err = readGrid(dir, id, files.TTT, width, height); err != nil {
		return nil, err
	}

	return ds, nil
}

func readCoordinates(dir string, id io.LayerID, name string) ([]string, error) {
	path := filepath.Join(dir, name)
	xs, err := io.ReadCoordinates(path)
	if err != nil { return nil, &io.LayerFileError{Layer: id, Path: path, Err: err} }
	return xs, nil
}

func readGrid(
	dir string, id io.LayerID, name string, width, height int,
) (*grid.Matrix, error) {
	path := filepath.Join(dir, name)
	lines, err := io.ReadLines(path)
	if err != nil { return nil, &io.LayerFileError{Layer: id, Path: path, Err: err} }

	return grid.Reassemble(name, lines, width, height)
}

// Check re-reads the coordinate files numerically and makes sure they agree
// with the coordinate tokens in ds.
func (ds *Dataset) Check(dir, ext string) error {
	files := ds.Layer.Files(ext)
	if err := io.CheckCoordinates(filepath.Join(dir, files.X), ds.Xs); err != nil {
		return err
	}
	return io.CheckCoordinates(filepath.Join(dir, files.Y), ds.Ys)
}

// Records flattens both grids of the layer.
func (ds *Dataset) Records(reverseY bool) (zmax, ttt []grid.Record, err error) {
	if zmax, err = grid.Flatten(ds.Zmax, ds.Xs, ds.Ys, reverseY); err != nil {
		return nil, nil, err
	}
	if ttt, err = grid.Flatten(ds.TTT, ds.Xs, ds.Ys, reverseY); err != nil {
		return nil, nil, err
	}
	return zmax, ttt, nil
}

// ConvertLayer converts a single layer, writing zmax_NN.xyz and ttt_NN.xyz
// to con.Output. Both grids are fully read and flattened before anything is
// written, so a layer with a missing or malformed file produces no output.
func ConvertLayer(con *io.ConvertConfig, id io.LayerID) error {
	ds, err := LoadLayer(con.Input, id, con.Extension)
	if err != nil { return err }

	log.Printf("Layer %s: %d x %d grid", id, len(ds.Xs), len(ds.Ys))
	for _, m := range []*grid.Matrix{ds.Zmax, ds.TTT} {
		if s, err := grid.Summarize(m); err != nil {
			log.Printf("Layer %s: could not summarize %s: %s", id, m.Name, err)
		} else {
			log.Printf("Layer %s: %s: %s", id, m.Name, s)
		}
	}

	if con.CheckCoordinates {
		if err = ds.Check(con.Input, con.Extension); err != nil {
			return fmt.Errorf("layer %s: %w", id, err)
		}
	}

	zmax, ttt, err := ds.Records(con.ReverseY)
	if err != nil { return err }

	if err = os.MkdirAll(con.Output, 0777); err != nil { return err }

	return writeOutputs(con.Output, id, zmax, ttt)
}

// writeOutputs stages both XYZ files before moving either into place, so a
// failed write leaves the output of earlier runs alone. Only a failed rename
// in Commit can leave the new zmax file next to an old ttt file.
func writeOutputs(dir string, id io.LayerID, zmax, ttt []grid.Record) error {
	zmaxName, tttName := id.Outputs()

	set := &io.XYZSet{}
	if err := set.Add(filepath.Join(dir, zmaxName), zmax); err != nil {
		return err
	}
	if err := set.Add(filepath.Join(dir, tttName), ttt); err != nil {
		set.Discard()
		return err
	}
	if err := set.Commit(); err != nil { return err }

	log.Printf("Layer %s: wrote %s and %s to %s",
		id, zmaxName, tttName, dir)
	return nil
}
