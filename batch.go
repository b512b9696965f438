package comcot2xyz

import (
	"fmt"
	"log"

	"github.com/phil-mansfield/comcot2xyz/io"
)

// LayerFailure records why a layer was skipped.
type LayerFailure struct {
	Layer io.LayerID
	Err   error
}

// Report lists the outcome of every layer of a run.
type Report struct {
	Converted []io.LayerID
	Failed    []LayerFailure
}

// ConvertRange checks con and converts every layer it names, one after
// another. With OnError = Abort the first failure stops the run and is
// returned. With OnError = Skip failures are logged and collected in the
// Report, and the returned error is nil.
func ConvertRange(con *io.ConvertConfig) (*Report, error) {
	if err := con.Check(); err != nil { return nil, err }
	ids, err := con.Layers()
	if err != nil { return nil, err }

	rep := &Report{}
	for i, id := range ids {
		log.Printf("Converting layer %s (%d/%d)", id, i+1, len(ids))

		err := ConvertLayer(con, id)
		if err == nil {
			rep.Converted = append(rep.Converted, id)
			continue
		}

		if con.OnError != io.SkipOnError {
			return rep, fmt.Errorf("layer %s: %w", id, err)
		}
		log.Printf("Skipping layer %s: %s", id, err.Error())
		rep.Failed = append(rep.Failed, LayerFailure{id, err})
	}

	return rep, nil
}
