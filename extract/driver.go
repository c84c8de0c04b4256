package extract

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
)

// ExtractAllLevels packages the common pseudo-level synchronously, then
// fans the remaining levels out over a bounded worker pool and blocks
// until every task finished. The first invariant violation aborts the
// whole run.
func ExtractAllLevels(db *objfiles.ObjectFileDB,
	pool *texture.Pool,
	dgoNames []string,
	commonName string,
	hacks *config.DecompileHacks,
	debugDumpLevel bool,
	extractCollision bool,
	outputPath string,
	glbPath string,
	workers int) error {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if err := ExtractCommon(db, pool, commonName, debugDumpLevel, outputPath, glbPath); err != nil {
		return err
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for idx := range dgoNames {
		idx := idx
		eg.Go(func() error {
			return ExtractFromLevel(db, pool, dgoNames[idx], hacks,
				debugDumpLevel, extractCollision, outputPath, glbPath)
		})
	}
	return eg.Wait()
}
