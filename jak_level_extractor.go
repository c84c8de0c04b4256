package main

import (
	"flag"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/extract"
	"github.com/mogaika/jak_level_extractor/objfiles"
	"github.com/mogaika/jak_level_extractor/texture"
)

func main() {
	var objsDir, texDir, outDir, glbDir, levels, common, version, hacksPath string
	var dumpLevels, extractCollision, verbose bool
	var workers int
	flag.StringVar(&objsDir, "objs", "", "Path to linker object dumps (*.god)")
	flag.StringVar(&texDir, "tex", "", "Path to unpacked texture pool")
	flag.StringVar(&outDir, "out", "out", "Output directory for fr3 files")
	flag.StringVar(&glbDir, "glb-out", "glb_out", "Output directory for debug glb dumps")
	flag.StringVar(&levels, "levels", "", "Comma separated DGO names to extract")
	flag.StringVar(&common, "common", "GAME.CGO", "Name of textures/art-groups only archive")
	flag.StringVar(&version, "version", "jak1", "Game version: jak1 or jak2")
	flag.StringVar(&hacksPath, "hacks", "", "Optional yaml with per-level decompile hacks")
	flag.BoolVar(&dumpLevels, "dump-levels", false, "Also export debug glb files")
	flag.BoolVar(&extractCollision, "extract-collision", false, "Extract collision geometry")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.IntVar(&workers, "j", 0, "Worker count, 0 for cpu count")
	flag.Parse()

	if objsDir == "" || texDir == "" || levels == "" {
		flag.PrintDefaults()
		return
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	gameVersion, err := config.ParseGameVersion(version)
	if err != nil {
		log.Fatal(err)
	}

	db, err := objfiles.LoadObjectFileDB(objsDir, gameVersion)
	if err != nil {
		log.Fatal(err)
	}

	pool, err := texture.LoadPool(texDir)
	if err != nil {
		log.Fatal(err)
	}

	hacks := &config.DecompileHacks{}
	if hacksPath != "" {
		if hacks, err = config.LoadDecompileHacks(hacksPath); err != nil {
			log.Fatal(err)
		}
	}

	dgoNames := strings.Split(levels, ",")

	if err := extract.ExtractAllLevels(db, pool, dgoNames, common, hacks,
		dumpLevels, extractCollision, outDir, glbDir, workers); err != nil {
		if extract.IsInvariantViolation(err) {
			log.Fatalf("Input data integrity violation: %v", err)
		}
		log.Fatal(err)
	}
}
