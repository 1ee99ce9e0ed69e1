package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/logger"
)

var (
	inFlag     = flag.String("in", "data/planets.csv", "Input CSV (system;sector;region;grid)")
	outFlag    = flag.String("out", "data/planets.json", "Output catalog JSON")
	assetsFlag = flag.String("assets", "assets/detail", "Detail art directory, used to detect per-planet biomes")
	seedFlag   = flag.Int64("seed", 0, "Biome assignment seed, 0 uses the current time")
)

func main() {
	flag.Parse()

	cfg := config.Load()
	log, closeLog := logger.Setup(cfg.Logging, true)
	defer closeLog()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	f, err := os.Open(*inFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swmapprep: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, rowErrs := catalog.ParseCSV(f, catalog.PrepOptions{
		AssetsDir: *assetsFlag,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	for _, re := range rowErrs {
		log.Warn("row skipped", "file", *inFlag, "line", re.Line, "error", re.Err)
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "swmapprep: no usable rows in %s\n", *inFlag)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "swmapprep: encode: %v\n", err)
		os.Exit(1)
	}
	out = append(out, '\n')
	if err := os.WriteFile(*outFlag, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "swmapprep: %v\n", err)
		os.Exit(1)
	}

	log.Info("catalog written", "path", *outFlag, "planets", len(records), "skipped", len(rowErrs))
}
