// Command wfctile runs the tiled Wave Function Collapse solver headlessly
// against a folder of tile images and a config.toml declaring their
// symmetries and adjacencies, mirroring original_source's Cli/Gui split.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("wfctile: run failed")
		os.Exit(1)
	}
}
