package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nrdyn/wfctile/solver"
	"github.com/nrdyn/wfctile/tileimg"
	"github.com/nrdyn/wfctile/wfconfig"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wfctile",
		Short: "Tilemap implementation of wave function collapse",
	}
	root.AddCommand(newCLICmd(), newGUICmd())
	return root
}

func newCLICmd() *cobra.Command {
	var heuristicFlag string
	var periodic bool
	var output string

	cmd := &cobra.Command{
		Use:   "cli input-folder width height",
		Short: "Run the solver headlessly",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			width, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("width: %w", err)
			}
			height, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("height: %w", err)
			}
			if err := validateInputFolder(folder); err != nil {
				return err
			}
			return runCLI(folder, width, height, periodic, solver.ParseHeuristic(heuristicFlag), output)
		},
	}

	cmd.Flags().StringVarP(&heuristicFlag, "heuristic", "H", "scan-line", "cell-selection heuristic: scan-line|entropy|mrv")
	cmd.Flags().BoolVarP(&periodic, "periodic", "p", false, "whether the output image should be tileable")
	cmd.Flags().StringVarP(&output, "output", "o", "a.png", "output image path")

	return cmd
}

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the solver in a GUI (not implemented)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("gui: not implemented")
		},
	}
}

// validateInputFolder mirrors original_source's is_dir: the folder must
// exist, contain a config.toml, and at least one other file (a tile image).
func validateInputFolder(folder string) error {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s isn't a directory", folder)
	}
	configPath := filepath.Join(folder, "config.toml")
	if _, err := os.Stat(configPath); err != nil {
		return fmt.Errorf("%s doesn't exist", configPath)
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return err
	}
	if len(entries) < 2 {
		return fmt.Errorf("missing tile pictures")
	}
	return nil
}

func runCLI(folder string, width, height int, periodic bool, heuristic solver.Heuristic, output string) error {
	cfg, err := wfconfig.LoadConfig(filepath.Join(folder, "config.toml"))
	if err != nil {
		return err
	}

	s, err := solver.New(cfg, folder, width, height, periodic, heuristic, tileimg.FSLoader{})
	if err != nil {
		return err
	}
	for _, msg := range s.Diagnostics() {
		log.Warn(msg)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bar := progressbar.Default(int64(width * height))
	s.OnObserve(func() { bar.Add(1) })

	for attempt := 1; ; attempt++ {
		seed := rng.Uint64()
		log.WithFields(log.Fields{"attempt": attempt, "seed": seed}).Info("wfctile: run started")
		bar.Reset()
		if s.Run(seed, int(^uint(0)>>1)) {
			break
		}
		log.Warn("wfctile: propagation failed, retrying with a new seed")
	}
	bar.Finish()

	w, h := s.Dimensions()
	comp := tileimg.Compositor{}
	if err := comp.Save(output, w, h, s.TileSize(), s.Observed(), s.Variants()); err != nil {
		return err
	}

	log.WithField("output", output).Info("wfctile: done")
	return nil
}
