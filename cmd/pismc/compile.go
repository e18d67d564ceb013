package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/darkrenaissance/pism/generator"
	"github.com/darkrenaissance/pism/logger"
	"github.com/darkrenaissance/pism/parser"
)

var compileCmd = &cobra.Command{
	Use:   "compile [files...]",
	Short: "compile one or more .pism files into .rs gadget fragments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompile,
}

// runCompile compiles each input independently; rendering is pure so the
// files can be processed concurrently.
func runCompile(cmd *cobra.Command, args []string) error {
	var g errgroup.Group
	for _, arg := range args {
		path := filepath.Clean(arg)
		g.Go(func() error {
			return compileFile(path)
		})
	}
	return g.Wait()
}

func compileFile(path string) error {
	log := logger.Logger().With().Str("circuit", path).Logger()

	var opts []parser.Option
	if fStrict {
		opts = append(opts, parser.WithStrict())
	}
	ops, err := parser.ParseFile(path, opts...)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug().Int("nbOperations", len(ops)).Msg("parsed circuit description")

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".rs"
	if fOutput != "" {
		outPath = filepath.Join(fOutput, name+".rs")
	}

	if err := generator.GenerateFile(outPath, name, ops); err != nil {
		return err
	}
	log.Info().Str("output", outPath).Msg("generated gadget code")
	return nil
}
