package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"

	"github.com/pictriage/pictriage"
	"github.com/pictriage/pictriage/source"
	"github.com/pictriage/pictriage/swipe"
)

func newRootCommand() *cobra.Command {
	var outputFlag string
	var extensionsFlag []string

	rootCmd := &cobra.Command{
		Use:           "pictriage",
		Short:         "Sort image directories into keep/discard/favorite folders",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		"Output directory for sorted images (default: <input>/sorted)")
	rootCmd.PersistentFlags().StringSliceVarP(&extensionsFlag, "extensions", "e", nil,
		"Image extensions to include (default: common image formats)")

	rootCmd.AddCommand(newLocalCommand(&outputFlag, &extensionsFlag))
	rootCmd.AddCommand(newMultiCommand(&outputFlag, &extensionsFlag))
	rootCmd.AddCommand(newPickNCommand(&outputFlag, &extensionsFlag))

	return rootCmd
}

// resolveInputDir returns the directory to triage, prompting with a
// native picker when no argument was given.
func resolveInputDir(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Clean(args[0]), nil
	}
	dir, err := dialog.Directory().Title("Choose an image directory").Browse()
	if err != nil {
		return "", fmt.Errorf("no input directory selected: %w", err)
	}
	return dir, nil
}

// scanInput resolves the input directory, scans it, and derives the
// output directory when not set explicitly.
func scanInput(args []string, outputFlag string, extensions []string) (items []swipe.Item, inputDir, outputDir string, err error) {
	inputDir, err = resolveInputDir(args)
	if err != nil {
		return nil, "", "", err
	}

	items, err = source.Scan(inputDir, extensions)
	if err != nil {
		return nil, "", "", err
	}

	outputDir = outputFlag
	if outputDir == "" {
		outputDir = filepath.Join(inputDir, "sorted")
	}
	return items, inputDir, outputDir, nil
}

func newLocalCommand(outputFlag *string, extensionsFlag *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "local [dir]",
		Short: "Triage a directory one image at a time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, inputDir, outputDir, err := scanInput(args, *outputFlag, *extensionsFlag)
			if err != nil {
				return err
			}
			return pictriage.Run(pictriage.RunOptions{
				Session:   pictriage.LocalSession(items),
				OutputDir: outputDir,
				Title:     "pictriage - " + filepath.Base(inputDir),
			})
		},
	}
}

func newMultiCommand(outputFlag *string, extensionsFlag *[]string) *cobra.Command {
	var imagesPer int

	cmd := &cobra.Command{
		Use:   "multi [dir]",
		Short: "Triage a directory several images per page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if imagesPer < 1 {
				return fmt.Errorf("--images-per must be >= 1, got %d", imagesPer)
			}
			items, inputDir, outputDir, err := scanInput(args, *outputFlag, *extensionsFlag)
			if err != nil {
				return err
			}
			return pictriage.Run(pictriage.RunOptions{
				Session:   pictriage.MultiSession(items, imagesPer),
				OutputDir: outputDir,
				Title:     "pictriage - " + filepath.Base(inputDir),
			})
		},
	}
	cmd.Flags().IntVarP(&imagesPer, "images-per", "n", 2, "Images shown per page")
	return cmd
}

func newPickNCommand(outputFlag *string, extensionsFlag *[]string) *cobra.Command {
	var keepCount int
	var noShuffle bool

	cmd := &cobra.Command{
		Use:   "pickn [dir]",
		Short: "Eliminate over shuffled rounds until N images remain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keepCount < 1 {
				return fmt.Errorf("--keep must be >= 1, got %d", keepCount)
			}
			items, inputDir, outputDir, err := scanInput(args, *outputFlag, *extensionsFlag)
			if err != nil {
				return err
			}
			if !noShuffle {
				source.Shuffle(items)
			}
			return pictriage.Run(pictriage.RunOptions{
				Session:   pictriage.PickNSession(items, keepCount),
				OutputDir: outputDir,
				Title:     "pictriage - " + filepath.Base(inputDir),
			})
		},
	}
	cmd.Flags().IntVarP(&keepCount, "keep", "k", 1, "Number of images to keep")
	cmd.Flags().BoolVar(&noShuffle, "no-shuffle", false, "Keep directory order for the first round")
	return cmd
}
