package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	symspell "github.com/rcourivaud/symspellcompound"
	"github.com/rcourivaud/symspellcompound/tokenize"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symspellctl",
		Short: "Build and query a symmetric-delete spelling dictionary",
	}

	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createLookupCmd())
	rootCmd.AddCommand(createCompoundCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createBuildCmd() *cobra.Command {
	var language, out string
	var editDistanceMax int
	var alternativeFormat, foldHomoglyphs bool

	cmd := &cobra.Command{
		Use:   "build [corpus-file]",
		Short: "Build a dictionary snapshot from a corpus file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			d := symspell.NewDictionary(uint32(editDistanceMax), symspell.VerboseBest)

			var tokenizeOpts []tokenize.Option
			if foldHomoglyphs {
				tokenizeOpts = append(tokenizeOpts, tokenize.WithConfusableFolding())
			}

			var ok bool
			if alternativeFormat {
				ok = d.CreateDictionary(args[0], language, tokenizeOpts...)
			} else {
				ok = d.LoadDictionary(args[0], language, 0, 1, tokenizeOpts...)
			}
			if !ok {
				log.Fatalf("failed to read corpus file %s", args[0])
			}

			if err := d.Save(out); err != nil {
				log.Fatalf("failed to save dictionary: %v", err)
			}
			fmt.Printf("saved dictionary to %s (longest word: %d runes)\n", out, d.MaxLength())
		},
	}

	cmd.Flags().StringVar(&language, "language", symspell.DefaultLanguage, "language prefix for loaded entries")
	cmd.Flags().StringVar(&out, "out", "dictionary.dump", "path to write the gzip+JSON snapshot to")
	cmd.Flags().IntVar(&editDistanceMax, "edit-distance-max", symspell.DefaultEditDistanceMax, "K, the number of deletes generated per word")
	cmd.Flags().BoolVar(&alternativeFormat, "plain-text", false, "treat the corpus as plain tokenized text (count=1 per occurrence) instead of term/frequency columns")
	cmd.Flags().BoolVar(&foldHomoglyphs, "fold-homoglyphs", false, "normalize Unicode confusable characters in the corpus before indexing")

	return cmd
}

func createLookupCmd() *cobra.Command {
	var dictPath, language, distanceName string
	var editDistanceMax int
	var verbose int
	var trace bool

	cmd := &cobra.Command{
		Use:   "lookup [word]",
		Short: "Suggest corrections for a single word",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := symspell.DefaultConfig()
			cfg.Distance = distanceName
			cfg.EditDistanceMax = editDistanceMax
			cfg.Verbose = symspell.Verbose(verbose)

			s, err := symspell.LoadSpell(dictPath, cfg)
			if err != nil {
				log.Fatalf("failed to load dictionary: %v", err)
			}

			opts := []symspell.LookupOption{symspell.WithLanguage(language)}
			if trace {
				opts = append(opts, symspell.WithTrace(func(op string, d time.Duration) {
					log.Printf("%s took %s", op, d)
				}))
			}

			suggestions := s.Lookup(args[0], opts...)
			fmt.Println(suggestions)
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "dictionary.dump", "path to a dictionary snapshot written by 'build'")
	cmd.Flags().StringVar(&language, "language", symspell.DefaultLanguage, "language to search")
	cmd.Flags().StringVar(&distanceName, "distance", "dameraulevenshtein", "distance function: dameraulevenshtein or typo")
	cmd.Flags().IntVar(&editDistanceMax, "edit-distance-max", symspell.DefaultEditDistanceMax, "maximum edit distance to search")
	cmd.Flags().IntVar(&verbose, "verbose", int(symspell.VerboseBest), "0=best, 1=closest, 2=all")
	cmd.Flags().BoolVar(&trace, "trace", false, "log how long the lookup took")

	return cmd
}

func createCompoundCmd() *cobra.Command {
	var dictPath, language, distanceName string
	var editDistanceMax int
	var trace bool

	cmd := &cobra.Command{
		Use:   "compound [phrase]",
		Short: "Jointly correct misspellings and space errors across a phrase",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := symspell.DefaultConfig()
			cfg.Distance = distanceName
			cfg.EditDistanceMax = editDistanceMax
			cfg.EnableCompoundCheck = true
			cfg.Verbose = symspell.VerboseBest

			s, err := symspell.LoadSpell(dictPath, cfg)
			if err != nil {
				log.Fatalf("failed to load dictionary: %v", err)
			}

			opts := []symspell.LookupOption{symspell.WithLanguage(language)}
			if trace {
				opts = append(opts, symspell.WithTrace(func(op string, d time.Duration) {
					log.Printf("%s took %s", op, d)
				}))
			}

			result := s.LookupCompound(args[0], opts...)
			fmt.Println(result.Term)
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "dictionary.dump", "path to a dictionary snapshot written by 'build'")
	cmd.Flags().StringVar(&language, "language", symspell.DefaultLanguage, "language to search")
	cmd.Flags().StringVar(&distanceName, "distance", "dameraulevenshtein", "distance function: dameraulevenshtein or typo")
	cmd.Flags().IntVar(&editDistanceMax, "edit-distance-max", symspell.DefaultEditDistanceMax, "maximum edit distance per token")
	cmd.Flags().BoolVar(&trace, "trace", false, "log how long the lookup took")

	return cmd
}
