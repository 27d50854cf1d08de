package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/linetally/linetally/internal/classify"
	"github.com/linetally/linetally/internal/input"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linetally",
	Short: "Count vowels, consonants, digits, and spaces in a line",
	Long:  "Reads one line from standard input and reports how many vowels, consonants, digits, and spaces it contains.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(bufio.NewReader(os.Stdin), os.Stdout)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// run is the whole pipeline: prompt, read one bounded line, tally, print.
func run(in io.ByteReader, out io.Writer) error {
	fmt.Fprint(out, "Enter a line of string: ")

	line, err := input.ReadLine(in)
	if err != nil {
		return fmt.Errorf("failed to read line: %w", err)
	}

	t := classify.Count(line)
	fmt.Fprintf(out, "Vowels: %d\n", t.Vowels)
	fmt.Fprintf(out, "Consonants: %d\n", t.Consonants)
	fmt.Fprintf(out, "Digits: %d\n", t.Digits)
	fmt.Fprintf(out, "White spaces: %d\n", t.Spaces)
	return nil
}
