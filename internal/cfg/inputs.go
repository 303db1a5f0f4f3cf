package cfg

import (
	"bufio"
	"context"
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/logging"
	"fmt"
	"io"
	"os"
)

// lineFilter is a filter over one JSON Lines input.
type lineFilter interface {
	Run(ctx context.Context, input string, src io.Reader, w io.Writer) error
}

// runInputs feeds every input to f through one buffered writer.
//
// No inputs, or "-", means stdin. Output is flushed even when a run fails.
func runInputs(ctx context.Context, f lineFilter, inputs []string, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(inputs) == 0 {
		inputs = []string{consts.StdinName}
	}

	bw := bufio.NewWriter(stdout)
	err := func() error {
		for _, input := range inputs {
			if err := runInput(ctx, f, input, stdin, bw); err != nil {
				return err
			}
		}
		return nil
	}()

	if flushErr := bw.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}
	return err
}

// runInput opens one input and runs f over it.
func runInput(ctx context.Context, f lineFilter, input string, stdin io.Reader, w io.Writer) error {
	if input == consts.StdinName {
		logging.D(2, "Reading standard input")
		return f.Run(ctx, "", stdin, w)
	}

	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	logging.D(2, "Reading %q", input)
	return f.Run(ctx, input, file, w)
}
