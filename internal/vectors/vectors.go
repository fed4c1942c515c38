// Package vectors reads and writes newline-delimited binary-string block
// files: one block per line, each line exactly 16 '0'/'1' characters,
// big-endian.
package vectors

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
)

// Read parses blocks from r, one per line. Empty lines are skipped. A
// malformed line fails with its line number wrapped around the parse error.
func Read(r io.Reader) ([]heys.Block, error) {
	var blocks []heys.Block
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		block, err := heys.ParseBlock(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		blocks = append(blocks, block)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ReadFile reads blocks from the file at path.
func ReadFile(path string) ([]heys.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	blocks, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blocks, nil
}

// Write renders blocks to w, one per line.
func Write(w io.Writer, blocks []heys.Block) error {
	bw := bufio.NewWriter(w)
	for _, block := range blocks {
		if _, err := bw.WriteString(block.Binary()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes blocks to the file at path, replacing any existing
// content.
func WriteFile(path string, blocks []heys.Block) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, blocks); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
