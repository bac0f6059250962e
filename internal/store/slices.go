package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteSlices writes the slice count followed by one "r0 c0 r1 c1" line per
// slice.
func WriteSlices(w io.Writer, slices [][4]int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(slices))
	for _, s := range slices {
		fmt.Fprintf(bw, "%d %d %d %d\n", s[0], s[1], s[2], s[3])
	}
	return bw.Flush()
}

// WriteSlicesFile writes the listing to path, replacing any existing file.
func WriteSlicesFile(path string, slices [][4]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create slices file: %w", err)
	}
	if err := WriteSlices(f, slices); err != nil {
		f.Close()
		return fmt.Errorf("write slices file: %w", err)
	}
	return f.Close()
}
