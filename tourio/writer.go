package tourio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultSuffix is appended to the input path to name the output file.
const DefaultSuffix = ".tour"

// OutputPath returns the tour file path for input: input followed by suffix.
func OutputPath(input, suffix string) string {
	return input + suffix
}

// WriteTour writes length and then every id of tour, one per line.
func WriteTour(w io.Writer, length int, tour []int) error {
	bw := bufio.NewWriter(w)

	var buf []byte
	buf = strconv.AppendInt(buf, int64(length), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("write tour: %w", err)
	}
	for _, id := range tour {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write tour: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tour: %w", err)
	}

	return nil
}

// WriteTourFile creates (or truncates) path and writes the tour into it.
func WriteTourFile(path string, length int, tour []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return WriteTour(f, length, tour)
}
