package tourio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/nn2opt/city"
)

// ReadStats describes what ReadCitiesWithStats consumed.
type ReadStats struct {
	Cities     int  // cities returned
	Duplicates int  // triples dropped because their ID was already seen
	Truncated  bool // reading stopped on a malformed token or short triple
}

// ReadCities parses city triples from r. See ReadCitiesWithStats.
func ReadCities(r io.Reader) ([]city.City, error) {
	cs, _, err := ReadCitiesWithStats(r)

	return cs, err
}

// ReadCitiesWithStats parses "id x y" triples from r until EOF or the first
// position where no integer starts. Only read errors of r are returned.
//
// Integers are read as a prefix of each whitespace-separated token: "12abc"
// yields 12 and then stops at "abc", and "4-7" yields 4 and -7. A value that
// overflows int also stops reading.
//
// Complexity: O(input) time, O(n) space.
func ReadCitiesWithStats(r io.Reader) ([]city.City, ReadStats, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		cities []city.City
		st     ReadStats
		seen   = make(map[int]struct{})
		triple [3]int
		k      int
		tok    string
		size   int
		v      int
		err    error
	)
scan:
	for sc.Scan() {
		for tok = sc.Text(); tok != ""; tok = tok[size:] {
			size = intPrefixLen(tok)
			if size == 0 {
				st.Truncated = true
				break scan
			}
			if v, err = strconv.Atoi(tok[:size]); err != nil {
				st.Truncated = true
				break scan
			}
			triple[k] = v
			k++
			if k < len(triple) {
				continue
			}
			k = 0

			if _, dup := seen[triple[0]]; dup {
				st.Duplicates++
				continue
			}
			seen[triple[0]] = struct{}{}
			cities = append(cities, city.City{ID: triple[0], X: triple[1], Y: triple[2]})
		}
	}
	if err = sc.Err(); err != nil {
		return nil, st, fmt.Errorf("read cities: %w", err)
	}
	if k != 0 {
		st.Truncated = true
	}
	st.Cities = len(cities)

	return cities, st, nil
}

// intPrefixLen returns the length of the optionally signed decimal integer at
// the start of s, or 0 when s does not start with one.
func intPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}

	return i
}

// ReadCitiesFile opens path and parses it with ReadCitiesWithStats.
func ReadCitiesFile(path string) ([]city.City, ReadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("open %s for reading: %w", path, err)
	}
	defer f.Close()

	return ReadCitiesWithStats(f)
}
