package simparser

import (
	"os"
	"strings"
)

// ParseSidecar reads the optional results file written by the testbench,
// one KEY=VALUE pair per line. Absence of the file is not an error; both
// return values are nil. The mapping is auxiliary data only and never
// overrides the stdout-derived classification.
func ParseSidecar(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	result := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return result, nil
}
