package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates the directory (and parents) if needed and returns
// its path. Used for the staging directory that holds packaged
// artifacts between runs.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
