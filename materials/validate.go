package materials

import (
	"bufio"
	"os"
	"strings"
)

// IsValid reports whether the material file mentions the expected material
// name on any line. This is a purely textual containment check; the script
// grammar itself is not parsed.
func IsValid(materialFile, materialName string) (bool, error) {

	f, err := os.Open(materialFile)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), materialName) {
			return true, nil
		}
	}

	return false, scanner.Err()
}
