package classify

import (
	"regexp"
	"strings"
)

var testFilenameRe = regexp.MustCompile(`\.(test|spec)\.[^.]+$`)

// isTestFile reports whether any path segment is exactly a test directory
// name, or the filename follows the *.test.<ext> / *.spec.<ext> convention.
func isTestFile(p pathInfo) bool {
	for _, segment := range strings.Split(p.lower, "/") {
		switch segment {
		case "test", "tests", "__tests__", "spec":
			return true
		}
	}
	return testFilenameRe.MatchString(p.base)
}

func testingLines(paths []pathInfo) []string {
	for _, p := range paths {
		if isTestFile(p) {
			return []string{"[x] Tests added/updated for these changes."}
		}
	}

	return []string{
		"[ ] Unit tests",
		"[ ] Manual testing",
		"Describe the manual testing performed for this change.",
	}
}
