package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Filenames conventionally used for changelogs, with or without an extension.
var changelogFilenameRe = regexp.MustCompile(
	`^(changelog|change_log|changes|history|news|release[_-]?notes|releasenotes|upgrading|upgrade)(\.[^.]+)?$`,
)

const maxListedNoteFiles = 3

// releaseNotesLines detects changelog-named files, release-note paths, and
// documentation updates, emitting up to three lines or one fallback line.
func releaseNotesLines(paths []pathInfo) []string {
	var changelogs, releaseNotes []string
	docs := 0

	for _, p := range paths {
		if changelogFilenameRe.MatchString(p.base) {
			changelogs = append(changelogs, p.path)
		}
		if containsSegment(p, "/release/", "/releases/", "/release-notes/", "/releasenotes/", "/notes/", "/changelog/") {
			releaseNotes = append(releaseNotes, p.path)
		}
		if containsSegment(p, "/docs/") {
			docs++
		}
	}

	lines := make([]string, 0, 3)
	if len(changelogs) > 0 {
		lines = append(lines, "Changelog updated: "+listWithOverflow(changelogs)+".")
	}
	if len(releaseNotes) > 0 {
		lines = append(lines, "Release notes updated: "+listWithOverflow(releaseNotes)+".")
	}
	if docs > 0 {
		lines = append(lines, fmt.Sprintf("Documentation updated: %d %s.", docs, pluralFiles(docs)))
	}

	if len(lines) == 0 {
		return []string{"No changelog or release-note files touched; add notes here if this change is user-facing."}
	}
	return lines
}

func listWithOverflow(files []string) string {
	if len(files) <= maxListedNoteFiles {
		return strings.Join(files, ", ")
	}
	shown := strings.Join(files[:maxListedNoteFiles], ", ")
	return fmt.Sprintf("%s and %d more", shown, len(files)-maxListedNoteFiles)
}
