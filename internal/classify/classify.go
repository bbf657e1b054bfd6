package classify

import (
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// Classify derives every heuristic signal of the report from the change set.
// Only paths and statuses feed the heuristics; diff content never does.
func Classify(set models.ChangeSet) models.ClassificationResult {
	paths := normalizedPaths(set)

	return models.ClassificationResult{
		ChangeBullets:     changeBullets(set, paths),
		TestingLines:      testingLines(paths),
		ReleaseNotesLines: releaseNotesLines(paths),
		Risk:              AssessRisk(set),
	}
}

// pathInfo is one normalized path with the lower-cased copy used for keyword
// matching. Display casing is preserved.
type pathInfo struct {
	path    string
	lower   string
	slashed string // "/" + lower, so segment rules match leading folders too
	base    string // last segment, lower-cased
}

func normalizedPaths(set models.ChangeSet) []pathInfo {
	paths := make([]pathInfo, 0, set.Len())
	for _, record := range set.Records {
		paths = append(paths, newPathInfo(record.DisplayPath))
	}
	return paths
}

func newPathInfo(display string) pathInfo {
	path := normalizePath(display)
	lower := strings.ToLower(path)

	base := lower
	if idx := strings.LastIndex(lower, "/"); idx >= 0 {
		base = lower[idx+1:]
	}

	return pathInfo{
		path:    path,
		lower:   lower,
		slashed: "/" + lower,
		base:    base,
	}
}

// normalizePath follows the text after the last "->" so renames classify by
// the new path, then trims and strips one leading "./" or "/".
func normalizePath(display string) string {
	path := display
	if idx := strings.LastIndex(path, "->"); idx >= 0 {
		path = path[idx+2:]
	}
	path = strings.TrimSpace(path)

	if strings.HasPrefix(path, "./") {
		path = path[2:]
	} else if strings.HasPrefix(path, "/") {
		path = path[1:]
	}

	return path
}

// bulletList accumulates report bullets with deduplication and a hard cap.
// Insertion order is the priority order: once the cap is reached, later
// bullets are silently dropped. That precedence is part of the contract.
type bulletList struct {
	bullets []string
	seen    map[string]struct{}
	cap     int
}

func newBulletList(capacity int) *bulletList {
	return &bulletList{
		bullets: make([]string, 0, capacity),
		seen:    make(map[string]struct{}, capacity),
		cap:     capacity,
	}
}

func (l *bulletList) add(bullet string) {
	if bullet == "" || len(l.bullets) >= l.cap {
		return
	}
	if _, dup := l.seen[bullet]; dup {
		return
	}
	l.seen[bullet] = struct{}{}
	l.bullets = append(l.bullets, bullet)
}
