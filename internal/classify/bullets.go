package classify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

const maxChangeBullets = 6

// changeBullets builds the "Changes" section bullets in fixed priority order:
// status counts, top folders, signals, touched areas, explicit counts. The
// six-bullet cap drops later bullets once earlier ones filled the list.
func changeBullets(set models.ChangeSet, paths []pathInfo) []string {
	list := newBulletList(maxChangeBullets)

	list.add(statusCountsBullet(set))
	list.add(topFoldersBullet(paths))
	list.add(signalsBullet(paths))
	list.add(touchesBullet(paths))

	list.add(countBullet("Tests updated", countMatching(paths, isTestFile)))
	list.add(countBullet("Localization updated", countMatching(paths, isLocalizationFile)))
	list.add(countBullet("Data files updated", countMatching(paths, isDataFile)))

	return list.bullets
}

func statusCountsBullet(set models.ChangeSet) string {
	counts := make(map[models.ChangeStatus]int, 4)
	for _, record := range set.Records {
		counts[record.Status]++
	}

	order := []struct {
		status models.ChangeStatus
		label  string
	}{
		{models.StatusAdded, "added"},
		{models.StatusModified, "modified"},
		{models.StatusDeleted, "deleted"},
		{models.StatusRenamed, "renamed"},
	}

	parts := make([]string, 0, len(order))
	for _, entry := range order {
		if n := counts[entry.status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, entry.label))
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ") + "."
}

// topFoldersBullet ranks top-level folders by descending file count, then
// ascending name. Files without a folder pad the list as a "root files" entry
// when fewer than three folder entries exist.
func topFoldersBullet(paths []pathInfo) string {
	folderCounts := make(map[string]int)
	rootFiles := 0

	for _, p := range paths {
		segments := strings.Split(p.path, "/")
		if len(segments) >= 2 {
			folderCounts[segments[0]]++
		} else if p.path != "" {
			rootFiles++
		}
	}

	folders := make([]string, 0, len(folderCounts))
	for name := range folderCounts {
		folders = append(folders, name)
	}
	sort.Slice(folders, func(i, j int) bool {
		if folderCounts[folders[i]] != folderCounts[folders[j]] {
			return folderCounts[folders[i]] > folderCounts[folders[j]]
		}
		return folders[i] < folders[j]
	})

	if len(folders) > 3 {
		folders = folders[:3]
	}

	entries := make([]string, 0, 3)
	for _, name := range folders {
		entries = append(entries, fmt.Sprintf("%s/ (%d)", name, folderCounts[name]))
	}
	if len(entries) < 3 && rootFiles > 0 {
		entries = append(entries, fmt.Sprintf("root files (%d)", rootFiles))
	}

	if len(entries) == 0 {
		return ""
	}
	return "Primary areas: " + strings.Join(entries, ", ") + "."
}

var dependencyFilenames = map[string]struct{}{
	"package.json":      {},
	"package-lock.json": {},
	"yarn.lock":         {},
	"pnpm-lock.yaml":    {},
	"bun.lockb":         {},
}

func isDependencyFile(p pathInfo) bool {
	_, ok := dependencyFilenames[p.base]
	return ok
}

// signalsBullet lists detected review signals in fixed order. The category
// matchers are the same substring rules the risk assessment uses.
func signalsBullet(paths []pathInfo) string {
	signals := []struct {
		label string
		match func(p pathInfo) bool
	}{
		{"dependencies", isDependencyFile},
		{"config", riskMatcher(models.AreaConfig)},
		{"database", riskMatcher(models.AreaDatabase)},
		{"auth/security", riskMatcher(models.AreaAuthSecurity)},
		{"infra", riskMatcher(models.AreaInfra)},
	}

	detected := make([]string, 0, len(signals))
	for _, signal := range signals {
		if anyPath(paths, signal.match) {
			detected = append(detected, signal.label)
		}
	}

	if len(detected) == 0 {
		return ""
	}
	return "Signals: " + strings.Join(detected, ", ") + "."
}

func riskMatcher(area models.RiskArea) func(p pathInfo) bool {
	for _, rule := range riskRules {
		if rule.area == area {
			return rule.match
		}
	}
	return func(pathInfo) bool { return false }
}

const maxTouchedAreas = 6

// touchesBullet lists detected focus areas, each at most once, truncated to
// six with an "and N more" suffix.
func touchesBullet(paths []pathInfo) string {
	areas := []struct {
		label string
		match func(p pathInfo) bool
	}{
		{"UI", isUIFile},
		{"API/backend", isBackendFile},
		{"scripts", isScriptFile},
		{"docs", isDocFile},
		{"assets", isAssetFile},
		{"data files", isDataFile},
		{"localization", isLocalizationFile},
		{"tests", isTestFile},
	}

	detected := make([]string, 0, len(areas))
	for _, area := range areas {
		if anyPath(paths, area.match) {
			detected = append(detected, area.label)
		}
	}

	if len(detected) == 0 {
		return ""
	}

	suffix := ""
	if len(detected) > maxTouchedAreas {
		suffix = fmt.Sprintf(" and %d more", len(detected)-maxTouchedAreas)
		detected = detected[:maxTouchedAreas]
	}
	return "Touches: " + strings.Join(detected, ", ") + suffix + "."
}

var uiExtensions = []string{
	".html", ".htm", ".css", ".scss", ".sass", ".less",
	".vue", ".svelte", ".jsx", ".tsx",
}

func isUIFile(p pathInfo) bool {
	for _, ext := range uiExtensions {
		if strings.HasSuffix(p.lower, ext) {
			return true
		}
	}
	return containsSegment(p, "/ui/", "/components/", "/views/", "/pages/", "/styles/")
}

func isBackendFile(p pathInfo) bool {
	return containsSegment(p, "/api/", "/server/", "/backend/", "/controllers/", "/routes/", "/services/")
}

var scriptExtensions = []string{".sh", ".bash", ".ps1", ".bat", ".cmd"}

func isScriptFile(p pathInfo) bool {
	for _, ext := range scriptExtensions {
		if strings.HasSuffix(p.lower, ext) {
			return true
		}
	}
	return containsSegment(p, "/scripts/")
}

func isDocFile(p pathInfo) bool {
	if containsSegment(p, "/docs/") {
		return true
	}
	return strings.HasSuffix(p.lower, ".md") && strings.TrimSuffix(p.base, ".md") != "readme"
}

func isAssetFile(p pathInfo) bool {
	return containsSegment(p, "/assets/", "/public/")
}

var dataExtensions = []string{".csv", ".tsv", ".xlsx", ".jsonl"}

func isDataFile(p pathInfo) bool {
	for _, ext := range dataExtensions {
		if strings.HasSuffix(p.lower, ext) {
			return true
		}
	}
	return false
}

func isLocalizationFile(p pathInfo) bool {
	return containsSegment(p, "/i18n/", "/locales/", "/l10n/")
}

// containsSegment matches directory segments against "/"+path so the rules
// also hit when the segment is the leading folder.
func containsSegment(p pathInfo, segments ...string) bool {
	for _, segment := range segments {
		if strings.Contains(p.slashed, segment) {
			return true
		}
	}
	return false
}

func anyPath(paths []pathInfo, match func(p pathInfo) bool) bool {
	for _, p := range paths {
		if match(p) {
			return true
		}
	}
	return false
}

func countMatching(paths []pathInfo, match func(p pathInfo) bool) int {
	n := 0
	for _, p := range paths {
		if match(p) {
			n++
		}
	}
	return n
}

func countBullet(label string, n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d %s.", label, n, pluralFiles(n))
}

func pluralFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
