package classify

import (
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// riskRule is one entry of the ordered rule table. The table order is the
// fixed priority order of the reported areas; changing any matcher is a
// contract change, not a cleanup.
type riskRule struct {
	area  models.RiskArea
	level models.RiskLevel
	match func(p pathInfo) bool
}

var riskRules = []riskRule{
	{
		area:  models.AreaDatabase,
		level: models.RiskHigh,
		match: func(p pathInfo) bool {
			return strings.Contains(p.lower, "migrations/") ||
				strings.Contains(p.lower, "migration/") ||
				strings.Contains(p.lower, "prisma") ||
				strings.Contains(p.lower, "flyway") ||
				strings.HasSuffix(p.lower, ".sql")
		},
	},
	{
		area:  models.AreaAuthSecurity,
		level: models.RiskHigh,
		match: func(p pathInfo) bool {
			return strings.Contains(p.lower, "auth") ||
				strings.Contains(p.lower, "jwt") ||
				strings.Contains(p.lower, "oauth") ||
				strings.Contains(p.lower, "permission")
		},
	},
	{
		area:  models.AreaInfra,
		level: models.RiskHigh,
		match: func(p pathInfo) bool {
			return strings.Contains(p.lower, "terraform") ||
				strings.Contains(p.lower, "helm") ||
				strings.Contains(p.lower, "k8s") ||
				strings.Contains(p.lower, ".github/workflows")
		},
	},
	{
		area:  models.AreaConfig,
		level: models.RiskMedium,
		match: func(p pathInfo) bool {
			return strings.Contains(p.lower, "/config/") ||
				strings.HasPrefix(p.lower, "config/") ||
				strings.Contains(p.lower, ".env") ||
				strings.HasSuffix(p.lower, ".yml") ||
				strings.HasSuffix(p.lower, ".yaml")
		},
	},
}

// AssessRisk evaluates the rule table over every file. Any high-level match
// forces High; a config match alone yields Medium; otherwise Low. Areas are
// reported in table order regardless of which file matched first.
func AssessRisk(set models.ChangeSet) models.RiskAssessment {
	matched := make(map[models.RiskArea]bool, len(riskRules))

	for _, record := range set.Records {
		p := newPathInfo(record.DisplayPath)
		for _, rule := range riskRules {
			if !matched[rule.area] && rule.match(p) {
				matched[rule.area] = true
			}
		}
	}

	level := models.RiskLow
	areas := make([]models.RiskArea, 0, len(riskRules))
	for _, rule := range riskRules {
		if !matched[rule.area] {
			continue
		}
		areas = append(areas, rule.area)
		if rule.level == models.RiskHigh {
			level = models.RiskHigh
		} else if level != models.RiskHigh {
			level = models.RiskMedium
		}
	}

	return models.RiskAssessment{Level: level, Areas: areas}
}
