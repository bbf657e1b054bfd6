package models

// RiskLevel is the overall review-attention level derived from the change set.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskArea is a fixed review-attention category.
type RiskArea string

const (
	AreaDatabase     RiskArea = "database"
	AreaAuthSecurity RiskArea = "auth/security"
	AreaInfra        RiskArea = "infra"
	AreaConfig       RiskArea = "config"
)

type (
	// RiskAssessment holds the derived level and the detected areas, always in
	// the fixed priority order database, auth/security, infra, config.
	RiskAssessment struct {
		Level RiskLevel
		Areas []RiskArea
	}

	// ClassificationResult aggregates every heuristic signal derived from the
	// change set. Only file paths and statuses feed it, never diff content.
	ClassificationResult struct {
		ChangeBullets     []string
		TestingLines      []string
		ReleaseNotesLines []string
		Risk              RiskAssessment
	}
)
