package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status values in board display order. This is not a state machine:
// any status may be set from any other by direct edit.
const (
	StatusNotStarted         = "Not Started"
	StatusInProgress         = "In Progress"
	StatusTrialDone          = "Trial Done"
	StatusInTesting          = "In Testing"
	StatusProductionDeployed = "Production Deployed"
	StatusRunning            = "Running"
	StatusCompleted          = "Completed"
)

// StatusOrder lists all statuses in board display order.
var StatusOrder = []string{
	StatusNotStarted,
	StatusInProgress,
	StatusTrialDone,
	StatusInTesting,
	StatusProductionDeployed,
	StatusRunning,
	StatusCompleted,
}

// ============================================================================
// ROLE CONSTANTS
// ============================================================================

// User roles
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// ============================================================================
// CLASSIFICATION TAXONOMY
// ============================================================================

// Years are the period labels offered on the entry form.
var Years = []string{"2023-2024", "2025-2026", "2027-2028"}

// MainCategories are the fixed target main categories.
var MainCategories = []string{
	"E2E Supply Chain Visibility & Connectivity",
	"Real-Time Data & Analytics",
	"Organization Readiness",
}

// SubCategories maps each main category to its dependent sub-categories.
var SubCategories = map[string][]string{
	"E2E Supply Chain Visibility & Connectivity": {
		"Digitized Product Development",
		"Automation and Deskillment",
		"Seamless Connectivity",
	},
	"Real-Time Data & Analytics": {
		"Predictive Analytics and Digitized Planning",
		"AI-Based Decision Making",
	},
	"Organization Readiness": {
		"Digital Performance Management",
		"Cross-Functional Digitization",
	},
}

// Dimensions are the sixteen fixed assessment dimensions.
var Dimensions = []string{
	"Management Mindset",
	"Strategy Roadmap",
	"Change Management Plan",
	"Technology Readiness",
	"Data-Driven Decision Making",
	"Organizational Structure",
	"Process Digitization",
	"Talent Readiness",
	"Supply Chain Integration",
	"Automation and Deskilling",
	"Predictive Analytics",
	"Customer Integration",
	"Digital Product Development",
	"Real-Time Analytics",
	"Security and Compliance",
	"Continuous Improvement",
}
