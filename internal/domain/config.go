package domain

// NamedScenario pairs a label with a complete policy configuration for
// side-by-side comparison.
type NamedScenario struct {
	Name   string         `yaml:"name" json:"name"`
	Policy PolicySettings `yaml:"policy" json:"policy"`
}

// Configuration is the complete input file: one project, a base policy, and
// optional alternative scenarios.
type Configuration struct {
	Project   ProjectParams   `yaml:"project" json:"project"`
	Policy    PolicySettings  `yaml:"policy" json:"policy"`
	Scenarios []NamedScenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}
