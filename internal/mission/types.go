package mission

// Mission defines the structure of a practice mission loaded from YAML.
type Mission struct {
	ID           string                        `yaml:"id" json:"id"`
	Title        string                        `yaml:"title" json:"title"`
	Description  string                        `yaml:"description" json:"description"`
	Difficulty   Difficulty                    `yaml:"difficulty" json:"difficulty"`
	Skill        string                        `yaml:"skill" json:"skill"`
	Setup        []string                      `yaml:"setup" json:"-"`      // Commands to run for setup
	Validation   Validation                    `yaml:"validation" json:"-"` // Validation rules
	Hints        []string                      `yaml:"hints" json:"hints"`  // Hints for the user
	Translations map[string]MissionTranslation `yaml:"translations" json:"translations,omitempty"`
}

type MissionTranslation struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Hints       []string `yaml:"hints" json:"hints"`
}

type Difficulty struct {
	Level string `yaml:"level" json:"level"` // basic, intermediate, advanced
	Stars int    `yaml:"stars" json:"stars"` // 1-5
}

type Validation struct {
	Checks []Check `yaml:"checks"`
}

// Check types understood by VerifyMission.
const (
	CheckLocalCommits        = "local_commits"
	CheckRemoteCommits       = "remote_commits"
	CheckCurrentBranch       = "current_branch"
	CheckBranchExists        = "branch_exists"
	CheckCommitExists        = "commit_exists"
	CheckMergeExists         = "merge_exists"
	CheckInSync              = "in_sync"
	CheckTeammateCommitLocal = "teammate_commit_local"
)

type Check struct {
	Type           string `yaml:"type"`            // one of the Check* constants
	Description    string `yaml:"description"`     // User facing description
	Min            int    `yaml:"min"`             // For commit count checks
	Name           string `yaml:"name"`            // For branch checks (branch_exists, current_branch, merge_exists)
	MessagePattern string `yaml:"message_pattern"` // Regular expression matched against local commit messages
	Negate         bool   `yaml:"negate"`          // If true, inverts the pass condition
}

type VerificationResult struct {
	Success   bool          `json:"success"`
	MissionID string        `json:"missionId"`
	Progress  []CheckResult `json:"progress"`
}

type CheckResult struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
}
