package state

// BranchingStrategy describes a team workflow the simulator can walk through.
type BranchingStrategy struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MainBranch  string   `json:"mainBranch"`
	FlowSteps   []string `json:"flowSteps"`
}

// GetBranchingStrategies returns the workflows offered as practice scripts.
// Each step is something the learner can type into the simulator.
func GetBranchingStrategies() []BranchingStrategy {
	return []BranchingStrategy{
		{
			ID:          "centralized",
			Name:        "Centralized Workflow",
			Description: "Everyone commits to 'main' and keeps in step with origin by pulling before pushing.",
			MainBranch:  DefaultBranch,
			FlowSteps: []string{
				`git commit "describe your change"`,
				"git push",
				"(a teammate pushes)",
				"git push  # rejected: origin has work you do not have",
				"git pull",
				"git push",
			},
		},
		{
			ID:          "feature-branch",
			Name:        "Feature Branch Workflow",
			Description: "New work happens on a short-lived branch that is merged back into 'main'.",
			MainBranch:  DefaultBranch,
			FlowSteps: []string{
				"git checkout -b feature",
				`git commit "build the feature"`,
				"git checkout main",
				"git merge feature",
				"git push",
			},
		},
		{
			ID:          "undo-safely",
			Name:        "Undo With Revert",
			Description: "Shared history is never rewritten: a mistake is undone by adding a commit that reverses it.",
			MainBranch:  DefaultBranch,
			FlowSteps: []string{
				`git commit "introduce a bug"`,
				"git push",
				"git revert",
				"git push",
			},
		},
	}
}
