package models

type Repository struct {
	Name     string
	FullName string
	Private  bool
	Archived bool
}

type PullRequest struct {
	Number  int
	Title   string
	HeadSHA string
	HeadRef string
	HTMLURL string
}

// GateResult ties an evaluated Action to the pull request it came from.
type GateResult struct {
	Repository  Repository
	PullRequest PullRequest
	Action      *Action
	Published   bool
}

type CommitState string

const (
	CommitStateSuccess CommitState = "success"
	CommitStateFailure CommitState = "failure"
	CommitStateError   CommitState = "error"
	CommitStatePending CommitState = "pending"
)

// CommitStatus is the body of a GitHub commit status.
type CommitStatus struct {
	State       CommitState `json:"state"`
	Context     string      `json:"context"`
	Description string      `json:"description,omitempty"`
	TargetURL   string      `json:"target_url,omitempty"`
}
