package entities

// ReplicationState is a step of a provisioning run.
type ReplicationState int

const (
	StateIdle ReplicationState = iota
	StateCredentialCheck
	StateCreating
	StatePopulating
	StateEnablingPages
	StateDone
	StateAborted
)

func (s ReplicationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCredentialCheck:
		return "credential-check"
	case StateCreating:
		return "creating"
	case StatePopulating:
		return "populating"
	case StateEnablingPages:
		return "enabling-pages"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// FileFailure records a file that could not be read or uploaded.
type FileFailure struct {
	Path string
	Err  error
}

// ReplicationResult is what a provisioning run leaves behind.
type ReplicationResult struct {
	State      ReplicationState
	Repository *Repository
	Published  []string
	Failures   []FileFailure
	SiteURL    string
	Progress   float64
}

// SitePublished reports whether the static site was enabled.
func (r *ReplicationResult) SitePublished() bool {
	return r.SiteURL != ""
}
