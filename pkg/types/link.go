package types

// WildcardProject selects every eligible project directory.
const WildcardProject = "*"

// LinkAction is what happened (or would happen) to a single link.
type LinkAction string

const (
	ActionCreated       LinkAction = "created"
	ActionRecreated     LinkAction = "recreated"
	ActionSkipped       LinkAction = "skipped"
	ActionFailed        LinkAction = "failed"
	ActionWouldCreate   LinkAction = "would-create"
	ActionWouldRecreate LinkAction = "would-recreate"
)

// ProjectStatus is the outcome of processing one project.
type ProjectStatus string

const (
	ProjectProcessed ProjectStatus = "processed"
	ProjectSkipped   ProjectStatus = "skipped"
	ProjectFailed    ProjectStatus = "failed"
)

// LinkState describes what currently sits at a link path.
type LinkState string

const (
	// StateLinked: a symlink pointing at the source entity
	StateLinked LinkState = "linked"
	// StateStale: a symlink pointing somewhere else
	StateStale LinkState = "stale"
	// StateOccupied: a regular file or directory
	StateOccupied LinkState = "occupied"
	// StateAbsent: nothing there yet
	StateAbsent LinkState = "absent"
	// StateSourceMissing: the link target does not exist
	StateSourceMissing LinkState = "source-missing"
)

// LinkResult records the outcome of one link spec.
type LinkResult struct {
	Project    string     `json:"project" yaml:"project"`
	Source     string     `json:"source" yaml:"source"`
	Dest       string     `json:"dest" yaml:"dest"`
	SourcePath string     `json:"source_path" yaml:"source_path"`
	LinkPath   string     `json:"link_path" yaml:"link_path"`
	Action     LinkAction `json:"action" yaml:"action"`
	Err        error      `json:"-" yaml:"-"`
}

// ProjectResult records the outcome of one project.
type ProjectResult struct {
	Name   string        `json:"name"`
	Status ProjectStatus `json:"status"`
	Links  []LinkResult  `json:"links,omitempty"`
	Err    error         `json:"-"`
}

// Report aggregates a whole run.
type Report struct {
	DryRun   bool            `json:"dry_run"`
	Projects []ProjectResult `json:"projects"`
}

// Count returns how many links ended with the given action.
func (r *Report) Count(action LinkAction) int {
	n := 0
	for _, p := range r.Projects {
		for _, l := range p.Links {
			if l.Action == action {
				n++
			}
		}
	}
	return n
}

// FailedProjects returns the names of projects that failed.
func (r *Report) FailedProjects() []string {
	var names []string
	for _, p := range r.Projects {
		if p.Status == ProjectFailed {
			names = append(names, p.Name)
		}
	}
	return names
}

// PlannedLink is a read-only view of one link spec and its on-disk state.
type PlannedLink struct {
	Source     string    `json:"source" yaml:"source"`
	Dest       string    `json:"dest" yaml:"dest"`
	SourcePath string    `json:"source_path" yaml:"source_path"`
	LinkPath   string    `json:"link_path" yaml:"link_path"`
	State      LinkState `json:"state" yaml:"state"`
	// CurrentTarget is set when the link path is a symlink.
	CurrentTarget string `json:"current_target,omitempty" yaml:"current_target,omitempty"`
}

// ProjectPlan lists a project's links, or why it has none.
type ProjectPlan struct {
	Name          string        `json:"name" yaml:"name"`
	HasManifest   bool          `json:"has_manifest" yaml:"has_manifest"`
	ManifestError string        `json:"manifest_error,omitempty" yaml:"manifest_error,omitempty"`
	Links         []PlannedLink `json:"links" yaml:"links"`
}
