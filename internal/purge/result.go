package purge

import "time"

// Messages reported in Result.Msg.
const (
	MsgCheckMode = "Project resources would be purged in check mode"
)

// Result is the outcome of a purge run.
type Result struct {
	Changed        bool          `json:"changed"`
	Failed         bool          `json:"failed"`
	Msg            string        `json:"msg"`
	Project        string        `json:"project"`
	ProjectID      string        `json:"project_id,omitempty"`
	CheckMode      bool          `json:"check_mode,omitempty"`
	ProjectDeleted bool          `json:"project_deleted"`
	Deleted        map[Kind]int  `json:"deleted,omitempty"`
	Tolerated      []string      `json:"tolerated_conflicts,omitempty"`
	Duration       time.Duration `json:"duration_ns"`
}

// Total returns the number of deleted resources across all kinds.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Deleted {
		total += n
	}
	return total
}

func (r *Result) record(kind Kind, out Outcome) {
	if r.Deleted == nil {
		r.Deleted = make(map[Kind]int)
	}
	r.Deleted[kind] += out.Deleted
	for _, h := range out.Tolerated {
		r.Tolerated = append(r.Tolerated, h.String())
	}
}
