package novita

import "net/url"

// JobType classifies background jobs.
type JobType string

// Background job types.
const (
	JobTypeSaveImage JobType = "saveImage"
)

// JobState is the lifecycle state of a background job.
type JobState string

// Background job states.
const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
	JobStateCancelled JobState = "cancelled"
)

// Job is an asynchronous background task, such as saving an instance's disk
// as an image.
type Job struct {
	ID         string   `json:"job_id"`
	Type       JobType  `json:"type,omitempty"`
	State      JobState `json:"state,omitempty"`
	InstanceID string   `json:"instance_id,omitempty"`
	Image      string   `json:"image,omitempty"`
	Error      string   `json:"error,omitempty"`
	CreatedAt  int64    `json:"created_at,omitempty"`
	FinishedAt int64    `json:"finished_at,omitempty"`
}

// Validate checks the response shape.
func (j *Job) Validate() error {
	if j.ID == "" {
		return &ValidationError{Field: "job_id", Message: "missing in job payload"}
	}

	return nil
}

// Done reports whether the job has reached a terminal state.
func (j *Job) Done() bool {
	switch j.State {
	case JobStateSucceeded, JobStateFailed, JobStateCancelled:
		return true
	default:
		return false
	}
}

// JobList is the wire envelope of the jobs listing.
type JobList struct {
	Jobs []Job `json:"jobs"`
}

// Validate checks every element.
func (l *JobList) Validate() error {
	for idx := range l.Jobs {
		err := l.Jobs[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// ListJobsParams filters the jobs listing.
type ListJobsParams struct {
	InstanceID string
	Type       JobType
}

// ToValues renders the parameters as query values.
func (p *ListJobsParams) ToValues() url.Values {
	values := url.Values{}

	if p.InstanceID != "" {
		values.Set("instance_id", p.InstanceID)
	}

	if p.Type != "" {
		values.Set("type", string(p.Type))
	}

	return values
}
