package novita

// PrewarmTask is an image prewarm task pulling an image onto cluster nodes
// ahead of instance creation.
type PrewarmTask struct {
	ID        string `json:"task_id"`
	ImageURL  string `json:"image_url,omitempty"`
	ClusterID string `json:"cluster_id,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// Validate checks the response shape.
func (t *PrewarmTask) Validate() error {
	if t.ID == "" {
		return &ValidationError{Field: "task_id", Message: "missing in prewarm task payload"}
	}

	return nil
}

// PrewarmTaskList is the wire envelope of the prewarm task listing.
type PrewarmTaskList struct {
	Tasks []PrewarmTask `json:"tasks"`
}

// Validate checks every element.
func (l *PrewarmTaskList) Validate() error {
	for idx := range l.Tasks {
		err := l.Tasks[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CreatePrewarmRequest starts pulling an image onto a cluster.
type CreatePrewarmRequest struct {
	ImageURL  string `json:"image_url"`
	ClusterID string `json:"cluster_id"`
	AuthID    string `json:"auth_id,omitempty"`
}

// Validate rejects incomplete requests.
func (r *CreatePrewarmRequest) Validate() error {
	if r.ImageURL == "" {
		return &ValidationError{Field: "image_url", Message: "is required"}
	}

	if r.ClusterID == "" {
		return &ValidationError{Field: "cluster_id", Message: "is required"}
	}

	return nil
}

// CreatePrewarmResponse carries the identifier of the new prewarm task.
type CreatePrewarmResponse struct {
	ID string `json:"task_id"`
}

// Validate checks the response shape.
func (r *CreatePrewarmResponse) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "task_id", Message: "missing in create prewarm response"}
	}

	return nil
}

// UpdatePrewarmRequest changes the image of an existing prewarm task.
type UpdatePrewarmRequest struct {
	TaskID   string `json:"task_id"`
	ImageURL string `json:"image_url"`
	AuthID   string `json:"auth_id,omitempty"`
}

// Validate rejects incomplete requests.
func (r *UpdatePrewarmRequest) Validate() error {
	if r.TaskID == "" {
		return &ValidationError{Field: "task_id", Message: "is required"}
	}

	if r.ImageURL == "" {
		return &ValidationError{Field: "image_url", Message: "is required"}
	}

	return nil
}

// PrewarmQuota reports how many prewarm tasks the account may still create.
type PrewarmQuota struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Remaining returns the unused quota.
func (q *PrewarmQuota) Remaining() int {
	remaining := q.Total - q.Used
	if remaining < 0 {
		return 0
	}

	return remaining
}
