package novita

// Template describes a reusable instance template.
type Template struct {
	ID          string        `json:"template_id"`
	Name        string        `json:"name,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	RootfsSize  int           `json:"rootfs_size,omitempty"`
	Ports       []PortMapping `json:"ports,omitempty"`
	Envs        []EnvVar      `json:"envs,omitempty"`
	Description string        `json:"description,omitempty"`
	CreatedAt   int64         `json:"created_at,omitempty"`
}

// Validate checks the response shape.
func (t *Template) Validate() error {
	if t.ID == "" {
		return &ValidationError{Field: "template_id", Message: "missing in template payload"}
	}

	return nil
}

// TemplateList is the wire envelope of the templates listing.
type TemplateList struct {
	Templates []Template `json:"templates"`
}

// Validate checks every element.
func (l *TemplateList) Validate() error {
	for idx := range l.Templates {
		err := l.Templates[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateTemplateRequest creates a template, either from scratch or by
// snapshotting an existing instance's configuration.
type CreateTemplateRequest struct {
	Name        string        `json:"name"`
	InstanceID  string        `json:"instance_id,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	RootfsSize  int           `json:"rootfs_size,omitempty"`
	Ports       []PortMapping `json:"ports,omitempty"`
	Envs        []EnvVar      `json:"envs,omitempty"`
	Description string        `json:"description,omitempty"`
}

// Validate rejects incomplete requests. A template needs a name and either
// a source instance or an image.
func (r *CreateTemplateRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	if r.InstanceID == "" && r.ImageURL == "" {
		return &ValidationError{Field: "instance_id", Message: "either instance_id or image_url is required"}
	}

	return nil
}
