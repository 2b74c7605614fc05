package novita

// Storage describes a network storage volume.
type Storage struct {
	ID        string `json:"storage_id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size,omitempty"`
	Status    string `json:"status,omitempty"`
	ClusterID string `json:"cluster_id,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// Validate checks the response shape.
func (s *Storage) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "storage_id", Message: "missing in storage payload"}
	}

	return nil
}

// StorageList is the wire envelope of the storages listing.
type StorageList struct {
	Storages []Storage `json:"storages"`
}

// Validate checks every element.
func (l *StorageList) Validate() error {
	for idx := range l.Storages {
		err := l.Storages[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateStorageRequest creates a network storage volume.
type CreateStorageRequest struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	ClusterID string `json:"cluster_id,omitempty"`
}

// Validate rejects incomplete requests.
func (r *CreateStorageRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	if r.Size < 1 {
		return &ValidationError{Field: "size", Message: "must be at least 1 GB"}
	}

	return nil
}

// UpdateStorageRequest renames or resizes a network storage volume.
type UpdateStorageRequest struct {
	StorageID string `json:"storage_id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size,omitempty"`
}

// Validate rejects requests without a storage ID. Volumes only grow.
func (r *UpdateStorageRequest) Validate() error {
	if r.StorageID == "" {
		return &ValidationError{Field: "storage_id", Message: "is required"}
	}

	if r.Size < 0 {
		return &ValidationError{Field: "size", Message: "cannot be negative"}
	}

	return nil
}
