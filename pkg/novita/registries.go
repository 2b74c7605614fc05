package novita

// RegistryAuth is a stored container registry credential. The password is
// masked in text renderings but serialized in full on the wire.
type RegistryAuth struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Password Secret `json:"password,omitempty"`
}

// Validate checks the response shape.
func (a *RegistryAuth) Validate() error {
	if a.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in registry auth payload"}
	}

	return nil
}

// RegistryAuthList is the wire envelope of the registry auth listing.
type RegistryAuthList struct {
	Data []RegistryAuth `json:"data"`
}

// Validate checks every element.
func (l *RegistryAuthList) Validate() error {
	for idx := range l.Data {
		err := l.Data[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// SaveRegistryAuthRequest creates or updates a registry credential.
type SaveRegistryAuthRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password Secret `json:"password"`
}

// Validate rejects incomplete requests.
func (r *SaveRegistryAuthRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}

	if r.Password == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}

	return nil
}
