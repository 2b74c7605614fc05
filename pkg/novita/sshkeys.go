package novita

// SSHKey is a registered public key injected into new instances.
type SSHKey struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Validate checks the response shape.
func (k *SSHKey) Validate() error {
	if k.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in ssh key payload"}
	}

	return nil
}

// SSHKeyList is the wire envelope of the ssh key listing.
type SSHKeyList struct {
	Data []SSHKey `json:"data"`
}

// Validate checks every element.
func (l *SSHKeyList) Validate() error {
	for idx := range l.Data {
		err := l.Data[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateSSHKeyRequest registers a public key.
type CreateSSHKeyRequest struct {
	Name      string `json:"name"`
	PublicKey string `json:"publicKey"`
}

// Validate rejects incomplete requests.
func (r *CreateSSHKeyRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	if r.PublicKey == "" {
		return &ValidationError{Field: "publicKey", Message: "is required"}
	}

	return nil
}
