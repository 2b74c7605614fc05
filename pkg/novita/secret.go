package novita

import "encoding/json"

// SecretMask is what a Secret renders as in any textual output.
const SecretMask = "**********"

// Secret holds a sensitive string value, such as a registry password. Its
// default textual forms are masked; the plaintext is only reachable through
// Value, and through MarshalJSON because the wire format requires it.
type Secret string

// Value returns the unmasked plaintext.
func (s Secret) Value() string {
	return string(s)
}

// String implements fmt.Stringer and always masks.
func (s Secret) String() string {
	if s == "" {
		return ""
	}

	return SecretMask
}

// GoString masks %#v output as well.
func (s Secret) GoString() string {
	return "novita.Secret(" + s.String() + ")"
}

// MarshalText masks the value in text-based encoders (yaml, log fields).
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalJSON emits the plaintext: the network layer needs the real value.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON reads the plaintext from a wire payload.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	*s = Secret(raw)

	return nil
}
