package valueobjects

import "fmt"

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// Password is a plaintext password on its way to the hasher. There is no
// complexity policy; the only rules are presence and the bcrypt length limit.
type Password struct {
	value string
}

func NewPassword(plainPassword string) (*Password, error) {
	if plainPassword == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if len(plainPassword) > maxPasswordBytes {
		return nil, fmt.Errorf("password must not exceed %d bytes", maxPasswordBytes)
	}
	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}
