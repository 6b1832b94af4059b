package role

import (
	"fmt"
	"strings"
)

// Role is the kind of user being interviewed.
type Role string

const (
	Patient Role = "patient"
	Doctor  Role = "doctor"
)

// Prompt is the question used to find out the user's role.
const Prompt = "Are you a patient or a doctor?"

// Resolve maps the user's answer to a Role. Only "patient" (ignoring case and
// surrounding whitespace) selects Patient; anything else, including an empty
// answer, selects Doctor.
func Resolve(input string) Role {
	if strings.ToLower(strings.TrimSpace(input)) == string(Patient) {
		return Patient
	}
	return Doctor
}

// Asker is anything that can put a question to the user.
type Asker interface {
	Ask(prompt string) (string, error)
}

// Ask prompts the user for their role and resolves the answer.
func Ask(a Asker) (Role, error) {
	answer, err := a.Ask(Prompt)
	if err != nil {
		return "", fmt.Errorf("asking for role: %w", err)
	}

	return Resolve(answer), nil
}

func (r Role) String() string {
	return string(r)
}
