package question

import (
	"fmt"

	"github.com/funcdemo/intake/pkg/role"
	"github.com/samber/lo"
)

// ID identifies one of the questions in the catalog.
type ID string

const (
	Name                 ID = "name"
	Birthday             ID = "birthday"
	ReasonForVisit       ID = "reason-for-visit"
	MedicalLicenseNumber ID = "medical-license-number"
	Speciality           ID = "speciality"
)

var prompts = map[ID]string{
	Name:                 "What is your name?",
	Birthday:             "What is your birthday?",
	ReasonForVisit:       "What is the reason for your visit today?",
	MedicalLicenseNumber: "What is your medical license number?",
	Speciality:           "What is your medical speciality?",
}

var askers = map[ID]Question{
	Name:                 AskForName,
	Birthday:             AskForBirthday,
	ReasonForVisit:       AskForReasonForVisit,
	MedicalLicenseNumber: AskForMedicalLicenseNumber,
	Speciality:           AskForSpeciality,
}

// Text returns the prompt shown for the question, or "" for an unknown ID.
func (id ID) Text() string {
	return prompts[id]
}

// Question returns the named function that asks this question.
func (id ID) Question() Question {
	if q, ok := askers[id]; ok {
		return q
	}

	return func(Console) (string, error) {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuestion, string(id))
	}
}

// AskForName asks for the user's name.
func AskForName(con Console) (string, error) {
	return con.Ask(Name.Text())
}

// AskForBirthday asks a patient for their birthday.
func AskForBirthday(con Console) (string, error) {
	return con.Ask(Birthday.Text())
}

// AskForReasonForVisit asks a patient why they came in.
func AskForReasonForVisit(con Console) (string, error) {
	return con.Ask(ReasonForVisit.Text())
}

// AskForMedicalLicenseNumber asks a doctor for their license number.
func AskForMedicalLicenseNumber(con Console) (string, error) {
	return con.Ask(MedicalLicenseNumber.Text())
}

// AskForSpeciality asks a doctor for their speciality.
func AskForSpeciality(con Console) (string, error) {
	return con.Ask(Speciality.Text())
}

// IDsFor returns the IDs of the questions asked of the given role, in order.
// Everyone is asked for their name first.
func IDsFor(r role.Role) []ID {
	if r == role.Patient {
		return []ID{Name, Birthday, ReasonForVisit}
	}
	return []ID{Name, MedicalLicenseNumber, Speciality}
}

// For returns the sequence of questions asked of the given role. Every call
// returns a new slice.
func For(r role.Role) []Question {
	return lo.Map(IDsFor(r), func(id ID, _ int) Question {
		return id.Question()
	})
}
