package demo

import (
	"github.com/funcdemo/intake/pkg/question"
	"github.com/funcdemo/intake/pkg/role"
	"github.com/samber/lo"
)

// Style is one way of composing a role's questions into a single round.
type Style struct {
	// Name identifies the style on the command line and in config.
	Name string

	// Label completes the sentence "Press any key to do the same thing with ...".
	Label string

	// Description is a one-line summary shown by `intake styles`.
	Description string

	// Build composes the questions for the role into one Question that runs the
	// whole round and returns the last answer.
	Build func(r role.Role) question.Question
}

var (
	FunctionList = Style{
		Name:        "function-list",
		Label:       "a list of functions",
		Description: "named functions collected in a slice and called one after another",
		Build:       buildFunctionList,
	}

	Chained = Style{
		Name:        "chained",
		Label:       "function chaining",
		Description: "named functions chained into one function value with Then",
		Build:       buildChained,
	}

	Anonymous = Style{
		Name:        "anonymous",
		Label:       "anonymous functions",
		Description: "function literals written inline and chained together",
		Build:       buildAnonymous,
	}

	Closures = Style{
		Name:        "closures",
		Label:       "closures",
		Description: "function literals that capture the question they ask, joined with Chain",
		Build:       buildClosures,
	}

	Generic = Style{
		Name:        "generic",
		Label:       "generic functions",
		Description: "generic Func[string] values composed with ChainFuncs",
		Build:       buildGeneric,
	}
)

// Styles returns every known style, in presentation order.
func Styles() []Style {
	return []Style{FunctionList, Chained, Anonymous, Closures, Generic}
}

// DefaultStyles returns the styles run when none are configured.
func DefaultStyles() []Style {
	return []Style{FunctionList, Chained, Anonymous, Closures}
}

// StyleByName looks up a known style.
func StyleByName(name string) (Style, bool) {
	return lo.Find(Styles(), func(s Style) bool {
		return s.Name == name
	})
}

// StyleNames returns the names of the given styles.
func StyleNames(styles []Style) []string {
	return lo.Map(styles, func(s Style, _ int) string {
		return s.Name
	})
}

func buildFunctionList(r role.Role) question.Question {
	seq := question.For(r)
	return func(con question.Console) (string, error) {
		return question.Run(con, seq)
	}
}

func buildChained(r role.Role) question.Question {
	q := question.Question(question.AskForName)
	if r == role.Patient {
		q = q.Then(question.AskForBirthday)
		q = q.Then(question.AskForReasonForVisit)
	} else {
		q = q.Then(question.AskForMedicalLicenseNumber)
		q = q.Then(question.AskForSpeciality)
	}
	return q
}

func buildAnonymous(r role.Role) question.Question {
	q := question.Question(func(con question.Console) (string, error) {
		name, err := con.Ask("What is your name?")
		return name, err
	})

	if r == role.Patient {
		q = q.Then(func(con question.Console) (string, error) {
			birthday, err := con.Ask("What is your birthday?")
			return birthday, err
		})
		q = q.Then(func(con question.Console) (string, error) {
			reason, err := con.Ask("What is the reason for your visit today?")
			return reason, err
		})
	} else {
		q = q.Then(func(con question.Console) (string, error) {
			licenseNumber, err := con.Ask("What is your medical license number?")
			return licenseNumber, err
		})
		q = q.Then(func(con question.Console) (string, error) {
			speciality, err := con.Ask("What is your medical speciality?")
			return speciality, err
		})
	}

	return q
}

func buildClosures(r role.Role) question.Question {
	ask := func(id question.ID) question.Question {
		prompt := id.Text()
		return func(con question.Console) (string, error) {
			return con.Ask(prompt)
		}
	}

	return question.Chain(lo.Map(question.IDsFor(r), func(id question.ID, _ int) question.Question {
		return ask(id)
	})...)
}

func buildGeneric(r role.Role) question.Question {
	ask := func(prompt string) question.Func[string] {
		return func(con question.Console) (string, error) {
			return con.Ask(prompt)
		}
	}

	fs := []question.Func[string]{ask(question.Name.Text())}
	if r == role.Patient {
		fs = append(fs, ask(question.Birthday.Text()), ask(question.ReasonForVisit.Text()))
	} else {
		fs = append(fs, ask(question.MedicalLicenseNumber.Text()), ask(question.Speciality.Text()))
	}

	return question.Question(question.ChainFuncs(fs...))
}
