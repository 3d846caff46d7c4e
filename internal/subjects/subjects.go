// Package subjects holds the static subject catalog the learner picks
// from. Subjects are grouped by exam stage; the groups only affect how
// the picker presents them.
package subjects

// Subject is one selectable study subject.
type Subject struct {
	Name  string
	Group string
}

// Group labels.
const (
	GroupPrelims  = "Prelims"
	GroupMains    = "Mains"
	GroupOptional = "Optional"
)

// Default is the subject preselected on startup.
const Default = "General Science"

var catalog = []Subject{
	{Name: "General Science", Group: GroupPrelims},
	{Name: "History", Group: GroupPrelims},
	{Name: "Geography", Group: GroupPrelims},
	{Name: "Indian Polity", Group: GroupPrelims},
	{Name: "Economy", Group: GroupPrelims},
	{Name: "Environment & Ecology", Group: GroupPrelims},
	{Name: "Current Affairs", Group: GroupPrelims},

	{Name: "Essay", Group: GroupMains},
	{Name: "Ethics, Integrity & Aptitude", Group: GroupMains},
	{Name: "Governance & Social Justice", Group: GroupMains},
	{Name: "International Relations", Group: GroupMains},
	{Name: "Science & Technology", Group: GroupMains},

	{Name: "Mathematics", Group: GroupOptional},
	{Name: "Physics", Group: GroupOptional},
	{Name: "Chemistry", Group: GroupOptional},
	{Name: "Sociology", Group: GroupOptional},
	{Name: "Public Administration", Group: GroupOptional},
}

// All returns every subject in catalog order.
func All() []Subject {
	out := make([]Subject, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns every subject name in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, s := range catalog {
		out[i] = s.Name
	}
	return out
}

// Valid reports whether name is a known subject.
func Valid(name string) bool {
	for _, s := range catalog {
		if s.Name == name {
			return true
		}
	}
	return false
}
