package resource

// Kind identifies one of the portal's named resources served by the mock
// backend.
type Kind int

const (
	Briefing Kind = iota
	News
	QuickLinks
	TeamUpdates
	Events
	Spotlight
)

func (k Kind) String() string {
	return [...]string{
		"briefing",
		"news",
		"quicklinks",
		"team-updates",
		"events",
		"spotlight",
	}[k]
}
