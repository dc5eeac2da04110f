package feed

// Briefing is the daily briefing shown on the portal's home panel.
type Briefing struct {
	Headline  string `yaml:"headline" json:"headline"`
	Summary   string `yaml:"summary" json:"summary"`
	Weather   string `yaml:"weather" json:"weather"`
	Cafeteria string `yaml:"cafeteria" json:"cafeteria"`
}

// Announcement is a slide on the home panel's carousel.
type Announcement struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// Article is a company news article.
type Article struct {
	Title     string `yaml:"title" json:"title"`
	Category  string `yaml:"category" json:"category"`
	Preview   string `yaml:"preview" json:"preview"`
	Author    string `yaml:"author" json:"author"`
	Published string `yaml:"published" json:"published"`
}

// QuickLink is a shortcut to a frequently used internal tool.
type QuickLink struct {
	Label       string `yaml:"label" json:"label"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
}

// TeamUpdate is a short status update posted by a team.
type TeamUpdate struct {
	Team   string `yaml:"team" json:"team"`
	Author string `yaml:"author" json:"author"`
	Update string `yaml:"update" json:"update"`
}

// Event is an upcoming company event.
type Event struct {
	Name     string `yaml:"name" json:"name"`
	Date     string `yaml:"date" json:"date"`
	Location string `yaml:"location" json:"location"`
}

// Spotlight profiles one employee.
type Spotlight struct {
	Name       string `yaml:"name" json:"name"`
	Role       string `yaml:"role" json:"role"`
	Department string `yaml:"department" json:"department"`
	Tenure     string `yaml:"tenure" json:"tenure"`
	Blurb      string `yaml:"blurb" json:"blurb"`
}
