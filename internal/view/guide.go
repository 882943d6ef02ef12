package view

// GuideSection is a tab of the blueprint pulling guide
type GuideSection string

const (
	GuideIntro   GuideSection = "intro"
	GuideZombies GuideSection = "zombies"
	GuideMPWZ    GuideSection = "mpwz"
)

// GuideSections lists the tabs in display order
func GuideSections() []GuideSection {
	return []GuideSection{GuideIntro, GuideZombies, GuideMPWZ}
}

func (g GuideSection) Title() string {
	switch g {
	case GuideZombies:
		return "How to Pull in Zombies"
	case GuideMPWZ:
		return "How to Pull in MP/WZ"
	}
	return "What is Blueprint Pulling?"
}

func (g GuideSection) Text() string {
	switch g {
	case GuideZombies:
		return "Forward video to 12:56 for Zombies Pulling Method"
	case GuideMPWZ:
		return "In Multiplayer and Warzone, ACCOUNT MUST BE BROKEN, Forward to 1:32 to see how to break account."
	}
	return "Blueprint pulling is the process of extracting weapon blueprints from loot pools, " +
		"bundles, or in-game drops. It's a way to unlock rare cosmetics and weapon variants " +
		"without direct purchase."
}

// VideoURL is empty for the intro section
func (g GuideSection) VideoURL() string {
	switch g {
	case GuideZombies:
		return "https://www.youtube.com/watch?v=AwFInwhDlus&t=746s"
	case GuideMPWZ:
		return "https://www.youtube.com/watch?v=Ou1VjCpFqM8&t"
	}
	return ""
}

// Credit is one line of the credits panel
type Credit struct {
	Role string
	Name string
}

// Credits lists the contributors shown in the credits panel
func Credits() []Credit {
	return []Credit{
		{Role: "Design & Development", Name: "TrashedPanda"},
		{Role: "Data Structuring", Name: "Data sourced by Parsedgod"},
		{Role: "UI/UX", Name: "Inspired by Black Ops 6 Theme"},
		{Role: "Assets", Name: "All logos, videos, and images are property of their respective owners"},
	}
}
