package icons

import "strings"

// ID identifies a core icon.
type ID string

const (
	Blood     ID = "blood"
	Ambulance ID = "ambulance"
	Oxygen    ID = "oxygen"
	Plasma    ID = "plasma"
	FirstAid  ID = "first_aid"
	SOS       ID = "sos"
	Location  ID = "location"
	Profile   ID = "profile"
	Language  ID = "language"
	LogOut    ID = "log_out"
	Dashboard ID = "dashboard"
	Tasks     ID = "tasks"
	Search    ID = "search"
	Verified  ID = "verified"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Blood, Name: "Blood", Description: "Blood donors and donor search."},
	{ID: Ambulance, Name: "Ambulance", Description: "Ambulance services."},
	{ID: Oxygen, Name: "Oxygen", Description: "Oxygen cylinder suppliers."},
	{ID: Plasma, Name: "Plasma", Description: "Plasma donation."},
	{ID: FirstAid, Name: "First Aid", Description: "First-aid guides."},
	{ID: SOS, Name: "SOS", Description: "The SOS button and its status."},
	{ID: Location, Name: "Location", Description: "Donor and provider locations."},
	{ID: Profile, Name: "Profile", Description: "The signed-in visitor's profile."},
	{ID: Language, Name: "Language", Description: "The language switch."},
	{ID: LogOut, Name: "Log Out", Description: "Logout actions."},
	{ID: Dashboard, Name: "Dashboard", Description: "The admin dashboard."},
	{ID: Tasks, Name: "Tasks", Description: "Volunteer tasks."},
	{ID: Search, Name: "Search", Description: "Search forms."},
	{ID: Verified, Name: "Verified", Description: "Verified donors and accounts."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Lucide | Name | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
