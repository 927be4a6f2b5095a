package i18n

// Key identifies one translatable display string.
type Key uint8

const (
	Title Key = iota
	Tagline
	SOS
	BloodDonor
	Ambulance
	Oxygen
	Plasma
	FirstAid
	Search
	Login
	Register
	NearbyHospitals
	EmergencyZones
	Dashboard
	Requests
	Users
	Analytics
	Logout
	AdminPanel
	BloodGroup
	Location
	SearchDonors
	WomenSafety
	DonationHistory
	Eligibility
	Volunteer
	ImpactStats
	VerifiedDonors
	LivesSaved
	EmergencyCalls

	Tasks
	MyProfile
	LanguageToggle
	FooterAbout
	BloodBank
	AmbulanceServices
	FirstAidGuides
	JoinAsDonor
	AllRightsReserved
	SOSSent
	SOSActive
	Name
	Email
	Phone
	Role
	RoleDonor
	RolePatient
	RoleVolunteer
	RoleAdmin
	Available
	Unavailable
	AnyOption
	NoDonors
	NotFound
	Welcome
	Services
	LoginFailed
	RegisterFailed
	EmailTaken
	TotalAccounts
	TotalAlerts
	DidYouMean

	keyCount
)

var keyNames = [keyCount]string{
	Title:           "title",
	Tagline:         "tagline",
	SOS:             "sos",
	BloodDonor:      "blood_donor",
	Ambulance:       "ambulance",
	Oxygen:          "oxygen",
	Plasma:          "plasma",
	FirstAid:        "first_aid",
	Search:          "search",
	Login:           "login",
	Register:        "register",
	NearbyHospitals: "nearby_hospitals",
	EmergencyZones:  "emergency_zones",
	Dashboard:       "dashboard",
	Requests:        "requests",
	Users:           "users",
	Analytics:       "analytics",
	Logout:          "logout",
	AdminPanel:      "admin_panel",
	BloodGroup:      "blood_group",
	Location:        "location",
	SearchDonors:    "search_donors",
	WomenSafety:     "women_safety",
	DonationHistory: "donation_history",
	Eligibility:     "eligibility",
	Volunteer:       "volunteer",
	ImpactStats:     "impact_stats",
	VerifiedDonors:  "verified_donors",
	LivesSaved:      "lives_saved",
	EmergencyCalls:  "emergency_calls",

	Tasks:             "tasks",
	MyProfile:         "my_profile",
	LanguageToggle:    "language_toggle",
	FooterAbout:       "footer_about",
	BloodBank:         "blood_bank",
	AmbulanceServices: "ambulance_services",
	FirstAidGuides:    "first_aid_guides",
	JoinAsDonor:       "join_as_donor",
	AllRightsReserved: "all_rights_reserved",
	SOSSent:           "sos_sent",
	SOSActive:         "sos_active",
	Name:              "name",
	Email:             "email",
	Phone:             "phone",
	Role:              "role",
	RoleDonor:         "role_donor",
	RolePatient:       "role_patient",
	RoleVolunteer:     "role_volunteer",
	RoleAdmin:         "role_admin",
	Available:         "available",
	Unavailable:       "unavailable",
	AnyOption:         "any",
	NoDonors:          "no_donors",
	NotFound:          "not_found",
	Welcome:           "welcome",
	Services:          "services",
	LoginFailed:       "login_failed",
	RegisterFailed:    "register_failed",
	EmailTaken:        "email_taken",
	TotalAccounts:     "total_accounts",
	TotalAlerts:       "total_alerts",
	DidYouMean:        "did_you_mean",
}

var keyIndex = func() map[string]Key {
	index := make(map[string]Key, keyCount)
	for idx, name := range keyNames {
		index[name] = Key(idx)
	}
	return index
}()

// Keys returns every translation key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for idx := range keyNames {
		keys = append(keys, Key(idx))
	}
	return keys
}

// String returns the catalog identifier of the key ("blood_donor").
func (k Key) String() string {
	if k >= keyCount {
		return ""
	}
	return keyNames[k]
}

// ParseKey maps a catalog identifier to its Key.
func ParseKey(name string) (Key, bool) {
	key, ok := keyIndex[name]
	return key, ok
}
