// Package directory holds the static emergency content: service kinds with
// their providers and the first-aid guides.
package directory

import (
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/platform/icons"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

// ServiceKind identifies an emergency service category.
type ServiceKind string

const (
	KindBlood     ServiceKind = "blood"
	KindAmbulance ServiceKind = "ambulance"
	KindOxygen    ServiceKind = "oxygen"
	KindPlasma    ServiceKind = "plasma"
	KindFirstAid  ServiceKind = "firstaid"
)

// Card is one entry of the home page service grid.
type Card struct {
	Kind  ServiceKind
	Icon  icons.ID
	Label i18n.Key
	Path  string
}

// Cards returns the home page service grid in display order.
func Cards() []Card {
	return []Card{
		{Kind: KindBlood, Icon: icons.Blood, Label: i18n.BloodDonor, Path: routepath.Donors},
		{Kind: KindAmbulance, Icon: icons.Ambulance, Label: i18n.Ambulance, Path: routepath.Service(string(KindAmbulance))},
		{Kind: KindOxygen, Icon: icons.Oxygen, Label: i18n.Oxygen, Path: routepath.Service(string(KindOxygen))},
		{Kind: KindFirstAid, Icon: icons.FirstAid, Label: i18n.FirstAid, Path: routepath.FirstAid},
	}
}

// Provider is a contactable service provider.
type Provider struct {
	Name     string
	Location string
	Phone    string
}

// Service is a listing page under /services/{type}.
type Service struct {
	Kind      ServiceKind
	Label     i18n.Key
	Providers []Provider
}

var services = []Service{
	{
		Kind:  KindAmbulance,
		Label: i18n.Ambulance,
		Providers: []Provider{
			{Name: "National Emergency Service", Location: "Nationwide", Phone: "999"},
			{Name: "Dhaka Medical College Ambulance", Location: "Dhaka", Phone: "01700000101"},
			{Name: "Chittagong Medical Ambulance", Location: "Chittagong", Phone: "01800000102"},
		},
	},
	{
		Kind:  KindOxygen,
		Label: i18n.Oxygen,
		Providers: []Provider{
			{Name: "City Oxygen Supply", Location: "Dhaka", Phone: "01700000201"},
			{Name: "Sylhet Oxygen Bank", Location: "Sylhet", Phone: "01900000202"},
		},
	},
	{
		Kind:  KindPlasma,
		Label: i18n.Plasma,
		Providers: []Provider{
			{Name: "Central Plasma Bank", Location: "Dhaka", Phone: "01600000301"},
		},
	},
	{
		Kind:  KindBlood,
		Label: i18n.BloodBank,
		Providers: []Provider{
			{Name: "Sandhani Blood Bank", Location: "Dhaka", Phone: "01700000401"},
			{Name: "Red Crescent Blood Centre", Location: "Chittagong", Phone: "01800000402"},
		},
	},
}

// LookupService returns the listing for kind.
func LookupService(kind string) (Service, bool) {
	for _, service := range services {
		if string(service.Kind) == kind {
			providers := append([]Provider(nil), service.Providers...)
			service.Providers = providers
			return service, true
		}
	}
	return Service{}, false
}

// Step is one instruction of a first-aid guide.
type Step struct {
	Title       string
	Description string
}

// Guide is a first-aid guide.
type Guide struct {
	ID       string
	Title    string
	Category string
	Steps    []Step
}

var guides = []Guide{
	{
		ID:       "burns",
		Title:    "Burns Treatment",
		Category: "Accident",
		Steps: []Step{
			{Title: "Cool the burn", Description: "Hold the burned area under cool running water for 10-20 minutes."},
			{Title: "Protect the area", Description: "Cover the burn loosely with a sterile bandage or clean cloth."},
			{Title: "Avoid Ice", Description: "Do not use ice, as it can further damage the skin tissue."},
		},
	},
	{
		ID:       "cpr",
		Title:    "How to perform CPR",
		Category: "Critical",
		Steps: []Step{
			{Title: "Check Responsiveness", Description: "Tap the person and shout to see if they respond."},
			{Title: "Call Emergency Services", Description: "Dial your local emergency number immediately."},
			{Title: "Compressions", Description: "Push hard and fast in the center of the chest (100-120 per min)."},
		},
	},
}

// Guides returns the first-aid guides.
func Guides() []Guide {
	out := make([]Guide, 0, len(guides))
	for _, guide := range guides {
		guide.Steps = append([]Step(nil), guide.Steps...)
		out = append(out, guide)
	}
	return out
}
