package regulation

import (
	"time"

	"github.com/irfndi/strmarket-engine/internal/models"
)

func verified(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// curatedEntries is the researched STR regulation table. Keys follow
// models.NewMarketID. Entries are authored by hand; a banned entry carries a
// zero night cap.
var curatedEntries = map[string]models.RegulationEntry{
	"ak-anchorage": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "STRs allowed with a municipal room-tax registration.",
		Details:          "Anchorage treats short-term rentals as lodging for tax purposes. Operators register for the room tax and follow standard building and fire codes; no zoning cap applies.",
		LastVerified:     verified(2025, time.February),
	},
	"al-birmingham": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "STRs limited to commercial and mixed-use districts.",
		Details:          "Birmingham's zoning ordinance does not permit short-term rentals in single-family residential districts. Operators in eligible districts need a business license and lodging tax account.",
		LastVerified:     verified(2025, time.January),
	},
	"al-gulf-shores": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Vacation rentals widely permitted with a business license.",
		Details:          "Gulf Shores is a resort market. A city business license and lodging tax registration with Baldwin County are required; condominium HOA rules are the main practical limit.",
		LastVerified:     verified(2025, time.March),
	},
	"al-orange-beach": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Vacation rentals permitted citywide with a business license.",
		Details:          "Orange Beach licenses short-term rentals as businesses and collects lodging tax. Occupancy limits follow the building code.",
		LastVerified:     verified(2025, time.March),
	},
	"ar-bentonville": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city STR permit and annual inspection.",
		Details:          "Bentonville requires a short-term rental permit, a life-safety inspection and a local contact. Certain residential zones need conditional approval.",
		LastVerified:     verified(2025, time.February),
	},
	"ar-hot-springs": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city registration; some zones need approval.",
		Details:          "Hot Springs registers short-term rentals and collects advertising and promotion tax. Properties in single-family zones may require a conditional use hearing.",
		LastVerified:     verified(2024, time.November),
	},
	"az-flagstaff": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted statewide; city requires a permit and emergency contact.",
		Details:          "Arizona preempts municipal bans. Flagstaff requires a short-term rental permit, a transaction privilege tax license and a 24-hour emergency contact.",
		LastVerified:     verified(2025, time.January),
	},
	"az-phoenix": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted statewide; city license and TPT registration required.",
		Details:          "Arizona law prevents cities from banning short-term rentals. Phoenix requires a permit, transaction privilege tax license and neighbor notification.",
		LastVerified:     verified(2025, time.February),
	},
	"az-scottsdale": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city license, background check and notification.",
		Details:          "Scottsdale enacted its licensing ordinance after the state allowed local registration. Operators need a license, proof of insurance and must notify adjacent neighbors.",
		LastVerified:     verified(2025, time.February),
	},
	"az-sedona": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted statewide; Sedona requires a permit and local contact.",
		Details:          "Sedona cannot ban short-term rentals under state law but requires a permit, a response-time commitment from a local contact and tax registration.",
		LastVerified:     verified(2025, time.January),
	},
	"az-tucson": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with a city registration and TPT license.",
		Details:          "Tucson registers short-term rentals and requires an emergency contact. State preemption prevents caps or bans.",
		LastVerified:     verified(2024, time.December),
	},
	"ca-anaheim": {
		LegalityStatus:   models.LegalityBanned,
		PermitDifficulty: models.PermitVeryHard,
		MaxNightsPerYear: models.Nights(0),
		Summary:          "New STR permits are prohibited citywide.",
		Details:          "Anaheim ended issuance of short-term rental permits and phased out non-conforming rentals outside resort-area overlay districts. New investors cannot obtain a permit.",
		LastVerified:     verified(2025, time.January),
	},
	"ca-big-bear-lake": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		PermitCap:        true,
		Summary:          "Permits required; caps apply in some residential zones.",
		Details:          "Big Bear Lake requires a transient private home rental permit, annual inspections and occupancy limits. Some residential zones are subject to permit caps.",
		LastVerified:     verified(2025, time.February),
	},
	"ca-carmel-by-the-sea": {
		LegalityStatus:   models.LegalityBanned,
		PermitDifficulty: models.PermitVeryHard,
		MaxNightsPerYear: models.Nights(0),
		Summary:          "Rentals under 30 days are prohibited in residential districts.",
		Details:          "Carmel-by-the-Sea prohibits transient rentals in its residential districts. Only licensed commercial lodging may rent for less than 30 days.",
		LastVerified:     verified(2024, time.October),
	},
	"ca-irvine": {
		LegalityStatus:   models.LegalityBanned,
		PermitDifficulty: models.PermitVeryHard,
		MaxNightsPerYear: models.Nights(0),
		Summary:          "Short-term rentals are prohibited citywide.",
		Details:          "Irvine's zoning code does not allow rentals of fewer than 30 consecutive days in any residential zone. Enforcement relies on complaint-driven citations.",
		LastVerified:     verified(2025, time.March),
	},
	"ca-joshua-tree": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted under San Bernardino County's STR ordinance.",
		Details:          "Unincorporated San Bernardino County requires a short-term rental certificate, an on-site posting of rules and a local contact able to respond within an hour.",
		LastVerified:     verified(2025, time.January),
	},
	"ca-los-angeles": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitHard,
		OwnerOccupiedRequired: true,
		MaxNightsPerYear:      models.Nights(120),
		Summary:               "Home-sharing only at a primary residence; 120-night cap.",
		Details:               "Los Angeles limits short-term rentals to the host's primary residence with a home-sharing registration. Unhosted stays are capped at 120 nights per year unless an extended permit is granted.",
		LastVerified:          verified(2025, time.February),
	},
	"ca-manhattan-beach": {
		LegalityStatus:   models.LegalityBanned,
		PermitDifficulty: models.PermitVeryHard,
		MaxNightsPerYear: models.Nights(0),
		Summary:          "Rentals under 30 days prohibited in residential zones.",
		Details:          "Manhattan Beach bans short-term vacation rentals in residential zones, a ban upheld by the courts despite coastal-access challenges.",
		LastVerified:     verified(2024, time.September),
	},
	"ca-oakland": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Permitted only at the host's primary residence.",
		Details:               "Oakland allows short-term rentals in the host's primary residence with a business tax certificate. Rent-controlled units face additional limits.",
		LastVerified:          verified(2024, time.November),
	},
	"ca-palm-springs": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Neighborhood caps at 20 percent; contract limits per year.",
		Details:          "Palm Springs caps vacation rental certificates at 20 percent of homes per neighborhood and limits annual rental contracts. Waitlists apply in many neighborhoods.",
		LastVerified:     verified(2025, time.February),
	},
	"ca-sacramento": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city business operation tax certificate.",
		Details:          "Sacramento permits hosted and unhosted stays with a permit and transient occupancy tax registration. Unhosted stays have stricter notification rules.",
		LastVerified:     verified(2024, time.December),
	},
	"ca-san-diego": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Tiered licenses; whole-home licenses capped at 1 percent of housing.",
		Details:          "San Diego issues tiered short-term residential occupancy licenses. Whole-home licenses are capped citywide at 1 percent of housing units, with a separate Mission Beach cap, and are awarded by lottery.",
		LastVerified:     verified(2025, time.March),
	},
	"ca-san-francisco": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		MaxNightsPerYear:      models.Nights(90),
		Summary:               "Primary residence only; 90 unhosted nights per year.",
		Details:               "San Francisco requires registration with the Office of Short-Term Rentals. Hosts must live in the unit at least 275 nights a year and unhosted rentals are capped at 90 nights.",
		LastVerified:          verified(2025, time.February),
	},
	"ca-santa-monica": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		MaxNightsPerYear:      models.Nights(0),
		Summary:               "Only hosted home-sharing permitted; vacation rentals banned.",
		Details:               "Santa Monica bans whole-unit vacation rentals. Home-sharing is allowed only when the host lives on site during the stay and holds a business license.",
		LastVerified:          verified(2025, time.January),
	},
	"ca-south-lake-tahoe": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Vacation rentals banned outside tourist core areas.",
		Details:          "South Lake Tahoe voters approved phasing out vacation home rentals outside tourist core areas. Permits remain available in the tourist core and for qualified hosted rentals.",
		LastVerified:     verified(2024, time.December),
	},
	"co-aspen": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Permits capped by type; high annual fees.",
		Details:          "Aspen requires short-term rental permits by type with annual caps on non-owner-occupied permits and high permit fees tied to affordable housing programs.",
		LastVerified:     verified(2025, time.January),
	},
	"co-breckenridge": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Non-exempt licenses capped around 2,200.",
		Details:          "Breckenridge caps non-exempt short-term rental licenses and maintains a waitlist. Properties in designated resort zones are exempt from the cap.",
		LastVerified:     verified(2025, time.February),
	},
	"co-colorado-springs": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city permit; non-owner-occupied spacing applies.",
		Details:          "Colorado Springs issues short-term rental permits with annual renewal. Non-owner-occupied rentals in single-family zones must meet a separation requirement.",
		LastVerified:     verified(2024, time.November),
	},
	"co-denver": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Primary residence only, with a city license.",
		Details:               "Denver restricts short-term rentals to the operator's primary residence. A license and lodger's tax account are required and listings must display the license number.",
		LastVerified:          verified(2025, time.February),
	},
	"co-estes-park": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Residential-zone vacation home licenses capped.",
		Details:          "Estes Park caps vacation home licenses in residential zones and holds a waitlist. Commercial zones are not capped.",
		LastVerified:     verified(2024, time.October),
	},
	"co-steamboat-springs": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Zone-based overlay limits and license caps.",
		Details:          "Steamboat Springs uses overlay zones. Red zones prohibit new short-term rentals and other zones limit the number of licenses.",
		LastVerified:     verified(2024, time.December),
	},
	"co-telluride": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Non-primary-residence licenses capped.",
		Details:          "Telluride caps non-primary-residence short-term rental licenses and taxes them at an elevated rate to fund workforce housing.",
		LastVerified:     verified(2024, time.October),
	},
	"co-vail": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with registration and life-safety inspection.",
		Details:          "Vail registers short-term rentals, requires a local responsible agent and conducts life-safety inspections. No citywide cap applies.",
		LastVerified:     verified(2024, time.November),
	},
	"ct-hartford": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "No STR-specific licensing beyond state occupancy tax.",
		Details:          "Hartford has no dedicated short-term rental ordinance. Operators collect Connecticut room occupancy tax and follow housing codes.",
		LastVerified:     verified(2024, time.September),
	},
	"dc-washington": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		MaxNightsPerYear:      models.Nights(90),
		Summary:               "Primary residence only; 90 unhosted nights per year.",
		Details:               "The District licenses short-term rentals only at the host's primary residence. Vacation rentals while the host is away are capped at 90 nights annually.",
		LastVerified:          verified(2025, time.January),
	},
	"fl-clearwater": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city business tax receipt and state license.",
		Details:          "Florida preempts municipal bans enacted after 2011. Clearwater requires local registration, a state DBPR license and minimum-stay rules in some zones.",
		LastVerified:     verified(2024, time.December),
	},
	"fl-destin": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Vacation rentals widely permitted with state and county registration.",
		Details:          "Destin is a resort market under Florida's preemption. Operators need a DBPR license, county tourist development tax account and city business tax receipt.",
		LastVerified:     verified(2025, time.February),
	},
	"fl-fort-lauderdale": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration and inspection required; occupancy limits apply.",
		Details:          "Fort Lauderdale's vacation rental registration requires inspections, a responsible party available around the clock and posted occupancy limits.",
		LastVerified:     verified(2025, time.January),
	},
	"fl-jacksonville": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with state license and tourist development tax.",
		Details:          "Jacksonville has no dedicated short-term rental ordinance beyond state licensing and local tourist development tax.",
		LastVerified:     verified(2024, time.November),
	},
	"fl-key-west": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Transient licenses are scarce and tied to specific units.",
		Details:          "Key West bans rentals under 30 days unless the unit holds one of a fixed number of transient rental licenses, which trade at a high premium.",
		LastVerified:     verified(2025, time.January),
	},
	"fl-kissimmee": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Vacation homes permitted in designated resort zones.",
		Details:          "Osceola County and Kissimmee permit vacation homes in designated zones near the theme parks with a county vacation home license.",
		LastVerified:     verified(2025, time.March),
	},
	"fl-miami": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Prohibited in many residential zones; certificate required elsewhere.",
		Details:          "Miami's zoning prohibits short-term rentals in most single-family neighborhoods. Eligible properties need a certificate of use and business tax receipt.",
		LastVerified:     verified(2025, time.January),
	},
	"fl-miami-beach": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		Summary:          "Banned in most residential districts with heavy fines.",
		Details:          "Miami Beach prohibits rentals under six months in most residential districts and imposes escalating fines starting at 20,000 dollars per violation.",
		LastVerified:     verified(2025, time.February),
	},
	"fl-naples": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with registration; minimum stays in some districts.",
		Details:          "Naples requires registration and enforces minimum-stay rules in certain residential districts grandfathered under Florida law.",
		LastVerified:     verified(2024, time.October),
	},
	"fl-orlando": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitHard,
		OwnerOccupiedRequired: true,
		Summary:               "Home-sharing only with the owner present.",
		Details:               "Orlando allows short-term rentals only as home-sharing with the owner living on site. Whole-home rentals are limited to properties in neighboring Osceola and Orange County resort zones.",
		LastVerified:          verified(2025, time.January),
	},
	"fl-panama-city-beach": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with registration and state license.",
		Details:          "Panama City Beach registers vacation rentals and collects bed tax. Florida preemption protects the market from new local bans.",
		LastVerified:     verified(2025, time.February),
	},
	"fl-pensacola": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with state license and county tax.",
		Details:          "Pensacola relies on state DBPR licensing and Escambia County tourist development tax registration.",
		LastVerified:     verified(2024, time.November),
	},
	"fl-sarasota": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration and occupancy limits required.",
		Details:          "Sarasota's vacation rental registration program caps occupancy by bedroom count and requires an inspection.",
		LastVerified:     verified(2024, time.December),
	},
	"fl-st-augustine": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted in eligible zones with a city license.",
		Details:          "St. Augustine licenses short-term rentals in eligible zoning districts and requires a local contact and inspection.",
		LastVerified:     verified(2024, time.December),
	},
	"fl-tampa": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted under state preemption with tax registration.",
		Details:          "Tampa has no citywide short-term rental ordinance. Operators need state licensing and Hillsborough County tourist development tax registration.",
		LastVerified:     verified(2025, time.January),
	},
	"ga-atlanta": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Primary residence plus one additional unit per host.",
		Details:               "Atlanta licenses short-term rentals at the host's primary residence and permits one additional property per host. A license number must appear on listings.",
		LastVerified:          verified(2025, time.January),
	},
	"ga-blue-ridge": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Cabins widely permitted with county registration.",
		Details:          "Fannin County and Blue Ridge register cabin rentals and collect hotel-motel tax. No caps apply.",
		LastVerified:     verified(2024, time.October),
	},
	"ga-savannah": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Non-owner-occupied rentals capped in historic wards.",
		Details:          "Savannah caps non-owner-occupied short-term vacation rentals at a percentage of each ward in the historic district and requires a certificate.",
		LastVerified:     verified(2025, time.February),
	},
	"hi-honolulu": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "90-day minimum stay outside resort zones.",
		Details:          "Honolulu requires a 90-day minimum stay for rentals outside designated resort areas. Legal short-term rentals are limited to resort zones and a fixed set of nonconforming use certificates.",
		LastVerified:     verified(2025, time.March),
	},
	"hi-kailua-kona": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted in resort and commercial zones with registration.",
		Details:          "Hawaii County registers short-term vacation rentals and allows them in resort, commercial and some agricultural zones with a nonconforming use certificate elsewhere.",
		LastVerified:     verified(2024, time.December),
	},
	"hi-kauai": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Vacation rentals limited to visitor destination areas.",
		Details:          "Kauai County permits transient vacation rentals only within visitor destination areas, except for grandfathered nonconforming use certificates.",
		LastVerified:     verified(2024, time.November),
	},
	"hi-maui": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Apartment-district rentals being phased out; permits capped.",
		Details:          "Maui County caps bed-and-breakfast and short-term rental home permits per community plan area and is phasing out transient use in apartment districts.",
		LastVerified:     verified(2025, time.February),
	},
	"ia-des-moines": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with a rental certificate.",
		Details:          "Des Moines applies its rental certificate program to short-term rentals. No caps or owner-occupancy rules apply.",
		LastVerified:     verified(2024, time.September),
	},
	"id-boise": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "State law prevents bans; basic registration only.",
		Details:          "Idaho prohibits cities from banning short-term rentals. Boise may require basic registration and health and safety compliance.",
		LastVerified:     verified(2025, time.January),
	},
	"id-coeur-dalene": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted under state preemption with registration.",
		Details:          "Coeur d'Alene registers short-term rentals and enforces parking and occupancy standards permitted by state law.",
		LastVerified:     verified(2024, time.October),
	},
	"il-chicago": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Licensing required; buildings may opt out.",
		Details:          "Chicago licenses vacation rentals and shared housing units. Buildings can prohibit rentals and some precincts have voted to restrict new licenses.",
		LastVerified:     verified(2025, time.January),
	},
	"in-indianapolis": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted under state preemption.",
		Details:          "Indiana prevents local bans of short-term rentals. Indianapolis requires registration and tax collection.",
		LastVerified:     verified(2024, time.October),
	},
	"ks-wichita": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "No STR-specific restrictions.",
		Details:          "Wichita has no dedicated short-term rental ordinance. Transient guest tax applies.",
		LastVerified:     verified(2024, time.August),
	},
	"ky-louisville": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Non-owner-occupied rentals require conditional use permits.",
		Details:          "Louisville registers all short-term rentals. Non-owner-occupied rentals in residential zones need a conditional use permit and must meet spacing rules.",
		LastVerified:     verified(2024, time.December),
	},
	"la-new-orleans": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		PermitCap:             true,
		Summary:               "One permit per block face; owner-occupancy in residential zones.",
		Details:               "New Orleans limits residential short-term rentals to owner-occupied properties with one permit per block face, awarded by lottery. Commercial permits are limited to certain districts.",
		LastVerified:          verified(2025, time.February),
	},
	"ma-barnstable": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with state and town registration.",
		Details:          "Massachusetts requires state registration and room occupancy excise. Barnstable adds local registration and safety certification.",
		LastVerified:     verified(2024, time.November),
	},
	"ma-boston": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		Summary:               "Owner-occupied units only; investor units banned.",
		Details:               "Boston permits short-term rentals only in owner-occupied buildings of up to three units. Investor-owned units cannot be registered.",
		LastVerified:          verified(2025, time.January),
	},
	"md-baltimore": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Primary residence requirement with a city license.",
		Details:               "Baltimore licenses short-term rentals at the host's primary residence and limits the number of rentals per host.",
		LastVerified:          verified(2024, time.October),
	},
	"md-ocean-city": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Rental license required; some neighborhoods have minimum stays.",
		Details:          "Ocean City licenses rental properties and collects room tax. Certain single-family districts impose minimum stays.",
		LastVerified:     verified(2024, time.December),
	},
	"me-portland": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Non-owner-occupied registrations capped at 400.",
		Details:          "Portland caps non-owner-occupied short-term rental registrations on the mainland and charges escalating fees for additional units.",
		LastVerified:     verified(2024, time.December),
	},
	"mi-detroit": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration and inspection required.",
		Details:          "Detroit's rental ordinance covers short-term rentals, requiring a certificate of compliance and city registration.",
		LastVerified:     verified(2024, time.October),
	},
	"mi-traverse-city": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Tourist rental licenses capped in residential districts.",
		Details:          "Traverse City does not issue new tourist rental licenses in residential districts. Commercial districts remain eligible.",
		LastVerified:     verified(2024, time.November),
	},
	"mn-duluth": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Vacation dwelling permits capped in residential zones.",
		Details:          "Duluth caps vacation dwelling unit permits in residential zones and requires an interim use permit and a local manager.",
		LastVerified:     verified(2024, time.October),
	},
	"mn-minneapolis": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "License and tax registration required.",
		Details:          "Minneapolis licenses short-term rentals, requires a named contact and collects lodging taxes.",
		LastVerified:     verified(2024, time.September),
	},
	"mo-branson": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Nightly rentals permitted in designated zones.",
		Details:          "Branson allows nightly rentals in zones designated for tourism and requires a business license and tourism tax.",
		LastVerified:     verified(2024, time.November),
	},
	"mo-kansas-city": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Non-owner-occupied rentals limited in residential zones.",
		Details:          "Kansas City permits owner-occupied short-term rentals in residential zones. Non-owner-occupied rentals are limited to commercial and mixed-use areas.",
		LastVerified:     verified(2024, time.December),
	},
	"mo-st-louis": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permit required with neighborhood notification.",
		Details:          "St. Louis requires short-term rental registration and enforces nuisance rules. No caps apply.",
		LastVerified:     verified(2024, time.September),
	},
	"ms-biloxi": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with city registration.",
		Details:          "Biloxi registers short-term rentals and requires compliance with parking and occupancy standards.",
		LastVerified:     verified(2024, time.October),
	},
	"mt-bozeman": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Non-owner-occupied whole-home rentals banned.",
		Details:          "Bozeman prohibits Type 3 non-owner-occupied short-term rentals and permits only owner-occupied types in residential zones.",
		LastVerified:     verified(2025, time.January),
	},
	"mt-whitefish": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Rentals limited to resort and commercial zones.",
		Details:          "Whitefish allows short-term rentals only in designated resort residential and commercial zones.",
		LastVerified:     verified(2024, time.October),
	},
	"nc-asheville": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		Summary:               "Whole-home rentals banned in residential zones; homestays only.",
		Details:               "Asheville prohibits whole-house short-term rentals in residential districts. Homestays require the owner to live on site and hold a permit.",
		LastVerified:          verified(2025, time.February),
	},
	"nc-charlotte": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "No STR-specific zoning restrictions.",
		Details:          "Charlotte has no short-term rental ordinance restricting zones. Operators collect occupancy tax.",
		LastVerified:     verified(2024, time.November),
	},
	"nc-kill-devil-hills": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Outer Banks vacation rentals widely permitted.",
		Details:          "Kill Devil Hills allows vacation rentals under North Carolina's Vacation Rental Act with registration and occupancy tax.",
		LastVerified:     verified(2024, time.November),
	},
	"nc-raleigh": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration required; whole-home rental spacing rules.",
		Details:          "Raleigh registers short-term rentals and applies spacing requirements to whole-home rentals in residential districts.",
		LastVerified:     verified(2024, time.December),
	},
	"nc-wilmington": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Lottery-based registration with spacing requirements.",
		Details:          "Wilmington uses a lottery and 400-foot spacing rule for whole-house rentals in residential zones and caps registrations in the historic district.",
		LastVerified:     verified(2024, time.December),
	},
	"nd-fargo": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "No STR-specific restrictions.",
		Details:          "Fargo has no dedicated short-term rental ordinance. Lodging tax applies.",
		LastVerified:     verified(2024, time.August),
	},
	"ne-omaha": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with lodging tax registration.",
		Details:          "Omaha permits short-term rentals with lodging tax registration and standard zoning compliance.",
		LastVerified:     verified(2024, time.August),
	},
	"nh-conway": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with state rooms and meals tax license.",
		Details:          "Conway allows short-term rentals. New Hampshire requires a meals and rooms tax license.",
		LastVerified:     verified(2024, time.September),
	},
	"nj-atlantic-city": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration and inspection required.",
		Details:          "Atlantic City licenses short-term rentals and requires a certificate of occupancy inspection.",
		LastVerified:     verified(2024, time.October),
	},
	"nj-jersey-city": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitHard,
		OwnerOccupiedRequired: true,
		MaxNightsPerYear:      models.Nights(60),
		Summary:               "Owner-occupied only; 60-night cap when owner absent.",
		Details:               "Jersey City limits short-term rentals to owner-occupied one- to four-family homes and caps stays without the owner present at 60 nights per year.",
		LastVerified:          verified(2025, time.January),
	},
	"nm-albuquerque": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with business registration.",
		Details:          "Albuquerque requires a business registration and lodgers' tax for short-term rentals.",
		LastVerified:     verified(2024, time.September),
	},
	"nm-santa-fe": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Non-owner-occupied permits capped citywide.",
		Details:          "Santa Fe caps non-owner-occupied short-term rental permits in residential zones at 1,000 and limits one permit per owner.",
		LastVerified:     verified(2024, time.December),
	},
	"nv-clark-county": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Strict separation rules and limited permits.",
		Details:          "Unincorporated Clark County requires 2,500-foot separation between rentals, an owner-attended or lottery permit and high fees.",
		LastVerified:     verified(2025, time.January),
	},
	"nv-las-vegas": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Owner-occupied preferred; 660-foot separation for others.",
		Details:          "Las Vegas requires special use permits for non-owner-occupied rentals with a 660-foot separation from other rentals.",
		LastVerified:     verified(2025, time.January),
	},
	"nv-reno": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permit and inspection required.",
		Details:          "Reno issues short-term rental permits with inspections, parking standards and a local responsible party.",
		LastVerified:     verified(2024, time.October),
	},
	"ny-buffalo": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration required with a city permit.",
		Details:          "Buffalo registers short-term rentals and collects occupancy tax through Erie County.",
		LastVerified:     verified(2024, time.November),
	},
	"ny-lake-placid": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Non-owner-occupied permits capped.",
		Details:          "Lake Placid and North Elba cap non-owner-occupied short-term rental permits in the village core and limit nights elsewhere.",
		LastVerified:     verified(2024, time.December),
	},
	"ny-new-york-city": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitVeryHard,
		OwnerOccupiedRequired: true,
		Summary:               "Host must be present; registration with the city required.",
		Details:               "Local Law 18 requires registration and limits short-term rentals to hosted stays of up to two guests in the host's own unit. Whole-unit rentals under 30 days are illegal.",
		LastVerified:          verified(2025, time.March),
	},
	"ny-saratoga-springs": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with registration.",
		Details:          "Saratoga Springs registers short-term rentals and enforces seasonal occupancy rules.",
		LastVerified:     verified(2024, time.September),
	},
	"oh-cincinnati": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Registration and excise tax required.",
		Details:          "Cincinnati registers short-term rentals and collects an excise tax. No caps apply.",
		LastVerified:     verified(2024, time.September),
	},
	"oh-cleveland": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with registration.",
		Details:          "Cleveland requires short-term rental registration and collects bed tax.",
		LastVerified:     verified(2024, time.September),
	},
	"oh-columbus": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "License required; no zoning caps.",
		Details:          "Columbus licenses short-term rentals and collects hotel-motel tax. No owner-occupancy requirement applies.",
		LastVerified:     verified(2024, time.October),
	},
	"ok-oklahoma-city": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Registration required.",
		Details:          "Oklahoma City registers short-term rentals and applies hotel tax.",
		LastVerified:     verified(2024, time.October),
	},
	"ok-tulsa": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with a short-term rental license.",
		Details:          "Tulsa licenses short-term rentals with a basic application and lodging tax.",
		LastVerified:     verified(2024, time.October),
	},
	"or-bend": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Spacing rule of 250 feet for whole-home rentals.",
		Details:          "Bend requires a permit for whole-home rentals in residential zones and enforces a 250-foot spacing rule, which effectively caps supply.",
		LastVerified:     verified(2025, time.January),
	},
	"or-cannon-beach": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Permits capped; waitlist for new licenses.",
		Details:          "Cannon Beach caps short-term rental permits in residential zones and maintains a waitlist.",
		LastVerified:     verified(2024, time.November),
	},
	"or-portland": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitHard,
		OwnerOccupiedRequired: true,
		Summary:               "Accessory short-term rentals at the primary residence only.",
		Details:               "Portland allows accessory short-term rentals only at the host's primary residence, occupied at least 270 days per year.",
		LastVerified:          verified(2025, time.January),
	},
	"pa-philadelphia": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Limited lodging operator license required.",
		Details:          "Philadelphia requires a limited lodging operator license and zoning approval for non-primary-residence rentals.",
		LastVerified:     verified(2024, time.December),
	},
	"pa-pittsburgh": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration required.",
		Details:          "Pittsburgh registers short-term rentals and requires rental permits and inspections.",
		LastVerified:     verified(2024, time.October),
	},
	"ri-newport": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration required; some zones limited.",
		Details:          "Newport registers short-term rentals with the state and city and restricts rentals in certain residential zones.",
		LastVerified:     verified(2024, time.October),
	},
	"sc-charleston": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitHard,
		OwnerOccupiedRequired: true,
		Summary:               "Owner-occupied rentals only in most residential areas.",
		Details:               "Charleston permits short-term rentals in most residential zones only when the owner lives on site. Commercial overlays allow other types.",
		LastVerified:          verified(2025, time.January),
	},
	"sc-hilton-head-island": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a town short-term rental permit.",
		Details:          "Hilton Head Island requires a short-term rental permit, a responsible party and occupancy standards.",
		LastVerified:     verified(2024, time.November),
	},
	"sc-myrtle-beach": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Rentals limited to designated zones.",
		Details:          "Myrtle Beach allows short-term rentals in designated resort and commercial zones but not in most single-family neighborhoods.",
		LastVerified:     verified(2024, time.November),
	},
	"sd-rapid-city": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Vacation home license required.",
		Details:          "Rapid City requires a vacation home establishment license and inspection.",
		LastVerified:     verified(2024, time.September),
	},
	"tn-chattanooga": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Non-owner-occupied rentals limited to overlay zones.",
		Details:          "Chattanooga limits non-owner-occupied short-term rentals to a downtown overlay. Other areas require owner occupancy or special approval.",
		LastVerified:     verified(2024, time.December),
	},
	"tn-gatlinburg": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Overnight rentals widely permitted in resort zones.",
		Details:          "Gatlinburg permits overnight rental units in most zones with a business license and inspection.",
		LastVerified:     verified(2025, time.February),
	},
	"tn-knoxville": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Owner-occupied rentals in residential zones.",
		Details:               "Knoxville permits owner-occupied short-term rentals in residential zones. Non-owner-occupied rentals are limited to specific districts.",
		LastVerified:          verified(2024, time.October),
	},
	"tn-memphis": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with registration.",
		Details:          "Memphis registers short-term rentals and collects hotel occupancy tax.",
		LastVerified:     verified(2024, time.September),
	},
	"tn-nashville": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Non-owner-occupied permits banned in most residential zones.",
		Details:          "Nashville does not issue new non-owner-occupied permits in residential zones. Owner-occupied permits and commercial-zone rentals remain available.",
		LastVerified:     verified(2025, time.February),
	},
	"tn-pigeon-forge": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Overnight rentals permitted with a license.",
		Details:          "Pigeon Forge licenses overnight rentals and collects tourism tax. No caps apply.",
		LastVerified:     verified(2025, time.January),
	},
	"tn-sevierville": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with business license.",
		Details:          "Sevierville permits short-term rentals with a business license and inspection.",
		LastVerified:     verified(2024, time.December),
	},
	"tx-austin": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Non-owner-occupied licenses limited in residential zones.",
		Details:          "Austin requires a short-term rental license. Non-owner-occupied rentals in residential zones are subject to density limits and platform-level enforcement.",
		LastVerified:     verified(2025, time.March),
	},
	"tx-corpus-christi": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted with hotel occupancy tax registration.",
		Details:          "Corpus Christi registers short-term rentals for hotel occupancy tax. No caps apply.",
		LastVerified:     verified(2024, time.October),
	},
	"tx-dallas": {
		LegalityStatus:   models.LegalityVaries,
		PermitDifficulty: models.PermitHard,
		Summary:          "Residential-zone ban tied up in litigation.",
		Details:          "Dallas adopted an ordinance banning short-term rentals in single-family zones; enforcement has been enjoined pending litigation, so status depends on the outcome.",
		LastVerified:     verified(2025, time.January),
	},
	"tx-el-paso": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with registration.",
		Details:          "El Paso registers short-term rentals and collects hotel occupancy tax.",
		LastVerified:     verified(2024, time.September),
	},
	"tx-fort-worth": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Prohibited in one- and two-family residential zones.",
		Details:          "Fort Worth does not allow short-term rentals in single-family and two-family districts. Multi-family and mixed-use zones are eligible.",
		LastVerified:     verified(2024, time.December),
	},
	"tx-fredericksburg": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted with a city short-term rental permit.",
		Details:          "Fredericksburg permits short-term rentals with a permit and inspection. The historic district has additional design rules.",
		LastVerified:     verified(2024, time.October),
	},
	"tx-galveston": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Registration with the Park Board.",
		Details:          "Galveston requires short-term rental registration with the Park Board of Trustees and collection of hotel occupancy tax.",
		LastVerified:     verified(2025, time.February),
	},
	"tx-houston": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Permitted; registration ordinance pending.",
		Details:          "Houston has no zoning code and permits short-term rentals. A registration ordinance with life-safety requirements is being phased in.",
		LastVerified:     verified(2025, time.January),
	},
	"tx-san-antonio": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		PermitCap:        true,
		Summary:          "Non-owner-occupied density cap per block face.",
		Details:          "San Antonio permits short-term rentals with a permit. Non-owner-occupied rentals are capped per block face.",
		LastVerified:     verified(2025, time.January),
	},
	"tx-south-padre-island": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Resort market; registration required.",
		Details:          "South Padre Island registers short-term rentals and collects hotel occupancy tax.",
		LastVerified:     verified(2024, time.November),
	},
	"ut-moab": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Moratorium on new overnight rentals outside designated zones.",
		Details:          "Moab and Grand County halted new overnight rental permits outside designated zones; existing licenses are grandfathered.",
		LastVerified:     verified(2024, time.December),
	},
	"ut-park-city": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Nightly rentals permitted in designated zones.",
		Details:          "Park City allows nightly rentals in designated zones with a business license and restricts them in certain residential neighborhoods.",
		LastVerified:     verified(2025, time.January),
	},
	"ut-salt-lake-city": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Prohibited in most residential zones.",
		Details:          "Salt Lake City prohibits rentals under 30 days in most residential zones. State law limits enforcement based solely on listings.",
		LastVerified:     verified(2024, time.November),
	},
	"ut-st-george": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permitted in designated overlay zones.",
		Details:          "St. George allows short-term rentals within designated overlay zones and resort developments.",
		LastVerified:     verified(2024, time.November),
	},
	"va-richmond": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Primary residence requirement.",
		Details:               "Richmond permits short-term rentals only at the operator's primary residence with a permit.",
		LastVerified:          verified(2024, time.October),
	},
	"va-virginia-beach": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		Summary:          "Permitted only in overlay districts such as Sandbridge.",
		Details:          "Virginia Beach limits short-term rentals to specific overlay districts and requires a conditional use permit elsewhere.",
		LastVerified:     verified(2025, time.January),
	},
	"vt-burlington": {
		LegalityStatus:        models.LegalityRestricted,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: true,
		Summary:               "Owner-occupied rentals only for new registrations.",
		Details:               "Burlington limits new short-term rental registrations to owner-occupied properties and requires a permit.",
		LastVerified:          verified(2024, time.October),
	},
	"wa-leavenworth": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitHard,
		PermitCap:        true,
		Summary:          "Permits capped with a waitlist.",
		Details:          "Leavenworth caps short-term rental permits in residential zones and maintains a waitlist.",
		LastVerified:     verified(2024, time.October),
	},
	"wa-seattle": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Up to two units per operator with a license.",
		Details:          "Seattle licenses short-term rental operators and limits each operator to their primary residence plus one additional unit.",
		LastVerified:     verified(2025, time.January),
	},
	"wa-spokane": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Permit required.",
		Details:          "Spokane issues short-term rental permits and requires a local contact.",
		LastVerified:     verified(2024, time.September),
	},
	"wi-milwaukee": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitModerate,
		Summary:          "Registration required.",
		Details:          "Milwaukee requires short-term rental registration and room tax collection.",
		LastVerified:     verified(2024, time.September),
	},
	"wi-wisconsin-dells": {
		LegalityStatus:   models.LegalityLegal,
		PermitDifficulty: models.PermitEasy,
		Summary:          "Tourist rooming house license required.",
		Details:          "Wisconsin Dells licenses tourist rooming houses under state rules. No caps apply.",
		LastVerified:     verified(2024, time.September),
	},
	"wy-jackson": {
		LegalityStatus:   models.LegalityRestricted,
		PermitDifficulty: models.PermitVeryHard,
		PermitCap:        true,
		Summary:          "Nightly rentals limited to lodging overlay zones.",
		Details:          "Jackson and Teton County allow short-term rentals only in designated lodging overlay and planned resort zones.",
		LastVerified:     verified(2025, time.January),
	},
}
