package models

import "strings"

// GeoLocation holds the free-text address plus administrative fields.
// For flat-string source records the administrative fields come from
// InferLocation and are best-effort, not geocoding.
type GeoLocation struct {
	Address  string `json:"address"`
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city"`
	Village  string `json:"village"`
	Pincode  string `json:"pincode,omitempty"`
}

// UnknownState is the fallback when no place-name rule matches.
const UnknownState = "Unknown"

var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar",
	"Chhattisgarh", "Goa", "Gujarat", "Haryana", "Himachal Pradesh",
	"Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra",
	"Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi",
	"Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
	UnknownState,
}

var districtsByState = map[string][]string{
	"Maharashtra":       {"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad"},
	"Delhi":             {"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "South Delhi", "West Delhi"},
	"Karnataka":         {"Bangalore Urban", "Mysore", "Hubli-Dharwad", "Mangalore", "Belgaum"},
	"Tamil Nadu":        {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"Uttar Pradesh":     {"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut"},
	"Andhra Pradesh":    {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore"},
	"Arunachal Pradesh": {"Itanagar", "Pasighat", "Tawang"},
	"Assam":             {"Guwahati", "Silchar", "Dibrugarh"},
	"Bihar":             {"Patna", "Gaya", "Muzaffarpur"},
	"Chhattisgarh":      {"Raipur", "Bhilai", "Bilaspur"},
	"Goa":               {"North Goa", "South Goa"},
	"Gujarat":           {"Ahmedabad", "Surat", "Vadodara"},
	"Haryana":           {"Gurgaon", "Faridabad", "Rohtak"},
	"Himachal Pradesh":  {"Shimla", "Mandi", "Dharamshala"},
	"Jharkhand":         {"Ranchi", "Jamshedpur", "Dhanbad"},
	"Kerala":            {"Thiruvananthapuram", "Kochi", "Kozhikode"},
	"Madhya Pradesh":    {"Bhopal", "Indore", "Jabalpur"},
	"Manipur":           {"Imphal East", "Imphal West", "Thoubal"},
	"Meghalaya":         {"East Khasi Hills", "West Khasi Hills", "Jaintia Hills"},
	"Mizoram":           {"Aizawl", "Lunglei", "Champhai"},
	"Nagaland":          {"Kohima", "Dimapur", "Mokokchung"},
	"Odisha":            {"Bhubaneswar", "Cuttack", "Rourkela"},
	"Punjab":            {"Ludhiana", "Amritsar", "Jalandhar"},
	"Rajasthan":         {"Jaipur", "Jodhpur", "Udaipur"},
	"Sikkim":            {"East Sikkim", "West Sikkim", "North Sikkim"},
	"Telangana":         {"Hyderabad", "Warangal", "Nizamabad"},
	"Tripura":           {"West Tripura", "South Tripura", "North Tripura"},
	"Uttarakhand":       {"Dehradun", "Haridwar", "Nainital"},
	"West Bengal":       {"Kolkata", "Howrah", "Durgapur"},
	"Andaman and Nicobar Islands":              {"South Andaman", "North and Middle Andaman", "Nicobar"},
	"Chandigarh":                               {"Chandigarh"},
	"Dadra and Nagar Haveli and Daman and Diu": {"Dadra and Nagar Haveli", "Daman", "Diu"},
	"Jammu and Kashmir":                        {"Srinagar", "Jammu", "Anantnag"},
	"Ladakh":                                   {"Leh", "Kargil"},
	"Lakshadweep":                              {"Kavaratti", "Agatti", "Amini"},
	"Puducherry":                               {"Puducherry", "Karaikal", "Mahe", "Yanam"},
	UnknownState:                               {UnknownState},
}

var citiesByDistrict = map[string][]string{
	"Mumbai":          {"Mumbai City", "Mumbai Suburban", "Thane", "Navi Mumbai"},
	"Pune":            {"Pune City", "Pimpri-Chinchwad", "Lonavala"},
	"Bangalore Urban": {"Bengaluru", "Electronic City", "Whitefield"},
	"Chennai":         {"Chennai Central", "T. Nagar", "Adyar", "Anna Nagar"},
	"Lucknow":         {"Hazratganj", "Gomti Nagar", "Aliganj"},
	UnknownState:      {UnknownState},
}

var villagesByDistrict = map[string][]string{
	"Pune":            {"Velhe", "Bhor", "Maval", "Mulshi"},
	"Bangalore Urban": {"Hesaraghatta", "Attibele", "Jigani"},
	"Chennai":         {"Muttukadu", "Kovalam", "Sholinganallur"},
	UnknownState:      {UnknownState},
}

// DistrictsForState returns the district choices consistent with the
// selected state; empty state means every district.
func DistrictsForState(state string) []string {
	if state == "" || state == "all" {
		var all []string
		for _, s := range IndianStates {
			all = append(all, districtsByState[s]...)
		}
		return all
	}
	return districtsByState[state]
}

// CitiesForDistrict returns the city choices for a district; empty
// district means every city. Districts without an entry have no
// city-level data.
func CitiesForDistrict(district string) []string {
	if district == "" || district == "all" {
		var all []string
		for _, s := range IndianStates {
			for _, d := range districtsByState[s] {
				all = append(all, citiesByDistrict[d]...)
			}
		}
		return all
	}
	return citiesByDistrict[district]
}

// VillagesForDistrict returns the village choices for a district;
// empty district means every village.
func VillagesForDistrict(district string) []string {
	if district == "" || district == "all" {
		var all []string
		for _, s := range IndianStates {
			for _, d := range districtsByState[s] {
				all = append(all, villagesByDistrict[d]...)
			}
		}
		return all
	}
	return villagesByDistrict[district]
}

// placeRule maps a place-name substring in a free-text address to an
// administrative triple. First match wins, so more specific names
// (Baramati) come before the broader ones sharing a district.
type placeRule struct {
	substr   string
	state    string
	district string
	city     string
}

// Coarse on purpose: a lookup table, not geocoding. Extend by adding
// rows.
var placeRules = []placeRule{
	{"Baramati", "Maharashtra", "Pune", "Baramati"},
	{"Mumbai", "Maharashtra", "Mumbai", "Mumbai City"},
	{"Pune", "Maharashtra", "Pune", "Pune"},
	{"Nagpur", "Maharashtra", "Nagpur", "Nagpur"},
	{"New Delhi", "Delhi", "New Delhi", "New Delhi"},
	{"Delhi", "Delhi", "Central Delhi", "Delhi"},
	{"Bengaluru", "Karnataka", "Bangalore Urban", "Bengaluru"},
	{"Bangalore", "Karnataka", "Bangalore Urban", "Bengaluru"},
	{"Chennai", "Tamil Nadu", "Chennai", "Chennai Central"},
	{"Hyderabad", "Telangana", "Hyderabad", "Hyderabad"},
	{"Kolkata", "West Bengal", "Kolkata", "Kolkata"},
	{"Lucknow", "Uttar Pradesh", "Lucknow", "Hazratganj"},
	{"Jaipur", "Rajasthan", "Jaipur", "Jaipur"},
	{"Ahmedabad", "Gujarat", "Ahmedabad", "Ahmedabad"},
	{"Patna", "Bihar", "Patna", "Patna"},
}

// InferLocation scans a free-text address for known place names and
// returns the administrative fields for the first rule that matches.
// No match yields state "Unknown" and empty lower levels. Best-effort
// only; may be wrong or empty.
func InferLocation(address string) GeoLocation {
	loc := GeoLocation{Address: address, State: UnknownState}
	lower := strings.ToLower(address)
	for _, r := range placeRules {
		if strings.Contains(lower, strings.ToLower(r.substr)) {
			loc.State = r.state
			loc.District = r.district
			loc.City = r.city
			return loc
		}
	}
	return loc
}
