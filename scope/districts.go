package scope

// DistrictDashboards configures which dashboards a district may open and
// which filter parameters are stamped onto every dashboard URL. Order is
// significant: the first URL is the district's landing dashboard.
type DistrictDashboards struct {
	District    string
	AllowedURLs []string
	URLFilters  map[string]string
}

// DefaultDistricts mirrors the dashboards published on the enterprise
// portal for each onboarded district.
var DefaultDistricts = []DistrictDashboards{
	{
		District: "bugesera",
		AllowedURLs: []string{
			"https://gh.space.gov.rw/portal/apps/dashboards/b3e95d36ef1d4b618974da7ee0a2b6df", // Detected Constructions
			"https://gh.space.gov.rw/portal/apps/dashboards/cec79918f7e4435a82f203acb25af4ca", // Inspection Performance
			"https://gh.space.gov.rw/portal/apps/dashboards/2fbe0208d1e4410da15ff26609b53e6f", // Revenue Compliance
			"https://gh.space.gov.rw/portal/apps/dashboards/3baea36026ac432f854c0e28b65884b4", // Permit Compliance
			"https://survey123.arcgis.com/share/994ae914aafb40008f3f48cf8e10c722?portalUrl=https://gh.space.gov.rw/portal", // Inspection Field Checklist
		},
		URLFilters: map[string]string{
			"District": "Bugesera",
		},
	},
	{
		District: "rwamagana",
		AllowedURLs: []string{
			"https://gh.space.gov.rw/portal/apps/dashboards/b3e95d36ef1d4b618974da7ee0a2b6df", // Detected Constructions
			"https://gh.space.gov.rw/portal/apps/dashboards/cec79918f7e4435a82f203acb25af4ca", // Inspection Performance
			"https://gh.space.gov.rw/portal/apps/dashboards/2fbe0208d1e4410da15ff26609b53e6f", // Revenue Compliance
			"https://gh.space.gov.rw/portal/apps/dashboards/3baea36026ac432f854c0e28b65884b4", // Permit Compliance
			"https://survey123.arcgis.com/share/994ae914aafb40008f3f48cf8e10c722?portalUrl=https://gh.space.gov.rw/portal", // Inspection Field Checklist
		},
		URLFilters: map[string]string{
			"District": "Rwamagana",
		},
	},
}
