package scope

// User is an entry in the static portal user directory. Usernames follow
// the name_district convention used by the field teams.
type User struct {
	Username string
	District string
	FullName string
}

// DefaultUsers is the directory of known portal accounts.
var DefaultUsers = []User{
	// Bugesera district
	{Username: "jeannette_bugesera", District: "bugesera", FullName: "Jeannette"},
	{Username: "claudine_bugesera", District: "bugesera", FullName: "Claudine"},
	{Username: "ambaza_bugesera", District: "bugesera", FullName: "Ambaza"},
	{Username: "imanizabayoj_bugesera", District: "bugesera", FullName: "Imanizabayoj"},
	{Username: "twizeyimana_bugesera", District: "bugesera", FullName: "Twizeyimana"},
	{Username: "ntawuhiga_bugesera", District: "bugesera", FullName: "Ntawuhiga"},
	{Username: "jeanpierre_bugesera", District: "bugesera", FullName: "Jean Pierre"},
	{Username: "munyangoga_bugesera", District: "bugesera", FullName: "Munyangoga"},
	{Username: "theobard_bugesera", District: "bugesera", FullName: "Theobard"},
	{Username: "yannick_bugesera", District: "bugesera", FullName: "Yannick"},
	{Username: "rhoda_bugesera", District: "bugesera", FullName: "Rhoda"},
	{Username: "jonas_bugesera", District: "bugesera", FullName: "Jonas"},
	{Username: "christine_bugesera", District: "bugesera", FullName: "Christine"},
	{Username: "kabano_bugesera", District: "bugesera", FullName: "Kabano"},

	// Rwamagana district
	{Username: "wenceslas_rwamagana", District: "rwamagana", FullName: "Wenceslas"},
	{Username: "narcisse_rwamagana", District: "rwamagana", FullName: "Narcisse"},
	{Username: "bestsion_rwamagana", District: "rwamagana", FullName: "Bestsion"},
	{Username: "gdathos_rwamagana", District: "rwamagana", FullName: "Gdathos"},
	{Username: "baptist_rwamagana", District: "rwamagana", FullName: "Baptist"},
	{Username: "mukeshimana_rwamagana", District: "rwamagana", FullName: "Mukeshimana"},
	{Username: "jeanclaude_rwamagana", District: "rwamagana", FullName: "Jean Claude"},
	{Username: "uwaconsobi_rwamagana", District: "rwamagana", FullName: "Uwaconsobi"},
	{Username: "habahayo_rwamagana", District: "rwamagana", FullName: "Habahayo"},
	{Username: "nsabimana_rwamagana", District: "rwamagana", FullName: "Nsabimana"},
	{Username: "livingstone_rwamagana", District: "rwamagana", FullName: "Livingstone"},
	{Username: "fmugira_rwamagana", District: "rwamagana", FullName: "Fmugira"},
	{Username: "bizimana_rwamagana", District: "rwamagana", FullName: "Bizimana"},
	{Username: "speratus_rwamagana", District: "rwamagana", FullName: "Speratus"},
	{Username: "gahunzire_rwamagana", District: "rwamagana", FullName: "Gahunzire"},
}
