package prono

import "slices"

// TeamCode is a canonical three-letter NBA franchise code.
type TeamCode string

type teamAliases struct {
	Code    TeamCode
	Aliases []string
}

// Declaration order matters: ResolveTeam returns the first team whose
// alias set contains the token, so a token shared by two teams always
// resolves to the earlier entry.
var teams = []teamAliases{
	{"ATL", []string{"atl", "atlanta", "hawks"}},
	{"BOS", []string{"bos", "boston", "celtics"}},
	{"BKN", []string{"bkn", "brooklyn", "nets"}},
	{"CLE", []string{"cle", "cleveland", "cavaliers", "cavs"}},
	{"CHA", []string{"cha", "charlotte", "hornets"}},
	{"CHI", []string{"chi", "chicago", "bulls"}},
	{"DAL", []string{"dal", "dallas", "mavericks", "mavs"}},
	{"DEN", []string{"den", "denver", "nuggets"}},
	{"DET", []string{"det", "detroit", "pistons"}},
	{"GSW", []string{"gsw", "golden", "state", "warriors"}},
	{"HOU", []string{"hou", "houston", "rockets"}},
	{"IND", []string{"ind", "indiana", "pacers"}},
	{"LAC", []string{"lac", "clippers"}},
	{"LAL", []string{"lal", "lakers"}},
	{"MEM", []string{"mem", "memphis", "grizzlies"}},
	{"MIA", []string{"mia", "miami", "heat"}},
	{"MIL", []string{"mil", "milwaukee", "bucks"}},
	{"MIN", []string{"min", "minnesota", "timberwolves", "wolves"}},
	{"NOP", []string{"nop", "orleans", "pelicans", "no", "nola", "pels"}},
	{"NYK", []string{"nyk", "york", "knicks", "nyc", "ny"}},
	{"OKC", []string{"okc", "oklahoma", "thunder"}},
	{"ORL", []string{"orl", "orlando", "magic"}},
	{"PHI", []string{"phi", "philadelphia", "sixers"}},
	{"PHX", []string{"phx", "phoenix", "suns", "pho"}},
	{"POR", []string{"por", "portland", "trailblazers", "blazers"}},
	{"SAC", []string{"sac", "sacramento", "kings"}},
	{"SAS", []string{"sas", "san", "antonio", "spurs"}},
	{"TOR", []string{"tor", "toronto", "raptors"}},
	{"UTA", []string{"uta", "utah", "jazz"}},
	{"WAS", []string{"was", "washington", "wizards"}},
}

// ResolveTeam looks up a single lowercase token against every team's
// alias set. Absence is not an error, most words are not team names.
func ResolveTeam(word string) (TeamCode, bool) {
	return resolveTeam(word, teams)
}

func resolveTeam(word string, table []teamAliases) (TeamCode, bool) {
	for _, t := range table {
		if slices.Contains(t.Aliases, word) {
			return t.Code, true
		}
	}
	return "", false
}
