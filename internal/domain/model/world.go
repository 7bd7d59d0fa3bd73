package model

import "sort"

// League is a competition in a single country.
type League struct {
	ID      string `koanf:"id"`
	Name    string `koanf:"name"`
	Country string `koanf:"country"`
	Tier    int    `koanf:"tier"`
}

// Club is a potential employer.
type Club struct {
	ID         string         `koanf:"id"`
	Name       string         `koanf:"name"`
	LeagueID   string         `koanf:"league_id"`
	Reputation float64        `koanf:"reputation"`
	Philosophy ClubPhilosophy `koanf:"philosophy"`
}

// Player is an observable footballer.
type Player struct {
	ID               string         `koanf:"id"`
	Name             string         `koanf:"name"`
	Age              int            `koanf:"age"`
	Nationality      string         `koanf:"nationality"`
	ClubID           string         `koanf:"club_id"`
	CurrentAbility   int            `koanf:"current_ability"`   // 0–200
	PotentialAbility int            `koanf:"potential_ability"` // 0–200
	Attributes       map[string]int `koanf:"attributes"`        // 1–20
}

// World is the read-only snapshot of leagues, clubs and players the engine
// scouts against. It is produced by world generation outside this module.
type World struct {
	Leagues []League `koanf:"leagues"`
	Clubs   []Club   `koanf:"clubs"`
	Players []Player `koanf:"players"`
}

// PlayerByID returns the player with the given id.
func (w World) PlayerByID(id string) (Player, bool) {
	for _, p := range w.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// ClubByID returns the club with the given id.
func (w World) ClubByID(id string) (Club, bool) {
	for _, c := range w.Clubs {
		if c.ID == id {
			return c, true
		}
	}
	return Club{}, false
}

// PlayerCountries maps every player id to the country of the league the
// player's club plays in, falling back to the player's nationality.
func (w World) PlayerCountries() map[string]string {
	leagueCountry := make(map[string]string, len(w.Leagues))
	for _, l := range w.Leagues {
		leagueCountry[l.ID] = l.Country
	}
	clubCountry := make(map[string]string, len(w.Clubs))
	for _, c := range w.Clubs {
		if country, ok := leagueCountry[c.LeagueID]; ok {
			clubCountry[c.ID] = country
		}
	}
	out := make(map[string]string, len(w.Players))
	for _, p := range w.Players {
		if country, ok := clubCountry[p.ClubID]; ok {
			out[p.ID] = country
			continue
		}
		if p.Nationality != "" {
			out[p.ID] = p.Nationality
		}
	}
	return out
}

// SortedAttributeNames returns a player's attribute names in lexical order.
func (p Player) SortedAttributeNames() []string {
	names := make([]string, 0, len(p.Attributes))
	for name := range p.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
