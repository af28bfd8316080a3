package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"strings"
)

// Profile describes how well a simulated bowler bowls
type Profile struct {
	Name string
	// StrikeRate is the chance of clearing a freshly set rack
	StrikeRate float64
	// SpareRate is the chance of clearing the pins left by a first ball
	SpareRate float64
	// Accuracy is the chance of knocking each standing pin when the rack is
	// not cleared
	Accuracy float64
}

var profiles = map[string]Profile{
	"gutter": {Name: "gutter"},
	"novice": {Name: "novice", StrikeRate: 0.05, SpareRate: 0.10, Accuracy: 0.45},
	"league": {Name: "league", StrikeRate: 0.25, SpareRate: 0.45, Accuracy: 0.70},
	"pro":    {Name: "pro", StrikeRate: 0.60, SpareRate: 0.75, Accuracy: 0.85},
}

// DefaultProfile is used when no profile is named
const DefaultProfile = "league"

// LookupProfile returns the named profile
func LookupProfile(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (want one of %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames lists the available profiles
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pins picks how many of the standing pins a ball knocks down
func (p Profile) Pins(rng *rand.Rand, standing int, fresh bool) int {
	rate := p.SpareRate
	if fresh {
		rate = p.StrikeRate
	}
	if rng.Float64() < rate {
		return standing
	}

	knocked := 0
	for i := 0; i < standing; i++ {
		if rng.Float64() < p.Accuracy {
			knocked++
		}
	}
	// Clearing the rack is decided above
	if knocked == standing {
		knocked--
	}
	return knocked
}
