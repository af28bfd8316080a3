package simulator

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
)

// Config holds configuration for a simulated match
type Config struct {
	Players int
	Names   []string
	Seed    int64
	Profile string
	Logger  *log.Logger
}

// Result summarises a simulated match
type Result struct {
	MatchID      string
	Profile      string
	Seed         int64
	Standings    []bowling.Standing
	Winners      []string
	Announcement string
	Balls        int
	Frames       map[string][]bowling.FrameSnapshot
}

// Simulator bowls a full match with computer players
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run bowls every player's game to completion through a scorer session
func (s *Simulator) Run() (*Result, error) {
	profile, err := LookupProfile(s.config.Profile)
	if err != nil {
		return nil, err
	}

	logger := s.config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger = logger.WithPrefix("simulator")

	names, err := s.playerNames()
	if err != nil {
		return nil, err
	}

	rng := newRand(s.config.Seed)
	session := scorer.NewSession(logger)
	match := session.Match()
	for _, name := range names {
		if err := session.AddPlayer(name); err != nil {
			return nil, fmt.Errorf("seating %q: %w", name, err)
		}
	}

	logger.Info("Simulating match", "match", match.ID(), "players", len(names), "profile", profile.Name, "seed", s.config.Seed)

	result := &Result{MatchID: match.ID(), Profile: profile.Name, Seed: s.config.Seed}
	for !match.IsFinished() {
		player, _ := match.CurrentPlayer()
		pins, err := nextBall(match, player, profile, rng)
		if err != nil {
			return nil, err
		}
		if _, err := session.Bowl(pins); err != nil {
			// The simulator only picks legal pin counts
			return nil, fmt.Errorf("ball %d for %s: %w", result.Balls+1, player, err)
		}
		result.Balls++
	}

	result.Standings = match.Standings()
	result.Winners = match.Leaders()
	result.Announcement, _ = session.Winner()
	result.Frames = make(map[string][]bowling.FrameSnapshot, len(names))
	for _, name := range names {
		frames, err := match.Frames(name)
		if err != nil {
			return nil, err
		}
		result.Frames[name] = frames
	}

	logger.Info("Match complete", "match", match.ID(), "winners", result.Winners, "balls", result.Balls)
	return result, nil
}

// nextBall picks the pins for the player's next ball from the rack their
// current frame leaves standing
func nextBall(match *bowling.Match, player string, profile Profile, rng *rand.Rand) (int, error) {
	game, err := match.Game(player)
	if err != nil {
		return 0, err
	}
	frame, err := game.Frame(game.CurrentFrame() - 1)
	if err != nil {
		return 0, err
	}
	standing, fresh := frame.Snapshot().PinsStanding()
	return profile.Pins(rng, standing, fresh), nil
}

// playerNames returns the configured names, topped up with generated first
// names until there are enough players
func (s *Simulator) playerNames() ([]string, error) {
	count := s.config.Players
	if count == 0 {
		count = len(s.config.Names)
	}
	if count < 1 || count > bowling.MaxPlayers {
		return nil, fmt.Errorf("players must be between 1 and %d, got %d", bowling.MaxPlayers, count)
	}
	if len(s.config.Names) > count {
		return nil, fmt.Errorf("%d names given for %d players", len(s.config.Names), count)
	}

	names := append([]string(nil), s.config.Names...)
	seen := make(map[string]bool, count)
	for _, n := range names {
		seen[n] = true
	}

	faker := gofakeit.New(uint64(s.config.Seed))
	for attempts := 0; len(names) < count; attempts++ {
		name := faker.FirstName()
		if attempts >= 100 {
			name = fmt.Sprintf("Bowler %d", len(names)+1)
		}
		if seen[name] || len([]rune(name)) > scorer.MaxNameLength {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// RunSimulation is a convenience wrapper around New and Run
func RunSimulation(players int, profile string, seed int64, logger *log.Logger) (*Result, error) {
	return New(Config{Players: players, Profile: profile, Seed: seed, Logger: logger}).Run()
}

// PrintSummary writes final standings and the winners' announcement
func PrintSummary(w io.Writer, result *Result) error {
	if result == nil {
		return errors.New("no result to summarise")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Match %s (%s profile, seed %d, %d balls)\n", result.MatchID, result.Profile, result.Seed, result.Balls)
	for i, st := range result.Standings {
		marker := " "
		if st.Leader {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %d. %-10s %3d\n", marker, i+1, st.Player, st.Total)
	}
	if result.Announcement != "" {
		b.WriteString(result.Announcement)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// newRand returns a PCG generator whose two seeds are derived from one int64,
// so equal seeds replay the same match
func newRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u^0x9e3779b97f4a7c15)))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
