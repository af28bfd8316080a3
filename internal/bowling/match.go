package bowling

import (
	"fmt"
	"sort"

	"github.com/coder/quartz"

	"github.com/lox/tenpin/internal/matchid"
)

// MaxPlayers is the largest roster a match accepts
const MaxPlayers = 6

// Standing is one player's position in a match
type Standing struct {
	Player   string
	Total    int
	Finished bool
	Leader   bool
}

// Match seats up to six players, rotates turns among them and tracks the
// player(s) tied for the highest total.
type Match struct {
	clock   quartz.Clock
	newID   func() string
	id      string
	roster  []string
	games   map[string]*Game
	turn    int
	leaders map[string]struct{}
	bus     eventBus
}

// Option configures a Match
type Option func(*Match)

// WithClock sets the clock used for event timestamps and match IDs
func WithClock(clock quartz.Clock) Option {
	return func(m *Match) {
		m.clock = clock
	}
}

// WithIDGenerator overrides how match IDs are generated
func WithIDGenerator(gen func() string) Option {
	return func(m *Match) {
		m.newID = gen
	}
}

// NewMatch creates an empty match
func NewMatch(opts ...Option) *Match {
	m := &Match{
		games:   make(map[string]*Game),
		roster:  make([]string, 0, MaxPlayers),
		leaders: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = quartz.NewReal()
	}
	if m.newID == nil {
		m.newID = matchid.NewGenerator(m.clock, nil).Generate
	}
	m.id = m.newID()
	return m
}

// ID returns the identifier of the current match
func (m *Match) ID() string { return m.id }

// Clear discards every player, game and leader so a new match can start.
// Subscriptions are kept.
func (m *Match) Clear() {
	previous := m.id
	m.roster = m.roster[:0]
	m.games = make(map[string]*Game)
	m.leaders = make(map[string]struct{})
	m.turn = 0
	m.id = m.newID()

	m.bus.publish(MatchClearedEvent{PreviousID: previous, MatchID: m.id, timestamp: m.clock.Now()})
}

// AddPlayer seats a new player at the end of the turn order
func (m *Match) AddPlayer(name string) error {
	if len(m.roster) >= MaxPlayers {
		return fmt.Errorf("%w: cannot add more than %d players", ErrCapacity, MaxPlayers)
	}
	if _, ok := m.games[name]; ok {
		return fmt.Errorf("%w: %q has already been added", ErrDuplicate, name)
	}

	m.games[name] = NewGame()
	m.roster = append(m.roster, name)

	m.bus.publish(PlayerAddedEvent{MatchID: m.id, Player: name, Seat: len(m.roster), timestamp: m.clock.Now()})
	return nil
}

// AddScore records the next ball for the player whose turn it is. It reports
// whether that player's game is finished.
func (m *Match) AddScore(pins int) (bool, error) {
	if len(m.roster) == 0 {
		return false, fmt.Errorf("%w: no players have been added to this match", ErrState)
	}

	player := m.roster[m.turn]
	game := m.games[player]

	frameComplete, err := game.AddScore(pins)
	if err != nil {
		return false, fmt.Errorf("%s: %w", player, err)
	}

	// Finished players are not skipped; their next turn returns ErrState
	if frameComplete {
		m.turn = (m.turn + 1) % len(m.roster)
	}

	m.updateLeaders(player, pins)

	if game.IsFinished() {
		m.bus.publish(GameFinishedEvent{
			MatchID:       m.id,
			Player:        player,
			Total:         game.TotalScore(),
			MatchFinished: m.IsFinished(),
			timestamp:     m.clock.Now(),
		})
	}
	return game.IsFinished(), nil
}

// updateLeaders compares the player who just bowled with one existing leader.
// Other players' totals are not rescanned, so a retroactive bonus can leave
// the leaders stale until that player bowls again.
func (m *Match) updateLeaders(player string, pins int) {
	score := m.games[player].TotalScore()

	_, leading := m.leaders[player]
	switch {
	case leading && pins > 0:
		m.leaders = map[string]struct{}{player: {}}

	case len(m.leaders) > 0:
		leadingScore := m.games[m.anyLeader()].TotalScore()
		switch {
		case score > leadingScore:
			m.leaders = map[string]struct{}{player: {}}
		case score == leadingScore:
			m.leaders[player] = struct{}{}
		default:
			return
		}

	default:
		m.leaders[player] = struct{}{}
	}

	m.bus.publish(LeadersChangedEvent{MatchID: m.id, Leaders: m.Leaders(), Score: score, timestamp: m.clock.Now()})
}

// anyLeader returns one leader; which one does not matter because leaders
// share a total
func (m *Match) anyLeader() string {
	for name := range m.leaders {
		return name
	}
	return ""
}

// Frames returns snapshots of a player's ten frames
func (m *Match) Frames(player string) ([]FrameSnapshot, error) {
	g, err := m.Game(player)
	if err != nil {
		return nil, err
	}
	return g.Snapshots(), nil
}

// TotalScore returns a player's running total
func (m *Match) TotalScore(player string) (int, error) {
	g, err := m.Game(player)
	if err != nil {
		return 0, err
	}
	return g.TotalScore(), nil
}

// Game returns a player's game
func (m *Match) Game(player string) (*Game, error) {
	g, ok := m.games[player]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	return g, nil
}

// Leaders returns the players tied for the lead, in turn order
func (m *Match) Leaders() []string {
	leaders := make([]string, 0, len(m.leaders))
	for _, name := range m.roster {
		if _, ok := m.leaders[name]; ok {
			leaders = append(leaders, name)
		}
	}
	return leaders
}

// IsLeader reports whether player is one of the current leaders
func (m *Match) IsLeader(player string) bool {
	_, ok := m.leaders[player]
	return ok
}

// IsFinished reports whether every player's game is finished. A match with no
// players is not finished.
func (m *Match) IsFinished() bool {
	if len(m.roster) == 0 {
		return false
	}
	for _, g := range m.games {
		if !g.IsFinished() {
			return false
		}
	}
	return true
}

// Players returns the roster in turn order
func (m *Match) Players() []string {
	return append([]string(nil), m.roster...)
}

// CurrentPlayer returns the player whose turn it is
func (m *Match) CurrentPlayer() (string, bool) {
	if len(m.roster) == 0 {
		return "", false
	}
	return m.roster[m.turn], true
}

// Standings returns every player by total, highest first, with turn order
// breaking ties
func (m *Match) Standings() []Standing {
	standings := make([]Standing, len(m.roster))
	for i, name := range m.roster {
		g := m.games[name]
		standings[i] = Standing{
			Player:   name,
			Total:    g.TotalScore(),
			Finished: g.IsFinished(),
			Leader:   m.IsLeader(name),
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})
	return standings
}

// Subscribe registers a payload-free listener fired for every match event
func (m *Match) Subscribe(l Listener) {
	m.bus.listen(l)
}

// SubscribeEvents registers a subscriber for typed match events
func (m *Match) SubscribeEvents(s EventSubscriber) {
	m.bus.subscribe(s)
}

// SubscribeFrame registers a listener on one of a player's frames, by
// zero-based index
func (m *Match) SubscribeFrame(player string, index int, l Listener) error {
	g, err := m.Game(player)
	if err != nil {
		return err
	}
	f, err := g.Frame(index)
	if err != nil {
		return err
	}
	f.Subscribe(l)
	return nil
}
