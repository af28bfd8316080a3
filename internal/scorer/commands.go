package scorer

import (
	"fmt"
	"strings"

	"github.com/lox/tenpin/internal/bowling"
)

// Result describes the outcome of a text command
type Result struct {
	Command  string
	Message  string
	Rolled   int
	Finished bool
	Winner   string
	Quit     bool
}

// Help lists the commands Execute understands
const Help = `Commands:
  add <name>        add a player (before the first ball)
  <pins>            bowl for the current player: 0-10, X, /, -
  roll <pins...>    bowl several balls, e.g. "roll X 7/ 9-"
  new               start a new match (new! discards one in progress)
  quit              exit (quit! leaves a match in progress)`

// Execute runs one line of input. Anything that is not a command is read as
// rolls for the current player.
func (s *Session) Execute(line string) (Result, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Result{}, fmt.Errorf("%w: empty command", bowling.ErrValidation)
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "add", "a":
		return s.handleAdd(args)
	case "roll", "r":
		return s.handleRoll(cmd, strings.Join(args, " "))
	case "new", "new!", "n", "n!":
		return s.handleNew(forced(cmd, args))
	case "help", "?":
		return Result{Command: "help", Message: Help}, nil
	case "quit", "quit!", "q", "q!", "exit", "exit!":
		if err := s.Quit(forced(cmd, args)); err != nil {
			return Result{Command: "quit"}, err
		}
		return Result{Command: "quit", Quit: true}, nil
	default:
		return s.handleRoll("roll", line)
	}
}

// forced reports whether a command was confirmed with a trailing "!", either
// attached ("new!") or as its own word ("new !")
func forced(cmd string, args []string) bool {
	return strings.HasSuffix(cmd, "!") || (len(args) > 0 && args[0] == "!")
}

func (s *Session) handleAdd(args []string) (Result, error) {
	name := strings.Join(args, " ")
	if err := s.AddPlayer(name); err != nil {
		return Result{Command: "add"}, err
	}
	return Result{Command: "add", Message: fmt.Sprintf("%s joins the match", strings.TrimSpace(name))}, nil
}

func (s *Session) handleRoll(cmd, input string) (Result, error) {
	rolls, err := bowling.ParseRolls(input)
	if err != nil {
		return Result{Command: cmd}, err
	}
	if len(rolls) == 0 {
		return Result{Command: cmd}, fmt.Errorf("%w: no pins given", bowling.ErrValidation)
	}

	n, err := s.BowlAll(rolls)
	res := Result{Command: cmd, Rolled: n, Finished: s.match.IsFinished()}
	if winner, ok := s.Winner(); ok {
		res.Winner = winner
	}
	if err != nil {
		return res, err
	}

	res.Message = s.describeTurn()
	return res, nil
}

func (s *Session) handleNew(force bool) (Result, error) {
	if err := s.NewMatch(force); err != nil {
		return Result{Command: "new"}, err
	}
	return Result{Command: "new", Message: "New match started, add players to begin"}, nil
}

// describeTurn reports whose turn it is after a ball
func (s *Session) describeTurn() string {
	if s.match.IsFinished() {
		return "Match finished"
	}
	player, ok := s.match.CurrentPlayer()
	if !ok {
		return ""
	}
	game, err := s.match.Game(player)
	if err != nil || game.IsFinished() {
		return ""
	}
	return fmt.Sprintf("%s to bowl, frame %d", player, game.CurrentFrame())
}
