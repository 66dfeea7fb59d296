package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const banner = `This CLI program is a playable Othello game, in which dark (d) and light (l)
compete for space on an 8x8 grid. Flanking your opponent's discs between two
of yours flips them to your color. If a capturing move exists you must play
one; if none exists your turn passes. Dark always plays the first move.

Make your moves by entering '<row #> <column #>' with numbers [0-7].
Good luck!
`

var (
	movePattern = regexp.MustCompile(`^[0-7] [0-7]$`)
	sidePattern = regexp.MustCompile(`^[dl]$`)
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	experiment := flag.String("experiment", "", "Run an experiment instead of an interactive game: strength | cost")
	twoPlayer := flag.Bool("2p", false, "Two-player game without the AI")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", cfg.LogLevel, err)
		os.Exit(1)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	switch *experiment {
	case "":
		runInteractive(cfg, *twoPlayer)
	case "strength":
		experiments.RunDepthToStrength(cfg.ResultsDir)
	case "cost":
		experiments.RunDepthToCost(cfg.ResultsDir)
	default:
		fmt.Fprintf(os.Stderr, "unknown experiment %q\n", *experiment)
		os.Exit(1)
	}
}

func runInteractive(cfg *config.Config, twoPlayer bool) {
	fmt.Print(banner)
	in := bufio.NewReader(os.Stdin)

	var dark, light engine.Agent
	if twoPlayer {
		dark = &humanAgent{in: in}
		light = &humanAgent{in: in}
	} else {
		humanSide := promptSide(in)
		fmt.Printf("You have chosen to play as %s!\n\n", humanSide)

		ai := searcher.NewMinimax(searcher.WithDepth(cfg.Depth), searcher.WithMetrics())
		human := &humanAgent{in: in}
		if humanSide == game.Dark {
			dark, light = human, ai
		} else {
			dark, light = ai, human
		}
	}

	e := engine.Local(dark, light)
	winner, _, _ := e.Run()

	fmt.Println()
	fmt.Print(e.Board)
	fmt.Printf("Dark total: %d\n", e.Board.Score(game.Dark))
	fmt.Printf("Light total: %d\n", e.Board.Score(game.Light))
	if winner == game.Empty {
		fmt.Println("TIE GAME")
	} else {
		fmt.Printf("%s wins!\n", strings.ToUpper(winner.String()[:1])+winner.String()[1:])
	}
}

// promptSide loops until the user picks a valid side.
func promptSide(in *bufio.Reader) game.Cell {
	for {
		fmt.Print("Enter 'd' to play as dark or 'l' to play as light: ")
		input := readLine(in)
		if !sidePattern.MatchString(input) {
			fmt.Println("\nInvalid input: enter 'd' to be dark or 'l' to be light.")
			continue
		}
		if input == "d" {
			return game.Dark
		}
		return game.Light
	}
}

// humanAgent is the interactive shell around the core: it shows the position,
// parses and validates raw text input, and re-prompts on illegal moves. Only
// syntactically valid, legal moves ever reach the engine.
type humanAgent struct {
	in *bufio.Reader
}

func (h *humanAgent) FindMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric) {
	moves := board.LegalMoves(side)

	fmt.Println()
	fmt.Printf("Dark total: %d\n", board.Score(game.Dark))
	fmt.Printf("Light total: %d\n", board.Score(game.Light))
	fmt.Print(board)
	fmt.Printf("\n%s legal moves:\n", side)
	for _, m := range moves {
		fmt.Printf("%s  ", m)
	}
	fmt.Println()

	for {
		fmt.Printf("Your move (%s): ", side)
		input := readLine(h.in)

		if !movePattern.MatchString(input) {
			fmt.Println("\nInvalid input: moves are entered as '<row #> <column #>' with numbers [0-7].")
			fmt.Println("e.g. to place your disc at row #1, column #2 enter '1 2'.")
			fmt.Println()
			continue
		}

		// The pattern guarantees single digits at positions 0 and 2
		move := game.Move{Row: int(input[0] - '0'), Col: int(input[2] - '0')}
		if !board.IsCapturing(move.Row, move.Col, side) {
			fmt.Println("Illegal move! Try again.")
			continue
		}
		return move, metrics.SearchMetric{}
	}
}

func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println("\nNo more input, exiting.")
		os.Exit(1)
	}
	return strings.TrimSpace(line)
}
