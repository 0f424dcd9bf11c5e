// Command simulate runs one complete game from flags and prints the
// commit-reveal hash up front, then the box score and final result
// (spec §6, §8 scenario 1).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/proofplay/gridiron/internal/config"
	"github.com/proofplay/gridiron/internal/engine"
	"github.com/proofplay/gridiron/internal/fixtures"
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/stats"
	"github.com/proofplay/gridiron/internal/telemetry"
)

func main() {
	serverSeed := flag.String("server-seed", "", "server seed, hex-encoded (generated if omitted)")
	clientSeed := flag.String("client-seed", "", "client seed, hex-encoded (generated if omitted)")
	gameType := flag.String("game-type", string(model.GameRegular), "regular|wild_card|divisional|conference_championship|super_bowl")
	home := flag.String("home", "Home Team", "home team name")
	away := flag.String("away", "Away Team", "away team name")
	homeRating := flag.Int("home-rating", 85, "home team overall rating, 70-99")
	awayRating := flag.Int("away-rating", 85, "away team overall rating, 70-99")
	flag.Parse()

	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	color := isatty.IsTerminal(os.Stdout.Fd())

	in := engine.Input{
		HomeTeam:   fixtures.Team("HOME", *home, *homeRating, model.StyleBalanced),
		AwayTeam:   fixtures.Team("AWAY", *away, *awayRating, model.StyleBalanced),
		HomeRoster: fixtures.Roster("H", *homeRating),
		AwayRoster: fixtures.Roster("A", *awayRating),
		GameType:   model.GameType(*gameType),
		ServerSeed: *serverSeed,
		ClientSeed: *clientSeed,
	}

	// Resolve seeds before the run so the commit-reveal hash can be
	// published up front, the way a real provably-fair game would.
	if in.ServerSeed == "" {
		s, err := rng.GenerateServerSeed()
		if err != nil {
			telemetry.Errorf("generate server seed: %v", err)
			os.Exit(1)
		}
		in.ServerSeed = s
	}
	if in.ClientSeed == "" {
		s, err := rng.GenerateClientSeed()
		if err != nil {
			telemetry.Errorf("generate client seed: %v", err)
			os.Exit(1)
		}
		in.ClientSeed = s
	}
	fmt.Printf("server seed hash (commit): %s\n", rng.HashServerSeed(in.ServerSeed))
	fmt.Printf("client seed: %s\n", in.ClientSeed)

	telemetry.Infof("Starting simulation: %s vs %s (%s)", in.HomeTeam.Name, in.AwayTeam.Name, in.GameType)

	game, err := engine.Simulate(in)
	if err != nil {
		telemetry.Errorf("simulate: %v", err)
		os.Exit(1)
	}
	telemetry.Metrics.GamesSimulated.Inc()
	telemetry.Metrics.EventsEmitted.Add(int64(len(game.Events)))

	telemetry.Infof("Finished: %s %d - %s %d (nonce=%d, plays=%d)",
		in.HomeTeam.Name, game.FinalScore.Home, in.AwayTeam.Name, game.FinalScore.Away,
		game.Nonce, game.TotalPlays)

	printSummary(game, color)

	fmt.Println()
	fmt.Printf("revealed server seed (for verification): %s\n", game.ServerSeed)
}

func printSummary(game model.SimulatedGame, color bool) {
	scoreLine := fmt.Sprintf("%s %d - %d %s", game.Home.Name, game.FinalScore.Home, game.FinalScore.Away, game.Away.Name)
	if color {
		scoreLine = "\033[1m" + scoreLine + "\033[0m"
	}
	fmt.Println()
	fmt.Println(scoreLine)
	fmt.Printf("total plays: %d   drives: %d\n", game.TotalPlays, len(game.Drives))
	fmt.Printf("MVP: %s (%s) score=%.1f\n", game.MVP.Player.ID, game.MVP.Side, game.MVP.Score)

	box := game.BoxScore
	fmt.Printf("%-18s %8s %8s\n", "", game.Home.Abbreviation, game.Away.Abbreviation)
	fmt.Printf("%-18s %8s %8s\n", "Total yards", stats.FormatYards(box.Home.TotalYards), stats.FormatYards(box.Away.TotalYards))
	fmt.Printf("%-18s %8d %8d\n", "First downs", box.Home.FirstDowns, box.Away.FirstDowns)
	fmt.Printf("%-18s %8d %8d\n", "Turnovers", box.Home.Turnovers, box.Away.Turnovers)
	fmt.Printf("%-18s %8d %8d\n", "Penalties", box.Home.Penalties, box.Away.Penalties)
}
