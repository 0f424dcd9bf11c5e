// Command montecarlo runs a batch of independent games in parallel,
// varying only the client seed, and reports aggregate stats comparing
// net yards against team rating (spec §5 "parallelism across games is
// trivial... no state is shared", §8 scenario 2).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/proofplay/gridiron/internal/config"
	"github.com/proofplay/gridiron/internal/engine"
	"github.com/proofplay/gridiron/internal/fixtures"
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/telemetry"
)

func main() {
	n := flag.Int("n", 100, "number of games to simulate")
	homeRating := flag.Int("home-rating", 95, "home team overall rating, 70-99")
	awayRating := flag.Int("away-rating", 75, "away team overall rating, 70-99")
	concurrency := flag.Int("concurrency", 8, "max games in flight at once")
	flag.Parse()

	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))
	telemetry.Infof("Starting monte carlo batch: n=%d home_rating=%d away_rating=%d", *n, *homeRating, *awayRating)

	homeTeam := fixtures.Team("HOME", "Home Team", *homeRating, model.StyleBalanced)
	awayTeam := fixtures.Team("AWAY", "Away Team", *awayRating, model.StyleBalanced)
	homeRoster := fixtures.Roster("H", *homeRating)
	awayRoster := fixtures.Roster("A", *awayRating)

	serverSeed, err := rng.GenerateServerSeed()
	if err != nil {
		telemetry.Errorf("generate server seed: %v", err)
		os.Exit(1)
	}

	results := make([]model.SimulatedGame, *n)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)
	for i := 0; i < *n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			clientSeed, err := rng.GenerateClientSeed()
			if err != nil {
				return fmt.Errorf("game %d: generate client seed: %w", i, err)
			}
			game, err := engine.Simulate(engine.Input{
				HomeTeam:   homeTeam,
				AwayTeam:   awayTeam,
				HomeRoster: homeRoster,
				AwayRoster: awayRoster,
				GameType:   model.GameRegular,
				ServerSeed: serverSeed,
				ClientSeed: clientSeed,
			})
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = game
			telemetry.Metrics.GamesSimulated.Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		telemetry.Errorf("batch failed: %v", err)
		os.Exit(1)
	}

	report(results, homeTeam, awayTeam)
}

// report aggregates net yards and win rate by side, the spec §8
// scenario-2 check that a 20-point rating gap shows up as an aggregate
// yardage/win-rate edge across many independent games, not in any one.
func report(games []model.SimulatedGame, home, away model.Team) {
	var homeWins, awayWins, ties int
	var homeYardsTotal, awayYardsTotal int64

	for _, game := range games {
		switch {
		case game.FinalScore.Home > game.FinalScore.Away:
			homeWins++
		case game.FinalScore.Away > game.FinalScore.Home:
			awayWins++
		default:
			ties++
		}
		homeYardsTotal += int64(game.BoxScore.Home.TotalYards)
		awayYardsTotal += int64(game.BoxScore.Away.TotalYards)
	}

	n := len(games)
	fmt.Printf("games: %d\n", n)
	fmt.Printf("%s (rating %d): %d wins (%.1f%%), avg yards %.1f\n",
		home.Name, home.OffenseRating, homeWins, 100*float64(homeWins)/float64(n), float64(homeYardsTotal)/float64(n))
	fmt.Printf("%s (rating %d): %d wins (%.1f%%), avg yards %.1f\n",
		away.Name, away.OffenseRating, awayWins, 100*float64(awayWins)/float64(n), float64(awayYardsTotal)/float64(n))
	fmt.Printf("ties: %d\n", ties)
}
