package experiments

import (
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 20 // Per matchup

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
	{ID: 5, Depth: 5},
}

// RunDepthToStrength pits each search depth against the random baseline to
// measure how playing strength grows with depth.
func RunDepthToStrength(resultsDir string) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 0} // Random agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	runExperiment(resultsDir, "depth_to_strength", append(depthConfigs, baseline), matchUps)
}

// RunDepthToCost plays equal-depth mirror matches to measure how tree size
// and decision time grow with depth.
func RunDepthToCost(resultsDir string) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	runExperiment(resultsDir, "depth_to_cost", depthConfigs, matchUps)
}

func runExperiment(resultsDir, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			// Alternate which agent opens as dark
			dark, light := config1, config2
			if i%2 == 1 {
				dark, light = config2, config1
			}

			winner, gameMetric, moveMetrics := runGame(dark, light)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     dark.ID,
				Agent2:     light.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, NumGames, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(resultsDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two agent configs and returns the
// winner label along with metrics.
func runGame(dark, light metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.Local(newAgent(dark), newAgent(light))
	_, gameMetric, moveMetrics := e.Run()
	return gameMetric.Winner, gameMetric, moveMetrics
}

func newAgent(config metrics.AgentConfig) engine.Agent {
	if config.Depth == 0 {
		return newRandomAgent()
	}
	return searcher.NewMinimax(searcher.WithDepth(config.Depth), searcher.WithMetrics())
}
