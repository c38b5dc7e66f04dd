package autoplay

// Summary aggregates results across seeds.
type Summary struct {
	Runs      int
	Games     int
	MeanScore float64
	MaxScore  int
	BestSeed  int64
	MeanTicks float64
}

// Summarize folds results into a Summary. MaxScore is the best single-game
// score over all runs.
func Summarize(results []Result) Summary {
	var sum Summary
	if len(results) == 0 {
		return sum
	}
	totalScore, totalTicks := 0, 0
	for i, r := range results {
		sum.Runs++
		sum.Games += r.Games
		totalScore += r.BestScore
		totalTicks += r.Ticks
		if i == 0 || r.BestScore > sum.MaxScore {
			sum.MaxScore = r.BestScore
			sum.BestSeed = r.Seed
		}
	}
	sum.MeanScore = float64(totalScore) / float64(sum.Runs)
	sum.MeanTicks = float64(totalTicks) / float64(sum.Runs)
	return sum
}
