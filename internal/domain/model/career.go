package model

// JobOffer is an ephemeral employment proposal. It is consumed once.
type JobOffer struct {
	ID             string
	ClubID         string
	ClubName       string
	Tier           int
	Role           string
	Salary         int
	ContractLength int // seasons
	Season         int
	ExpiresWeek    int
}

// ScoreBreakdown itemizes a review's composite score.
type ScoreBreakdown struct {
	Reports    float64
	Quality    float64
	Signings   float64
	TablePound float64
	TierThree  float64
	TierFour   float64
	TierFive   float64
	Unclamped  float64
}

// PerformanceReview is the end-of-season verdict for one scout.
type PerformanceReview struct {
	ScoutID            string
	Season             int
	ReportsSubmitted   int
	AverageQuality     float64
	SuccessfulSignings int
	TablePoundsUsed    int
	TablePoundHits     int
	Score              float64 // 0–100
	Breakdown          ScoreBreakdown
	Outcome            ReviewOutcome
	ReputationDelta    float64
}
