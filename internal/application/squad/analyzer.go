package squad

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/squad"
)

// Rules holds the thresholds squad analysis works from
type Rules struct {
	MaxSize         int
	TopN            int
	WageCapRatio    float64
	VeteranAge      int
	VeteranRatioMax float64
	YouthNeedMaxAge int
}

// DefaultRules returns the standard analysis thresholds
func DefaultRules() Rules {
	return Rules{
		MaxSize:         28,
		TopN:            11,
		WageCapRatio:    0.6,
		VeteranAge:      30,
		VeteranRatioMax: 0.4,
		YouthNeedMaxAge: 23,
	}
}

// positionThresholds are the critical/minimum/optimal headcounts per position.
// Below critical the need is critical, below minimum high, below optimal
// medium. Above optimal+surplusSlack the position is surplus.
type positionThresholds struct {
	critical int
	minimum  int
	optimal  int
}

const surplusSlack = 2

var thresholdsByPosition = map[player.Position]positionThresholds{
	player.PositionGoalkeeper: {critical: 1, minimum: 2, optimal: 3},
	player.PositionDefender:   {critical: 4, minimum: 6, optimal: 8},
	player.PositionMidfielder: {critical: 4, minimum: 6, optimal: 8},
	player.PositionForward:    {critical: 2, minimum: 3, optimal: 5},
}

// minOverallPenalty lowers the acceptable overall for urgent needs so the
// club fills the gap rather than holding out for a star
func minOverallPenalty(p squad.Priority) int {
	switch p {
	case squad.PriorityCritical:
		return 10
	case squad.PriorityHigh:
		return 5
	case squad.PriorityMedium:
		return 2
	default:
		return 0
	}
}

// wageRatio is the share of the wage room one need may consume
func wageRatio(p squad.Priority) float64 {
	switch p {
	case squad.PriorityCritical:
		return 0.5
	case squad.PriorityHigh:
		return 0.35
	case squad.PriorityMedium:
		return 0.2
	default:
		return 0.1
	}
}

func maxAgeForPriority(p squad.Priority) int {
	switch p {
	case squad.PriorityCritical:
		return 33
	case squad.PriorityHigh:
		return 30
	default:
		return 28
	}
}

// Analyzer derives squad reports, candidate fit scores and affordability
// answers from the current roster and budget.
type Analyzer struct {
	repos *common.Repos
	rules Rules
}

// NewAnalyzer creates an analyzer over the given repositories
func NewAnalyzer(repos *common.Repos, rules Rules) *Analyzer {
	return &Analyzer{repos: repos, rules: rules}
}

// AnalyzeSquad builds the full report for one team
func (a *Analyzer) AnalyzeSquad(ctx context.Context, teamID int) (*squad.Report, error) {
	t, err := a.repos.Teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	players, err := a.repos.Players.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	report := &squad.Report{
		TeamID:         teamID,
		SquadSize:      len(players),
		PositionCounts: make(map[player.Position]int),
	}
	for _, pos := range player.AllPositions() {
		report.PositionCounts[pos] = 0
	}

	var ageSum, overallSum int
	overalls := make([]int, 0, len(players))
	var annualWagesSum int64
	for _, p := range players {
		ageSum += p.Age
		overallSum += p.Overall
		overalls = append(overalls, p.Overall)
		report.PositionCounts[p.Position]++
		if wage, err := a.annualWage(ctx, p.ID); err == nil {
			annualWagesSum += wage
		}
	}

	if len(players) > 0 {
		report.AverageAge = float64(ageSum) / float64(len(players))
		report.AverageOverall = float64(overallSum) / float64(len(players))
		report.StartingStrength = topNAverage(overalls, a.rules.TopN)
	}

	report.MonthlyWageBill = annualWagesSum/12 + t.StaffAnnualWage/12
	report.WageRoom = int64(float64(t.Budget)*a.rules.WageCapRatio) - report.MonthlyWageBill

	if len(players) == 0 {
		report.Needs = a.emptySquadNeeds(report)
	} else {
		report.Needs = a.deriveNeeds(report, players)
	}
	squad.SortNeeds(report.Needs)

	for _, pos := range player.AllPositions() {
		if th, ok := thresholdsByPosition[pos]; ok && report.PositionCounts[pos] > th.optimal+surplusSlack {
			report.SurplusPositions = append(report.SurplusPositions, pos)
		}
	}

	return report, nil
}

// annualWage looks up the player's active contract wage, zero when none
func (a *Analyzer) annualWage(ctx context.Context, playerID int) (int64, error) {
	c, err := a.repos.Contracts.FindActiveByPlayerID(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return c.AnnualWage, nil
}

// emptySquadNeeds marks every position critical so an empty club recruits
// a minimal roster urgently
func (a *Analyzer) emptySquadNeeds(report *squad.Report) []squad.Need {
	needs := make([]squad.Need, 0, len(player.AllPositions()))
	for _, pos := range player.AllPositions() {
		needs = append(needs, squad.Need{
			Position:   pos,
			Priority:   squad.PriorityCritical,
			MinOverall: 50,
			MaxAge:     maxAgeForPriority(squad.PriorityCritical),
			MaxWage:    int64(float64(report.WageRoom) * wageRatio(squad.PriorityCritical) * 12),
			Reason:     fmt.Sprintf("no %s in the squad", pos),
		})
	}
	return needs
}

func (a *Analyzer) deriveNeeds(report *squad.Report, players []*player.Player) []squad.Need {
	var needs []squad.Need
	for _, pos := range player.AllPositions() {
		th, ok := thresholdsByPosition[pos]
		if !ok {
			continue
		}
		count := report.PositionCounts[pos]

		var priority squad.Priority
		switch {
		case count < th.critical:
			priority = squad.PriorityCritical
		case count < th.minimum:
			priority = squad.PriorityHigh
		case count < th.optimal:
			priority = squad.PriorityMedium
		default:
			continue
		}

		minOverall := int(report.AverageOverall) - minOverallPenalty(priority)
		if minOverall < 40 {
			minOverall = 40
		}
		needs = append(needs, squad.Need{
			Position:   pos,
			Priority:   priority,
			MinOverall: minOverall,
			MaxAge:     maxAgeForPriority(priority),
			MaxWage:    int64(float64(report.WageRoom) * wageRatio(priority) * 12),
			Reason:     fmt.Sprintf("only %d %s for a minimum of %d", count, pos, th.minimum),
		})
	}

	if need := a.agingSquadNeed(report, players, needs); need != nil {
		needs = append(needs, *need)
	}
	return needs
}

// agingSquadNeed flags the position with the most veterans when the veteran
// ratio breaches the threshold and no existing need already targets youth
func (a *Analyzer) agingSquadNeed(report *squad.Report, players []*player.Player, existing []squad.Need) *squad.Need {
	if len(players) == 0 {
		return nil
	}
	for _, n := range existing {
		if n.MaxAge <= a.rules.YouthNeedMaxAge {
			return nil
		}
	}

	veteransByPosition := make(map[player.Position]int)
	veterans := 0
	for _, p := range players {
		if p.Age >= a.rules.VeteranAge {
			veterans++
			veteransByPosition[p.Position]++
		}
	}
	if float64(veterans)/float64(len(players)) <= a.rules.VeteranRatioMax {
		return nil
	}

	worst := player.PositionMidfielder
	worstCount := -1
	for _, pos := range player.AllPositions() {
		if veteransByPosition[pos] > worstCount {
			worst = pos
			worstCount = veteransByPosition[pos]
		}
	}

	return &squad.Need{
		Position:   worst,
		Priority:   squad.PriorityMedium,
		MinOverall: int(report.AverageOverall) - minOverallPenalty(squad.PriorityMedium),
		MaxAge:     a.rules.YouthNeedMaxAge,
		MaxWage:    int64(float64(report.WageRoom) * wageRatio(squad.PriorityMedium) * 12),
		Reason:     fmt.Sprintf("aging squad, %d of %d players are %d or older", veterans, len(players), a.rules.VeteranAge),
	}
}

// EvaluatePlayerFit scores a candidate 0-100 against the team's current needs
func (a *Analyzer) EvaluatePlayerFit(ctx context.Context, p *player.Player, teamID int) (*squad.FitScore, error) {
	report, err := a.AnalyzeSquad(ctx, teamID)
	if err != nil {
		return nil, err
	}

	fit := &squad.FitScore{}
	var matched *squad.Need
	for i := range report.Needs {
		if report.Needs[i].Position == p.Position {
			matched = &report.Needs[i]
			break
		}
	}
	if matched == nil {
		fit.Score = 20
		fit.Reasons = append(fit.Reasons, fmt.Sprintf("no current need at %s", p.Position))
		return fit, nil
	}

	score := 50
	fit.Reasons = append(fit.Reasons, fmt.Sprintf("%s need at %s", matched.Priority, matched.Position))

	gap := p.Overall - matched.MinOverall
	score += clamp(gap*2, -30, 30)
	if gap >= 0 {
		fit.Reasons = append(fit.Reasons, fmt.Sprintf("overall %d meets the %d floor", p.Overall, matched.MinOverall))
	} else {
		fit.Reasons = append(fit.Reasons, fmt.Sprintf("overall %d is below the %d floor", p.Overall, matched.MinOverall))
	}

	if p.Age <= matched.MaxAge {
		score += 10
	} else {
		score -= 15
		fit.Reasons = append(fit.Reasons, fmt.Sprintf("age %d exceeds the %d target", p.Age, matched.MaxAge))
	}

	if p.Potential-p.Overall >= 10 {
		score += 10
		fit.Reasons = append(fit.Reasons, "significant potential upside")
	}

	if p.IsInjured {
		score -= 20
		fit.Reasons = append(fit.Reasons, fmt.Sprintf("injured for %d more days", p.InjuryDaysRemaining))
	}

	if matched.Priority == squad.PriorityCritical {
		score += 10
	}

	fit.Score = clamp(score, 0, 100)
	return fit, nil
}

// CanAffordPlayer checks the fee against the budget and the monthly wage
// against the wage room
func (a *Analyzer) CanAffordPlayer(ctx context.Context, teamID int, fee, annualWage int64) (bool, error) {
	t, err := a.repos.Teams.FindByID(ctx, teamID)
	if err != nil {
		return false, err
	}
	if !t.CanAfford(fee) {
		return false, nil
	}
	report, err := a.AnalyzeSquad(ctx, teamID)
	if err != nil {
		return false, err
	}
	return annualWage/12 <= report.WageRoom, nil
}

func topNAverage(overalls []int, n int) float64 {
	sorted := make([]int, len(overalls))
	copy(sorted, overalls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n > len(sorted) {
		n = len(sorted)
	}
	if n == 0 {
		return 0
	}
	sum := 0
	for _, o := range sorted[:n] {
		sum += o
	}
	return float64(sum) / float64(n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
