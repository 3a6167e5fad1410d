package transfer

import (
	"fmt"
	"math"

	"github.com/andrescamacho/footsim-go/internal/domain/player"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/team"
)

// ValuationConfig holds every tunable of the valuation and negotiation model.
// Defaults are calibrated so a mid-70s player values in the low millions.
type ValuationConfig struct {
	// Market value
	BaseValueAt50 float64 // value of a 50-overall prime-age player
	OvrMultiplier float64 // per-point exponential growth above/below 50

	PositionWeights map[player.Position]float64

	YoungAgeLimit     int     // exclusive upper bound of the "young" band
	VeteranAgeLimit   int     // inclusive upper bound of the "veteran" band
	YoungBoost        float64 // base multiplier for young players
	PotentialGapBoost float64 // extra multiplier per point of potential over overall
	VeteranDiscount   float64
	OldDiscount       float64

	// Transfer fee (contract years left)
	ExpiringDiscount float64 // < 1 year left
	ShortDiscount    float64 // 1-2 years left
	LongMultiplier   float64 // > 2 years left

	// Wages
	WageRatio         float64 // suggested annual wage as a share of market value
	WageRounding      int64
	SalaryExponent    float64
	SalaryMultiplier  float64
	WonderkidAgeLimit int
	WonderkidGap      int
	WonderkidBonus    float64
	HighFormLimit     int
	LowFormLimit      int
	HighFormBoost     float64
	LowFormPenalty    float64

	// Offer evaluation thresholds, ordered low to high
	MinOfferRatio      float64 // below: reject as offensive
	RejectCounterRatio float64 // below: reject as too low
	NegotiableMax      float64 // below: counter near valuation
	AcceptThreshold    float64 // below: probabilistic counter, else accept
	InstantAccept      float64 // at or above: accept immediately

	CounterLowMult  float64 // counter fee range, as multiples of valuation
	CounterHighMult float64
	CounterChance   float64 // probability of countering in the near-acceptable band
	CounterNudge    float64 // upward nudge applied to the offer when countering

	GreedSellingClub    float64
	GreedYouthProtect   float64 // youth_focused guarding players under the young limit
	GreedYouthSellVets  float64 // youth_focused moving veterans on
	GreedStarProtect    float64 // aggressive/rebuilding guarding 80+ players
	GreedRebuildDefault float64
	StarOverall         int
}

// DefaultValuationConfig returns the standard model constants
func DefaultValuationConfig() ValuationConfig {
	return ValuationConfig{
		BaseValueAt50: 60_000,
		OvrMultiplier: 1.15,
		PositionWeights: map[player.Position]float64{
			player.PositionGoalkeeper: 0.9,
			player.PositionDefender:   1.0,
			player.PositionMidfielder: 1.05,
			player.PositionForward:    1.2,
		},
		YoungAgeLimit:     22,
		VeteranAgeLimit:   33,
		YoungBoost:        1.2,
		PotentialGapBoost: 0.02,
		VeteranDiscount:   0.7,
		OldDiscount:       0.4,

		ExpiringDiscount: 0.4,
		ShortDiscount:    0.85,
		LongMultiplier:   1.1,

		WageRatio:         0.05,
		WageRounding:      5_000,
		SalaryExponent:    3.0,
		SalaryMultiplier:  0.25,
		WonderkidAgeLimit: 24,
		WonderkidGap:      10,
		WonderkidBonus:    1.5,
		HighFormLimit:     80,
		LowFormLimit:      40,
		HighFormBoost:     1.2,
		LowFormPenalty:    0.8,

		MinOfferRatio:      0.5,
		RejectCounterRatio: 0.7,
		NegotiableMax:      0.85,
		AcceptThreshold:    1.0,
		InstantAccept:      1.5,

		CounterLowMult:  0.95,
		CounterHighMult: 1.1,
		CounterChance:   0.5,
		CounterNudge:    1.08,

		GreedSellingClub:    0.85,
		GreedYouthProtect:   1.3,
		GreedYouthSellVets:  0.8,
		GreedStarProtect:    1.4,
		GreedRebuildDefault: 0.95,
		StarOverall:         80,
	}
}

// ValuationEngine computes market values, fees, wages and offer decisions.
// Pure computation, no I/O.
type ValuationEngine struct {
	cfg ValuationConfig
}

// NewValuationEngine creates an engine with the given config
func NewValuationEngine(cfg ValuationConfig) *ValuationEngine {
	return &ValuationEngine{cfg: cfg}
}

// Config returns the engine's configuration
func (e *ValuationEngine) Config() ValuationConfig {
	return e.cfg
}

// MarketValue computes a player's market worth independent of any offer
func (e *ValuationEngine) MarketValue(p *player.Player) int64 {
	base := e.cfg.BaseValueAt50 * math.Pow(e.cfg.OvrMultiplier, float64(p.Overall-50))

	weight, ok := e.cfg.PositionWeights[p.Position]
	if !ok {
		weight = 1.0
	}

	value := base * weight * e.ageMultiplier(p)
	return roundToGranularity(int64(value))
}

func (e *ValuationEngine) ageMultiplier(p *player.Player) float64 {
	switch {
	case p.Age < e.cfg.YoungAgeLimit:
		mult := e.cfg.YoungBoost
		if p.Potential > p.Overall {
			mult += e.cfg.PotentialGapBoost * float64(p.Potential-p.Overall)
		}
		return mult
	case p.Age <= 29:
		return 1.0
	case p.Age <= e.cfg.VeteranAgeLimit:
		return e.cfg.VeteranDiscount
	default:
		return e.cfg.OldDiscount
	}
}

// TransferFee computes the asking fee from market value and contract runway
func (e *ValuationEngine) TransferFee(p *player.Player, contractYearsLeft float64) int64 {
	value := float64(e.MarketValue(p))
	switch {
	case contractYearsLeft < 1:
		value *= e.cfg.ExpiringDiscount
	case contractYearsLeft <= 2:
		value *= e.cfg.ShortDiscount
	default:
		value *= e.cfg.LongMultiplier
	}
	return roundToGranularity(int64(value))
}

// SuggestedWage computes an annual wage proportional to market value,
// rounded to a coarse increment.
func (e *ValuationEngine) SuggestedWage(p *player.Player) int64 {
	wage := float64(e.MarketValue(p)) * e.cfg.WageRatio
	return roundTo(int64(wage), e.cfg.WageRounding)
}

// LeagueTier describes a league's salary environment
type LeagueTier struct {
	Multiplier float64
	MinSalary  int64
	MaxSalary  int64
}

// EconomicWage computes an annual salary from the richer economic model:
// ability curve, league tier, position premium, age, wonderkid upside and form.
func (e *ValuationEngine) EconomicWage(p *player.Player, tier LeagueTier) int64 {
	salary := math.Pow(float64(p.Overall), e.cfg.SalaryExponent) * e.cfg.SalaryMultiplier * tier.Multiplier

	if weight, ok := e.cfg.PositionWeights[p.Position]; ok {
		salary *= weight
	}
	salary *= e.ageMultiplier(p)

	if p.Age < e.cfg.WonderkidAgeLimit && p.Potential-p.Overall >= e.cfg.WonderkidGap {
		salary *= e.cfg.WonderkidBonus
	}

	if p.Form > e.cfg.HighFormLimit {
		salary *= e.cfg.HighFormBoost
	} else if p.Form < e.cfg.LowFormLimit {
		salary *= e.cfg.LowFormPenalty
	}

	wage := int64(salary)
	if wage < tier.MinSalary {
		wage = tier.MinSalary
	}
	if wage > tier.MaxSalary {
		wage = tier.MaxSalary
	}
	return roundTo(wage, e.cfg.WageRounding)
}

// Decision is the outcome of evaluating an incoming offer
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionReject  Decision = "reject"
	DecisionCounter Decision = "counter"
)

// OfferEvaluation carries the decision plus everything needed to explain it
type OfferEvaluation struct {
	Decision      Decision
	Reason        string
	CounterFee    int64 // set only when Decision == DecisionCounter
	Valuation     int64
	OfferRatio    float64
	GreedFactor   float64
	AdjustedRatio float64
}

// EvaluateOffer decides how a selling club with the given strategy answers an
// offer. The decision boundaries are monotonic in the offer: raising the fee
// never turns an accept into a reject.
func (e *ValuationEngine) EvaluateOffer(
	p *player.Player,
	offer int64,
	strategy team.TransferStrategy,
	contractYearsLeft float64,
	rng shared.Rand,
) OfferEvaluation {
	valuation := e.TransferFee(p, contractYearsLeft)
	if valuation <= 0 {
		valuation = 1
	}

	offerRatio := float64(offer) / float64(valuation)
	greed := e.greedFactor(p, strategy)
	ratio := offerRatio / greed

	ev := OfferEvaluation{
		Valuation:     valuation,
		OfferRatio:    offerRatio,
		GreedFactor:   greed,
		AdjustedRatio: ratio,
	}

	switch {
	case ratio >= e.cfg.InstantAccept:
		ev.Decision = DecisionAccept
		ev.Reason = fmt.Sprintf("extraordinary offer, %.0f%% above our valuation", (offerRatio-1)*100)

	case ratio < e.cfg.MinOfferRatio:
		ev.Decision = DecisionReject
		ev.Reason = fmt.Sprintf("offensive offer, not even half of the %d we value the player at", valuation)

	case ratio < e.cfg.RejectCounterRatio:
		ev.Decision = DecisionReject
		ev.Reason = fmt.Sprintf("offer too low, the player is valued at %d", valuation)

	case ratio < e.cfg.NegotiableMax:
		counter := roundToGranularity(int64(float64(valuation) * rng.Between(e.cfg.CounterLowMult, e.cfg.CounterHighMult)))
		ev.Decision = DecisionCounter
		ev.CounterFee = counter
		ev.Reason = fmt.Sprintf("offer is negotiable, countering at %d", counter)

	case ratio < e.cfg.AcceptThreshold:
		if rng.Float64() < e.cfg.CounterChance {
			counter := roundToGranularity(int64(float64(offer) * e.cfg.CounterNudge))
			ev.Decision = DecisionCounter
			ev.CounterFee = counter
			ev.Reason = fmt.Sprintf("close to our valuation, asking for %d to close the deal", counter)
		} else {
			ev.Decision = DecisionAccept
			ev.Reason = "offer is close enough to our valuation"
		}

	default:
		ev.Decision = DecisionAccept
		ev.Reason = "offer meets our valuation"
	}

	return ev
}

// greedFactor derives how hard the seller is to satisfy from its strategy.
// Values above 1 protect the player, below 1 make the club more willing.
func (e *ValuationEngine) greedFactor(p *player.Player, strategy team.TransferStrategy) float64 {
	switch strategy {
	case team.StrategySellingClub:
		return e.cfg.GreedSellingClub
	case team.StrategyYouthFocused:
		if p.Age < e.cfg.YoungAgeLimit {
			return e.cfg.GreedYouthProtect
		}
		if p.Age > 29 {
			return e.cfg.GreedYouthSellVets
		}
		return 1.0
	case team.StrategyAggressive:
		if p.Overall > e.cfg.StarOverall {
			return e.cfg.GreedStarProtect
		}
		return 1.0
	case team.StrategyRebuilding:
		if p.Overall > e.cfg.StarOverall {
			return e.cfg.GreedStarProtect
		}
		return e.cfg.GreedRebuildDefault
	default:
		return 1.0
	}
}

// roundToGranularity rounds a currency amount to a coarser increment the
// larger it gets, matching how transfer fees are quoted.
func roundToGranularity(value int64) int64 {
	switch {
	case value < 100_000:
		return roundTo(value, 5_000)
	case value < 1_000_000:
		return roundTo(value, 25_000)
	case value < 10_000_000:
		return roundTo(value, 100_000)
	default:
		return roundTo(value, 500_000)
	}
}

func roundTo(value, increment int64) int64 {
	if increment <= 0 {
		return value
	}
	return ((value + increment/2) / increment) * increment
}
