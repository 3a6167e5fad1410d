package config

// EngineConfig holds every tunable of the transfer engine
type EngineConfig struct {
	// Seed for the injected random source; negotiations are reproducible
	// under a fixed seed
	Seed int64 `mapstructure:"seed"`

	// Days a club has to answer a fresh proposal
	ProposalDeadlineDays int `mapstructure:"proposal_deadline_days" validate:"min=1"`

	// Days added to the deadline when a counter offer is made
	CounterDeadlineDays int `mapstructure:"counter_deadline_days" validate:"min=1"`

	// Morale a player starts with after completing a move
	FreshSigningMoral int `mapstructure:"fresh_signing_moral" validate:"min=0,max=100"`

	// Transfer windows as "MM-DD" closed ranges
	Windows []WindowConfig `mapstructure:"windows" validate:"dive"`

	Contract ContractRulesConfig `mapstructure:"contract"`
	Squad    SquadRulesConfig    `mapstructure:"squad"`
	AI       AIConfig            `mapstructure:"ai"`
}

// WindowConfig is one closed month/day range during which the market is open
type WindowConfig struct {
	StartMonth int `mapstructure:"start_month" validate:"min=1,max=12"`
	StartDay   int `mapstructure:"start_day" validate:"min=1,max=31"`
	EndMonth   int `mapstructure:"end_month" validate:"min=1,max=12"`
	EndDay     int `mapstructure:"end_day" validate:"min=1,max=31"`
}

// ContractRulesConfig bounds the contracts a proposal may carry
type ContractRulesConfig struct {
	MinYears         int   `mapstructure:"min_years" validate:"min=1"`
	MaxYears         int   `mapstructure:"max_years" validate:"min=1"`
	MaxLoanYears     int   `mapstructure:"max_loan_years" validate:"min=1"`
	MinYouthWage     int64 `mapstructure:"min_youth_wage" validate:"min=0"`
	MinSeniorWage    int64 `mapstructure:"min_senior_wage" validate:"min=0"`
	YouthAgeLimit    int   `mapstructure:"youth_age_limit" validate:"min=15"`
	InjuryDaysLimit  int   `mapstructure:"injury_days_limit" validate:"min=0"`
	LowBudgetWarning int64 `mapstructure:"low_budget_warning" validate:"min=0"`
}

// SquadRulesConfig drives squad analysis thresholds
type SquadRulesConfig struct {
	MaxSize         int     `mapstructure:"max_size" validate:"min=11"`
	TopN            int     `mapstructure:"top_n" validate:"min=1"`
	WageCapRatio    float64 `mapstructure:"wage_cap_ratio" validate:"gt=0,lte=1"`
	VeteranAge      int     `mapstructure:"veteran_age" validate:"min=28"`
	VeteranRatioMax float64 `mapstructure:"veteran_ratio_max" validate:"gt=0,lte=1"`
	YouthNeedMaxAge int     `mapstructure:"youth_need_max_age" validate:"min=16"`
}

// AIConfig drives the AI decision maker's market behaviour
type AIConfig struct {
	// Fee offered as a share of the estimated value, randomized in
	// [OfferFeeLow, OfferFeeHigh]
	OfferFeeLow  float64 `mapstructure:"offer_fee_low" validate:"gt=0"`
	OfferFeeHigh float64 `mapstructure:"offer_fee_high" validate:"gt=0"`

	// Wage offered as a share of the suggested wage, randomized in
	// [OfferWageLow, OfferWageHigh]
	OfferWageLow  float64 `mapstructure:"offer_wage_low" validate:"gt=0"`
	OfferWageHigh float64 `mapstructure:"offer_wage_high" validate:"gt=0"`

	// Probability of dispatching a scout when no affordable target exists
	ScoutChance float64 `mapstructure:"scout_chance" validate:"gte=0,lte=1"`

	// Contract years the AI asks for when bidding
	ContractYears int `mapstructure:"contract_years" validate:"min=1"`
}
