package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "footsim"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "footsim"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "footsim.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Engine defaults
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = time.Now().UnixNano()
	}
	if cfg.Engine.ProposalDeadlineDays == 0 {
		cfg.Engine.ProposalDeadlineDays = 7
	}
	if cfg.Engine.CounterDeadlineDays == 0 {
		cfg.Engine.CounterDeadlineDays = 3
	}
	if cfg.Engine.FreshSigningMoral == 0 {
		cfg.Engine.FreshSigningMoral = 85
	}
	if len(cfg.Engine.Windows) == 0 {
		cfg.Engine.Windows = []WindowConfig{
			{StartMonth: 1, StartDay: 1, EndMonth: 1, EndDay: 31},
			{StartMonth: 7, StartDay: 1, EndMonth: 8, EndDay: 31},
		}
	}

	// Contract rules
	if cfg.Engine.Contract.MinYears == 0 {
		cfg.Engine.Contract.MinYears = 1
	}
	if cfg.Engine.Contract.MaxYears == 0 {
		cfg.Engine.Contract.MaxYears = 5
	}
	if cfg.Engine.Contract.MaxLoanYears == 0 {
		cfg.Engine.Contract.MaxLoanYears = 2
	}
	if cfg.Engine.Contract.MinYouthWage == 0 {
		cfg.Engine.Contract.MinYouthWage = 5_000
	}
	if cfg.Engine.Contract.MinSeniorWage == 0 {
		cfg.Engine.Contract.MinSeniorWage = 20_000
	}
	if cfg.Engine.Contract.YouthAgeLimit == 0 {
		cfg.Engine.Contract.YouthAgeLimit = 18
	}
	if cfg.Engine.Contract.InjuryDaysLimit == 0 {
		cfg.Engine.Contract.InjuryDaysLimit = 60
	}
	if cfg.Engine.Contract.LowBudgetWarning == 0 {
		cfg.Engine.Contract.LowBudgetWarning = 500_000
	}

	// Squad rules
	if cfg.Engine.Squad.MaxSize == 0 {
		cfg.Engine.Squad.MaxSize = 28
	}
	if cfg.Engine.Squad.TopN == 0 {
		cfg.Engine.Squad.TopN = 11
	}
	if cfg.Engine.Squad.WageCapRatio == 0 {
		cfg.Engine.Squad.WageCapRatio = 0.6
	}
	if cfg.Engine.Squad.VeteranAge == 0 {
		cfg.Engine.Squad.VeteranAge = 30
	}
	if cfg.Engine.Squad.VeteranRatioMax == 0 {
		cfg.Engine.Squad.VeteranRatioMax = 0.4
	}
	if cfg.Engine.Squad.YouthNeedMaxAge == 0 {
		cfg.Engine.Squad.YouthNeedMaxAge = 23
	}

	// AI behaviour
	if cfg.Engine.AI.OfferFeeLow == 0 {
		cfg.Engine.AI.OfferFeeLow = 0.85
	}
	if cfg.Engine.AI.OfferFeeHigh == 0 {
		cfg.Engine.AI.OfferFeeHigh = 0.95
	}
	if cfg.Engine.AI.OfferWageLow == 0 {
		cfg.Engine.AI.OfferWageLow = 1.0
	}
	if cfg.Engine.AI.OfferWageHigh == 0 {
		cfg.Engine.AI.OfferWageHigh = 1.1
	}
	if cfg.Engine.AI.ScoutChance == 0 {
		cfg.Engine.AI.ScoutChance = 0.1
	}
	if cfg.Engine.AI.ContractYears == 0 {
		cfg.Engine.AI.ContractYears = 4
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
