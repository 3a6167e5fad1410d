package cli

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/adapters/finance"
	"github.com/andrescamacho/footsim-go/internal/adapters/persistence"
	"github.com/andrescamacho/footsim-go/internal/application/ai"
	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/daily"
	"github.com/andrescamacho/footsim-go/internal/application/events"
	ledgerQueries "github.com/andrescamacho/footsim-go/internal/application/ledger/queries"
	squadapp "github.com/andrescamacho/footsim-go/internal/application/squad"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/queries"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/services"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
	"github.com/andrescamacho/footsim-go/internal/infrastructure/config"
	"github.com/andrescamacho/footsim-go/internal/infrastructure/database"
)

// engine is the fully wired transfer engine behind every CLI command.
// All dependency construction happens here, explicitly.
type engine struct {
	cfg       *config.Config
	db        *gorm.DB
	repos     *common.Repos
	mediator  common.Mediator
	bus       *events.Bus
	clock     shared.Clock
	processor *daily.Processor
	analyzer  *squadapp.Analyzer
}

// buildEngine loads configuration, connects the database and wires every
// handler. When asOf is set, the engine runs at that fixed date.
func buildEngine(configPath string, asOf *time.Time) (*engine, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var clock shared.Clock
	if asOf != nil {
		clock = shared.NewMockClock(*asOf)
	} else {
		clock = shared.NewRealClock()
	}

	repos := persistence.NewRepos(db)
	rng := shared.NewSeededRand(cfg.Engine.Seed)
	valuation := transfer.NewValuationEngine(transfer.DefaultValuationConfig())
	window := transfer.NewWindowPolicy(windowSpans(cfg.Engine.Windows))
	validator := services.NewTransferValidator(repos, valuation, validationRules(cfg.Engine.Contract, cfg.Engine.Squad))
	analyzer := squadapp.NewAnalyzer(repos, squadRules(cfg.Engine.Squad))
	gate := finance.NewBudgetHealthGate(repos.Teams)

	bus := events.NewBus()
	subscribeListeners(bus)

	mediator := common.NewMediator()
	register := []error{
		common.RegisterHandler[*commands.CreateProposalCommand](mediator,
			commands.NewCreateProposalHandler(repos, validator, window, clock, bus, cfg.Engine.ProposalDeadlineDays)),
		common.RegisterHandler[*commands.RespondToProposalCommand](mediator,
			commands.NewRespondToProposalHandler(repos, clock, cfg.Engine.CounterDeadlineDays)),
		common.RegisterHandler[*commands.AcceptCounterOfferCommand](mediator,
			commands.NewAcceptCounterOfferHandler(repos)),
		common.RegisterHandler[*commands.FinalizeTransferCommand](mediator,
			commands.NewFinalizeTransferHandler(repos, clock, bus, cfg.Engine.FreshSigningMoral)),
		common.RegisterHandler[*commands.ExpireProposalsCommand](mediator,
			commands.NewExpireProposalsHandler(repos, clock)),
		common.RegisterHandler[*queries.GetProposalQuery](mediator,
			queries.NewGetProposalHandler(repos)),
		common.RegisterHandler[*queries.ListProposalsQuery](mediator,
			queries.NewListProposalsHandler(repos)),
		common.RegisterHandler[*ledgerQueries.GetEntriesQuery](mediator,
			ledgerQueries.NewGetEntriesHandler(repos.Ledger)),
		common.RegisterHandler[*ledgerQueries.GetCashFlowQuery](mediator,
			ledgerQueries.NewGetCashFlowHandler(repos.Ledger)),
	}
	for _, err := range register {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	decisionMaker := ai.NewDecisionMaker(repos, mediator, valuation, analyzer, window, gate, rng, behaviour(cfg.Engine.AI))
	processor := daily.NewProcessor(repos, mediator, decisionMaker, clock)

	return &engine{
		cfg:       cfg,
		db:        db,
		repos:     repos,
		mediator:  mediator,
		bus:       bus,
		clock:     clock,
		processor: processor,
		analyzer:  analyzer,
	}, nil
}

// rootContext carries the CLI logger into every handler
func (e *engine) rootContext() context.Context {
	return common.WithLogger(context.Background(), &common.StdLogger{})
}

func (e *engine) close() {
	_ = database.Close(e.db)
}

// subscribeListeners attaches the CLI's event listeners. Registration is
// explicit so a reader can see every subscription in one place.
func subscribeListeners(bus *events.Bus) {
	bus.Subscribe(events.KindProposalReceived, func(ctx context.Context, e events.Event) error {
		ev := e.(events.ProposalReceived)
		common.LoggerFromContext(ctx).Log("INFO", "proposal received", map[string]interface{}{
			"proposal_id": ev.ProposalID,
			"player_id":   ev.PlayerID,
			"fee":         ev.Fee,
		})
		return nil
	})
	bus.Subscribe(events.KindTransferCompleted, func(ctx context.Context, e events.Event) error {
		ev := e.(events.TransferCompleted)
		common.LoggerFromContext(ctx).Log("INFO", "transfer completed", map[string]interface{}{
			"proposal_id": ev.ProposalID,
			"player_id":   ev.PlayerID,
			"to_team":     ev.ToTeamID,
			"fee":         ev.Fee,
		})
		return nil
	})
}

func windowSpans(windows []config.WindowConfig) []transfer.WindowSpan {
	spans := make([]transfer.WindowSpan, 0, len(windows))
	for _, w := range windows {
		spans = append(spans, transfer.WindowSpan{
			StartMonth: time.Month(w.StartMonth),
			StartDay:   w.StartDay,
			EndMonth:   time.Month(w.EndMonth),
			EndDay:     w.EndDay,
		})
	}
	return spans
}

func validationRules(contract config.ContractRulesConfig, squad config.SquadRulesConfig) services.ValidationRules {
	rules := services.DefaultValidationRules()
	rules.MinContractYears = contract.MinYears
	rules.MaxContractYears = contract.MaxYears
	rules.MaxLoanYears = contract.MaxLoanYears
	rules.MinYouthWage = contract.MinYouthWage
	rules.MinSeniorWage = contract.MinSeniorWage
	rules.YouthAgeLimit = contract.YouthAgeLimit
	rules.InjuryDaysLimit = contract.InjuryDaysLimit
	rules.LowBudgetWarning = contract.LowBudgetWarning
	rules.MaxSquadSize = squad.MaxSize
	return rules
}

func squadRules(squad config.SquadRulesConfig) squadapp.Rules {
	return squadapp.Rules{
		MaxSize:         squad.MaxSize,
		TopN:            squad.TopN,
		WageCapRatio:    squad.WageCapRatio,
		VeteranAge:      squad.VeteranAge,
		VeteranRatioMax: squad.VeteranRatioMax,
		YouthNeedMaxAge: squad.YouthNeedMaxAge,
	}
}

func behaviour(aiCfg config.AIConfig) ai.Behaviour {
	b := ai.DefaultBehaviour()
	b.OfferFeeLow = aiCfg.OfferFeeLow
	b.OfferFeeHigh = aiCfg.OfferFeeHigh
	b.OfferWageLow = aiCfg.OfferWageLow
	b.OfferWageHigh = aiCfg.OfferWageHigh
	b.ScoutChance = aiCfg.ScoutChance
	b.ContractYears = aiCfg.ContractYears
	return b
}
