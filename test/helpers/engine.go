package helpers

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/footsim-go/internal/adapters/finance"
	"github.com/andrescamacho/footsim-go/internal/adapters/persistence"
	"github.com/andrescamacho/footsim-go/internal/application/ai"
	"github.com/andrescamacho/footsim-go/internal/application/common"
	"github.com/andrescamacho/footsim-go/internal/application/daily"
	"github.com/andrescamacho/footsim-go/internal/application/events"
	squadapp "github.com/andrescamacho/footsim-go/internal/application/squad"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/commands"
	"github.com/andrescamacho/footsim-go/internal/application/transfer/services"
	"github.com/andrescamacho/footsim-go/internal/domain/shared"
	"github.com/andrescamacho/footsim-go/internal/domain/transfer"
)

// TestEngine is a fully wired engine over an in-memory database with a fixed
// clock and a fixed random source, for integration tests.
type TestEngine struct {
	DB            *gorm.DB
	Repos         *common.Repos
	Mediator      common.Mediator
	Bus           *events.Bus
	Clock         *shared.MockClock
	Rng           *shared.FixedRand
	Valuation     *transfer.ValuationEngine
	Analyzer      *squadapp.Analyzer
	DecisionMaker *ai.DecisionMaker
	Processor     *daily.Processor
}

// NewTestEngine wires the whole engine at the given simulated time
func NewTestEngine(t *testing.T, now time.Time) *TestEngine {
	db := NewTestDB(t)
	repos := persistence.NewRepos(db)
	clock := shared.NewMockClock(now)
	rng := &shared.FixedRand{Value: 0.5}
	valuation := transfer.NewValuationEngine(transfer.DefaultValuationConfig())
	window := transfer.NewWindowPolicy(transfer.DefaultWindowSpans())
	validator := services.NewTransferValidator(repos, valuation, services.DefaultValidationRules())
	analyzer := squadapp.NewAnalyzer(repos, squadapp.DefaultRules())
	gate := finance.NewBudgetHealthGate(repos.Teams)
	bus := events.NewBus()
	mediator := common.NewMediator()

	register := []error{
		common.RegisterHandler[*commands.CreateProposalCommand](mediator,
			commands.NewCreateProposalHandler(repos, validator, window, clock, bus, 7)),
		common.RegisterHandler[*commands.RespondToProposalCommand](mediator,
			commands.NewRespondToProposalHandler(repos, clock, 3)),
		common.RegisterHandler[*commands.AcceptCounterOfferCommand](mediator,
			commands.NewAcceptCounterOfferHandler(repos)),
		common.RegisterHandler[*commands.FinalizeTransferCommand](mediator,
			commands.NewFinalizeTransferHandler(repos, clock, bus, 85)),
		common.RegisterHandler[*commands.ExpireProposalsCommand](mediator,
			commands.NewExpireProposalsHandler(repos, clock)),
	}
	for _, err := range register {
		if err != nil {
			t.Fatalf("failed to register handler: %v", err)
		}
	}

	decisionMaker := ai.NewDecisionMaker(repos, mediator, valuation, analyzer, window, gate, rng, ai.DefaultBehaviour())
	processor := daily.NewProcessor(repos, mediator, decisionMaker, clock)

	return &TestEngine{
		DB:            db,
		Repos:         repos,
		Mediator:      mediator,
		Bus:           bus,
		Clock:         clock,
		Rng:           rng,
		Valuation:     valuation,
		Analyzer:      analyzer,
		DecisionMaker: decisionMaker,
		Processor:     processor,
	}
}
