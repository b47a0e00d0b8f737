package analyzers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Analyzer names used in logs.
const (
	NameTripTrouble        = "trip-trouble"
	NamePaceScenario       = "pace-scenario"
	NameVulnerableFavorite = "vulnerable-favorite"
	NameFieldSpread        = "field-spread"
	NameClassDrop          = "class-drop"
)

// DefaultTimeout bounds a single analyzer invocation.
const DefaultTimeout = 10 * time.Second

// Runner invokes the five specialist analyzers concurrently with an
// all-settle strategy: each may independently succeed, fail, or time out, and
// a failure only leaves its slot in the AnalyzerSet nil. The function fields
// default to the local heuristic implementations and can be swapped for
// remote ones.
type Runner struct {
	Timeout time.Duration

	Trip        func(context.Context, *model.RaceCard) (*model.TripTroubleResult, error)
	Pace        func(context.Context, *model.RaceCard) (*model.PaceScenarioResult, error)
	Favorite    func(context.Context, *model.RaceCard) (*model.VulnerableFavoriteResult, error)
	FieldSpread func(context.Context, *model.RaceCard) (*model.FieldSpreadResult, error)
	ClassDrop   func(context.Context, *model.RaceCard) (*model.ClassDropResult, error)
}

// NewRunner creates a Runner wired with the local heuristic analyzers.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		Timeout:     timeout,
		Trip:        AnalyzeTripTrouble,
		Pace:        AnalyzePaceScenario,
		Favorite:    AnalyzeVulnerableFavorite,
		FieldSpread: AnalyzeFieldSpread,
		ClassDrop:   AnalyzeClassDrop,
	}
}

// RunAll runs all five analyzers and settles every one before returning.
// It never fails: an analyzer error is logged and its result stays absent.
func (r *Runner) RunAll(ctx context.Context, card *model.RaceCard) *model.AnalyzerSet {
	set := &model.AnalyzerSet{}
	var wg sync.WaitGroup

	run := func(name string, invoke func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cctx, cancel := context.WithTimeout(ctx, r.Timeout)
			defer cancel()
			if err := invoke(cctx); err != nil {
				log.Printf("[WARN] analyzer %s unavailable: %v", name, err)
			}
		}()
	}

	run(NameTripTrouble, func(cctx context.Context) error {
		res, err := r.Trip(cctx, card)
		if err != nil {
			return err
		}
		set.TripTrouble = res
		return nil
	})
	run(NamePaceScenario, func(cctx context.Context) error {
		res, err := r.Pace(cctx, card)
		if err != nil {
			return err
		}
		set.Pace = res
		return nil
	})
	run(NameVulnerableFavorite, func(cctx context.Context) error {
		res, err := r.Favorite(cctx, card)
		if err != nil {
			return err
		}
		set.VulnerableFavorite = res
		return nil
	})
	run(NameFieldSpread, func(cctx context.Context) error {
		res, err := r.FieldSpread(cctx, card)
		if err != nil {
			return err
		}
		set.FieldSpread = res
		return nil
	})
	run(NameClassDrop, func(cctx context.Context) error {
		res, err := r.ClassDrop(cctx, card)
		if err != nil {
			return err
		}
		set.ClassDrop = res
		return nil
	})

	wg.Wait()
	return set
}
