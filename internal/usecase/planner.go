package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/infrastructure/retry"
	"github.com/tripwise/itinerary-orchestration-service/internal/infrastructure/timeutil"
)

// Default planner settings.
const (
	DefaultCompletionTimeout = 60 * time.Second
	DefaultRetryAttempts     = 2
	DefaultMaxTripDays       = 30
)

// TripPlannerUseCase defines the interface for itinerary planning operations.
type TripPlannerUseCase interface {
	// PlanTrip runs one planning pass over the requested day range.
	// Individual-day failures never surface to the caller; they become
	// fallback days. Only setup errors (invalid request, malformed dates)
	// are returned.
	PlanTrip(ctx context.Context, req PlanRequest) (*domain.ItineraryResult, error)
}

// Config contains configuration options for the planner.
type Config struct {
	// CompletionTimeout bounds each individual completion call
	CompletionTimeout time.Duration

	// RetryAttempts is the number of attempts per completion call
	RetryAttempts int

	// MaxTripDays rejects trips longer than this many days (0 = unlimited)
	MaxTripDays int

	// WebContext asks the completion service to ground flight discovery
	// in current web data
	WebContext bool

	// Logger receives planner diagnostics; a zero logger is replaced by Nop
	Logger *zerolog.Logger

	// Clock supplies timestamps; nil means the system clock
	Clock timeutil.Clock

	// Classifier categorizes activities for duplicate avoidance;
	// nil means the default keyword classifier
	Classifier ActivityClassifier
}

// DefaultConfig returns the default planner configuration.
func DefaultConfig() Config {
	return Config{
		CompletionTimeout: DefaultCompletionTimeout,
		RetryAttempts:     DefaultRetryAttempts,
		MaxTripDays:       DefaultMaxTripDays,
	}
}

// tripPlanner implements TripPlannerUseCase.
type tripPlanner struct {
	completion domain.CompletionService
	store      domain.ComponentStore
	classifier ActivityClassifier
	clock      timeutil.Clock
	log        zerolog.Logger
	cfg        Config
	retryCfg   retry.Config
}

// NewTripPlanner creates a TripPlannerUseCase with the given collaborators.
// If config is nil, defaults are used.
func NewTripPlanner(completion domain.CompletionService, store domain.ComponentStore, config *Config) TripPlannerUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.CompletionTimeout > 0 {
			cfg.CompletionTimeout = config.CompletionTimeout
		}
		if config.RetryAttempts > 0 {
			cfg.RetryAttempts = config.RetryAttempts
		}
		if config.MaxTripDays > 0 {
			cfg.MaxTripDays = config.MaxTripDays
		}
		cfg.WebContext = config.WebContext
		cfg.Logger = config.Logger
		cfg.Clock = config.Clock
		cfg.Classifier = config.Classifier
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	classifier := cfg.Classifier
	if classifier == nil {
		classifier = NewKeywordClassifier()
	}

	return &tripPlanner{
		completion: completion,
		store:      store,
		classifier: classifier,
		clock:      clock,
		log:        log,
		cfg:        cfg,
		retryCfg: retry.CompletionConfig.
			WithMaxAttempts(cfg.RetryAttempts).
			WithRetryIf(retry.SkipPermanent),
	}
}

// PlanTrip implements TripPlannerUseCase.PlanTrip.
//
// The day loop is strictly sequential by design: each day's prompt depends on
// the accumulated digest and ban lists of every previously planned day, so a
// parallel fan-out would break the no-repeat contract.
func (p *tripPlanner) PlanTrip(ctx context.Context, req PlanRequest) (*domain.ItineraryResult, error) {
	started := p.clock.Now()

	req.SetDefaults()
	if err := req.Trip.Validate(); err != nil {
		return nil, err
	}

	totalDays := req.Trip.TotalDays()
	if p.cfg.MaxTripDays > 0 && totalDays > p.cfg.MaxTripDays {
		return nil, fmt.Errorf("%w: trip spans %d days, limit is %d",
			domain.ErrInvalidRequest, totalDays, p.cfg.MaxTripDays)
	}

	endDay := req.EndDay
	if endDay <= 0 || endDay > totalDays {
		endDay = totalDays
	}
	if req.StartDay > endDay {
		return nil, fmt.Errorf("%w: start day %d is beyond the last plannable day %d",
			domain.ErrInvalidRequest, req.StartDay, endDay)
	}

	replan := req.IsReplan()
	mode := domain.ModeFresh
	if replan {
		mode = domain.ModeReplan
	}

	p.log.Info().
		Str("trip_id", req.Trip.ID).
		Str("destination", req.Trip.Destination).
		Str("mode", string(mode)).
		Int("start_day", req.StartDay).
		Int("end_day", endDay).
		Msg("Planning run started")

	flight, flightSource := p.resolveFlight(ctx, req.Trip, replan)

	// running accumulates context days plus everything planned so far;
	// planned holds only the days this run owes the caller.
	running := append([]domain.ItineraryDay(nil), req.contextDays()...)
	planned := make([]domain.ItineraryDay, 0, endDay-req.StartDay+1)
	substituted := 0

	for day := req.StartDay; day <= endDay; day++ {
		// Fallback substitution covers generation failures, not a caller
		// that has already walked away.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date, err := req.Trip.DateForDay(day)
		if err != nil {
			return nil, err
		}
		dateStr := date.Format(domain.DateFormat)

		prompt := buildDayPrompt(dayPromptInput{
			trip:      req.Trip,
			dayNumber: day,
			date:      dateStr,
			totalDays: totalDays,
			flight:    flight,
			replan:    replan,
			digest:    digestOf(running),
			banned:    newBanList(running, p.classifier),
		})

		activities, err := p.generateDay(ctx, day, prompt)

		var planDay domain.ItineraryDay
		if err != nil {
			p.log.Warn().Err(err).Int("day", day).Str("date", dateStr).
				Msg("Day generation failed, substituting fallback day")
			planDay = fallbackDay(day, dateStr, req.Trip.Destination)
			substituted++
		} else {
			planDay = domain.ItineraryDay{DayNumber: day, Date: dateStr, Activities: activities}
			if day == req.StartDay {
				p.persistHotel(ctx, req.Trip, planDay, replan)
			}
		}

		running = append(running, planDay)
		planned = append(planned, planDay)
	}

	finished := p.clock.Now()
	result := &domain.ItineraryResult{
		DailyItinerary: planned,
		Metadata: domain.PlanMetadata{
			TripID:          req.Trip.ID,
			Mode:            mode,
			DaysRequested:   endDay - req.StartDay + 1,
			DaysGenerated:   len(planned) - substituted,
			DaysSubstituted: substituted,
			FlightSource:    flightSource,
			GeneratedAt:     finished,
			DurationMs:      finished.Sub(started).Milliseconds(),
		},
	}

	p.log.Info().
		Str("trip_id", req.Trip.ID).
		Int("days", len(planned)).
		Int("substituted", substituted).
		Int64("duration_ms", result.Metadata.DurationMs).
		Msg("Planning run finished")

	return result, nil
}

// generateDay runs one day-planning completion call and decodes its result.
func (p *tripPlanner) generateDay(ctx context.Context, day int, prompt string) ([]domain.Activity, error) {
	req := domain.CompletionRequest{
		Prompt: prompt,
		Schema: activitiesSchema(),
	}

	result, err := retry.DoWithResult(ctx, func() (domain.CompletionResult, error) {
		cctx, cancel := context.WithTimeout(ctx, p.cfg.CompletionTimeout)
		defer cancel()
		return p.completion.Complete(cctx, req)
	}, p.retryCfg)
	if err != nil {
		return nil, domain.NewCompletionError("day_plan", err)
	}

	activities, err := DecodeActivities(result)
	if err != nil {
		p.log.Debug().Int("day", day).Str("payload", truncate(result.Text(), 300)).
			Msg("Unparseable day response")
		return nil, err
	}
	return activities, nil
}

// digestOf summarizes all accumulated days for prompt continuity.
func digestOf(days []domain.ItineraryDay) []string {
	lines := make([]string, 0, len(days))
	for _, day := range days {
		lines = append(lines, digestLine(day))
	}
	return lines
}

// persistHotel records a detected hotel check-in as a hotel component.
// When replanning, any previously persisted hotel is removed first; the two
// writes are independent and non-atomic. All failures are logged and
// swallowed.
func (p *tripPlanner) persistHotel(ctx context.Context, trip domain.TripRequest, day domain.ItineraryDay, replan bool) {
	if trip.ID == "" {
		return
	}

	var checkIn *domain.Activity
	for i := range day.Activities {
		if p.classifier.IsHotelCheckIn(day.Activities[i]) {
			checkIn = &day.Activities[i]
			break
		}
	}
	if checkIn == nil {
		return
	}

	if replan {
		p.removeStoredHotels(ctx, trip.ID)
	}

	component := domain.TripComponent{
		TripID:      trip.ID,
		Type:        domain.ComponentHotel,
		Title:       checkIn.Location.Name,
		Description: checkIn.Description,
		Price:       checkIn.PriceEstimate,
		Hotel: &domain.HotelDetails{
			Address:   checkIn.Location.Address,
			Latitude:  checkIn.Location.Latitude,
			Longitude: checkIn.Location.Longitude,
		},
		CreatedAt: p.clock.Now(),
	}
	if component.Title == "" {
		component.Title = checkIn.Title
	}

	if _, err := p.store.Create(ctx, component); err != nil {
		p.log.Error().Err(err).Str("trip_id", trip.ID).Msg("Failed to persist hotel component")
	}
}

// removeStoredHotels deletes existing hotel components for the trip.
func (p *tripPlanner) removeStoredHotels(ctx context.Context, tripID string) {
	components, err := p.store.ListByTrip(ctx, tripID)
	if err != nil {
		p.log.Warn().Err(err).Str("trip_id", tripID).Msg("Could not list components for hotel replacement")
		return
	}
	for _, c := range components {
		if c.Type != domain.ComponentHotel {
			continue
		}
		if err := p.store.Delete(ctx, c.ID); err != nil {
			p.log.Warn().Err(err).Str("component_id", c.ID).Msg("Could not delete stale hotel component")
		}
	}
}

// Ensure tripPlanner implements TripPlannerUseCase at compile time.
var _ TripPlannerUseCase = (*tripPlanner)(nil)
