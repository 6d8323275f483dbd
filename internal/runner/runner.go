// Package runner drives the periodic holiday checks and announcement job
// delivery. Each tick evaluates every guild, executes the resulting intents
// through the notifier, and commits what was actually applied.
package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/role"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/service"
)

// GuildSource enumerates the guilds to evaluate and their members. The
// Discord session provides the real implementation.
type GuildSource interface {
	GuildIDs() []string
	MemberIDs(guildID string) ([]string, error)
}

type Runner struct {
	services *service.Instance
	notifier contract.Notifier
	guilds   GuildSource
	interval time.Duration
	log      zerolog.Logger

	ticker *time.Ticker
	done   chan struct{}
}

func New(services *service.Instance, notifier contract.Notifier, guilds GuildSource, interval time.Duration, log zerolog.Logger) *Runner {
	return &Runner{
		services: services,
		notifier: notifier,
		guilds:   guilds,
		interval: interval,
		log:      log.With().Str("component", "runner").Logger(),
		done:     make(chan struct{}),
	}
}

// Start launches the periodic loop. The first pass runs immediately so a
// restart after downtime catches up without waiting a full interval.
func (r *Runner) Start() {
	r.ticker = time.NewTicker(r.interval)
	go func() {
		r.RunOnce(context.Background())
		for {
			select {
			case <-r.done:
				r.log.Info().Msg("runner stopped")
				return
			case <-r.ticker.C:
				r.RunOnce(context.Background())
			}
		}
	}()
	r.log.Info().Dur("interval", r.interval).Msg("runner started")
}

func (r *Runner) Stop() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
	close(r.done)
}

// RunOnce performs one full pass: holiday evaluation per guild, then the
// announcement job queue. Errors are logged per item so one broken guild or
// job never stalls the rest.
func (r *Runner) RunOnce(ctx context.Context) {
	now := time.Now().UTC()

	for _, guildID := range r.guilds.GuildIDs() {
		if err := r.checkGuild(ctx, guildID, now); err != nil {
			r.log.Error().Str("guild_id", guildID).Err(err).Msg("holiday check failed")
		}
	}

	if err := r.deliverDueJobs(ctx, now); err != nil {
		r.log.Error().Err(err).Msg("job delivery failed")
	}
}

func (r *Runner) checkGuild(ctx context.Context, guildID string, now time.Time) error {
	eval, err := r.services.Holiday.CheckHolidays(ctx, guildID, now)
	if err != nil {
		return err
	}
	if len(eval.Changes) == 0 && len(eval.DuePhases) == 0 {
		return nil
	}

	if eval.DryRun {
		for _, change := range eval.Changes {
			r.log.Info().Str("guild_id", guildID).Str("role", change.RoleName).Bool("became_active", change.BecameActive).Msg("dry run: would sync role")
		}
		for _, phase := range eval.DuePhases {
			r.log.Info().Str("guild_id", guildID).Str("holiday", phase.Holiday.Name).Str("phase", string(phase.Phase)).Msg("dry run: would announce")
		}
		return nil
	}

	outcome := entity.EvaluationOutcome{}

	for _, change := range eval.Changes {
		var assignees []string
		if change.BecameActive {
			assignees, err = r.assignees(ctx, guildID)
			if err != nil {
				r.log.Error().Str("guild_id", guildID).Err(err).Msg("failed to resolve assignees")
				continue
			}
		}
		if err := r.notifier.SyncRole(ctx, guildID, change, assignees); err != nil {
			r.log.Error().Str("guild_id", guildID).Str("role", change.RoleName).Err(err).Msg("role sync failed")
			continue
		}
		outcome.AppliedChanges = append(outcome.AppliedChanges, change)
	}

	for _, phase := range eval.DuePhases {
		if err := r.notifier.SendMessage(ctx, phase.ChannelID, phase.Message); err != nil {
			r.log.Error().Str("guild_id", guildID).Str("holiday", phase.Holiday.Name).Str("phase", string(phase.Phase)).Err(err).Msg("announcement failed")
			continue
		}
		outcome.SentPhases = append(outcome.SentPhases, phase)
	}

	return r.services.Holiday.CommitEvaluation(ctx, eval, outcome)
}

// assignees is the full member list minus opted-out members. Opt-outs apply
// to assignment only; removal on deactivation covers every holder.
func (r *Runner) assignees(ctx context.Context, guildID string) ([]string, error) {
	members, err := r.guilds.MemberIDs(guildID)
	if err != nil {
		return nil, err
	}
	optOuts, err := r.services.Holiday.OptOuts(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return role.Assignees(members, optOuts), nil
}

func (r *Runner) deliverDueJobs(ctx context.Context, now time.Time) error {
	due, err := r.services.Scheduler.PollDue(ctx, now)
	if err != nil {
		return err
	}

	for _, item := range due {
		job := item.Job
		if err := r.notifier.SendMessage(ctx, job.ChannelID, job.Render()); err != nil {
			// Not marked fired: the job stays due and retries next tick.
			r.log.Error().Str("job_id", job.ID).Err(err).Msg("scheduled announcement failed")
			continue
		}
		if err := r.services.Scheduler.MarkFired(ctx, job.ID, now); err != nil {
			r.log.Error().Str("job_id", job.ID).Err(err).Msg("failed to mark job fired")
		}
	}
	return nil
}
