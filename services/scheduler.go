package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"impostor-game-server/store"
)

// StartTurnTimeoutScheduler sweeps games whose turn timer has expired and
// force-advances them. Timers are advisory wall-clock deadlines; clients may
// also fire the timeout themselves, so the engine treats redundant calls as
// no-ops and the sweep only has to be roughly on time.
func (s *GameService) StartTurnTimeoutScheduler(st store.Store) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(5*time.Second),
		gocron.NewTask(func() {
			games, err := st.GamesWithRunningTimers()
			if err != nil {
				log.Printf("[TurnTimeout] store error: %v", err)
				return
			}

			now := time.Now()
			for _, g := range games {
				if now.Before(g.TurnDeadline()) {
					continue
				}
				if err := s.Engine.TimeoutTurn(g.ID); err != nil {
					log.Printf("[TurnTimeout] game %s: %v", g.ID, err)
				}
			}
		}),
	)
}
