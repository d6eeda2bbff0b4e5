package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 10 * time.Minute

type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

// Every registra um job com expressão cron padrão (5 campos). Cada execução
// recebe seu próprio contexto com timeout.
func (s *Scheduler) Every(spec, name string, job func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		log.Printf("[scheduler] %s started", name)
		if err := job(ctx); err != nil {
			log.Printf("[scheduler] %s failed: %v", name, err)
			return
		}
		log.Printf("[scheduler] %s finished in %v", name, time.Since(start))
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[scheduler] started with %d job(s)", len(s.cron.Entries()))
}

// Stop espera os jobs em andamento terminarem.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
