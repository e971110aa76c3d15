package services

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/little-lemon/models"
)

type SearchResult struct {
	Query    string            `json:"query"`
	Category string            `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

// SearchSession debounces menu filtering for one search box. Results go to
// the deliver callback, one call at a time.
type SearchSession struct {
	menu      *MenuService
	debouncer *Debouncer
	deliver   func(SearchResult)

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex

	// gen naik setiap Update; hasil dengan gen lama dibuang.
	gen        uint64
	taskCancel context.CancelFunc
}

func NewSearchSession(menu *MenuService, delay time.Duration, deliver func(SearchResult)) *SearchSession {
	ctx, cancel := context.WithCancel(context.Background())
	return &SearchSession{
		menu:      menu,
		debouncer: NewDebouncer(delay),
		deliver:   deliver,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Update schedules a filter for the latest query and category. A filter
// still waiting for its delay is replaced, and one already running is
// cancelled and its result dropped.
func (s *SearchSession) Update(query, category string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.taskCancel != nil {
		s.taskCancel()
	}
	taskCtx, taskCancel := context.WithCancel(s.ctx)
	s.taskCancel = taskCancel
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		items := s.menu.FilterMenu(taskCtx, query, category)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen || taskCtx.Err() != nil {
			return
		}
		s.deliver(SearchResult{Query: query, Category: category, Items: items})
	})
}

// Close drops the pending filter and aborts one already running. No result
// is delivered once Close returns.
func (s *SearchSession) Close() {
	s.debouncer.Stop()

	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
}
