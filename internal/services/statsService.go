package services

import (
	"context"
	"sync"
)

// CountStore is any store that can report how many documents it holds.
type CountStore interface {
	Count(ctx context.Context) (int64, error)
}

type StatusCountStore interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// Stats backs the admin dashboard tiles.
type Stats struct {
	Treks            int64            `json:"treks"`
	Outings          int64            `json:"outings"`
	GalleryImages    int64            `json:"galleryImages"`
	Users            int64            `json:"users"`
	ContactsByStatus map[string]int64 `json:"contactsByStatus"`
}

type StatsService struct {
	treks    CountStore
	outings  CountStore
	gallery  CountStore
	users    CountStore
	contacts StatusCountStore
}

func NewStatsService(treks, outings, gallery, users CountStore, contacts StatusCountStore) *StatsService {
	return &StatsService{treks: treks, outings: outings, gallery: gallery, users: users, contacts: contacts}
}

// Overview fans the counts out in parallel; each is an independent
// round-trip to the store.
func (s *StatsService) Overview(ctx context.Context) (Stats, error) {
	var (
		stats Stats
		errs  [5]error
		wg    sync.WaitGroup
	)

	count := func(dst *int64, slot int, store CountStore) {
		defer wg.Done()
		n, err := store.Count(ctx)
		*dst, errs[slot] = n, err
	}

	wg.Add(5)
	go count(&stats.Treks, 0, s.treks)
	go count(&stats.Outings, 1, s.outings)
	go count(&stats.GalleryImages, 2, s.gallery)
	go count(&stats.Users, 3, s.users)
	go func() {
		defer wg.Done()
		stats.ContactsByStatus, errs[4] = s.contacts.CountByStatus(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Stats{}, err
		}
	}
	return stats, nil
}
