package store

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// The in-memory database lives per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSequenceCounterMonotonic(t *testing.T) {
	sc, err := newSequenceCounter(openTestDB(t))
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	ctx := context.Background()
	for want := int64(1); want <= 5; want++ {
		got, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestSequenceCounterSurvivesReopen(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}
	if _, err := sc.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := sc.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}

	// A second counter over the same database continues, not restarts.
	sc2, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("second counter: %v", err)
	}
	got, err := sc2.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got != 3 {
		t.Errorf("Next() after reopen = %d, want 3", got)
	}
}

func TestSequenceCounterConcurrentUnique(t *testing.T) {
	sc, err := newSequenceCounter(openTestDB(t))
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	results := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := sc.Next(context.Background())
			if err != nil {
				t.Errorf("Next: %v", err)
				return
			}
			results <- seq
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for seq := range results {
		if seen[seq] {
			t.Errorf("duplicate sequence %d", seq)
		}
		seen[seq] = true
	}
}
