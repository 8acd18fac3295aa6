package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/soccerstats/dashboard-api/internal/usecase"
)

func TestMarkUnavailable(t *testing.T) {
	t.Run("driver errors are classified", func(t *testing.T) {
		err := markUnavailable(sql.ErrConnDone)
		if !errors.Is(err, usecase.ErrDataSourceUnavailable) {
			t.Fatalf("expected ErrDataSourceUnavailable, got %v", err)
		}
		if !errors.Is(err, sql.ErrConnDone) {
			t.Fatalf("expected original error in chain, got %v", err)
		}
	})

	t.Run("classification survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("select team stats: %w", markUnavailable(sql.ErrConnDone))
		if !errors.Is(err, usecase.ErrDataSourceUnavailable) {
			t.Fatalf("expected ErrDataSourceUnavailable, got %v", err)
		}
	})

	t.Run("nil and not-found pass through", func(t *testing.T) {
		if err := markUnavailable(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if err := markUnavailable(sql.ErrNoRows); errors.Is(err, usecase.ErrDataSourceUnavailable) {
			t.Fatalf("not-found must not be classified as unavailable: %v", err)
		}
	})
}
