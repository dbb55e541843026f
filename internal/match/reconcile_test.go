package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fixture(id uint, kickoff time.Time) Match {
	return Match{Model: gorm.Model{ID: id}, TeamID: 1, Opponent: "Opponent", KickoffAt: kickoff}
}

func TestReconcilePartition(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		fixture(1, now.Add(-48*time.Hour)), // T-2
		fixture(2, now.Add(-24*time.Hour)), // T-1
		fixture(3, now.Add(24*time.Hour)),  // T+1
		fixture(4, now.Add(72*time.Hour)),  // T+3
	}

	p := Reconcile(matches, now)

	require.NotNil(t, p.Next)
	require.Equal(t, uint(3), p.Next.ID, "earliest future fixture becomes next")

	require.Len(t, p.Last, 3)
	require.Equal(t, uint(4), p.Last[0].ID, "remaining future fixture sorts first")
	require.Equal(t, uint(2), p.Last[1].ID)
	require.Equal(t, uint(1), p.Last[2].ID)
}

func TestReconcileIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		fixture(1, now.Add(-time.Hour)),
		fixture(2, now.Add(time.Hour)),
		fixture(3, now.Add(2*time.Hour)),
	}

	first := Reconcile(matches, now)
	second := Reconcile(matches, now)

	require.Equal(t, first.Next.ID, second.Next.ID)
	require.Equal(t, first.Last, second.Last)
}

func TestReconcileNoFutureMatches(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	matches := []Match{
		fixture(1, now.Add(-48*time.Hour)),
		fixture(2, now.Add(-24*time.Hour)),
	}

	p := Reconcile(matches, now)
	require.Nil(t, p.Next, "an all-past set clears the pointer")
	require.Len(t, p.Last, 2)
	require.Equal(t, uint(2), p.Last[0].ID)
}

func TestReconcileEmptySet(t *testing.T) {
	p := Reconcile(nil, time.Now())
	require.Nil(t, p.Next)
	require.Empty(t, p.Last)
}

func TestReconcileKickoffExactlyNowIsPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	matches := []Match{fixture(1, now)}

	p := Reconcile(matches, now)
	require.Nil(t, p.Next, "only strictly future fixtures qualify")
	require.Len(t, p.Last, 1)
}

func TestReconcileTieBrokenByInsertionOrder(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	kickoff := now.Add(24 * time.Hour)
	matches := []Match{
		fixture(1, kickoff),
		fixture(2, kickoff),
	}

	p := Reconcile(matches, now)
	require.NotNil(t, p.Next)
	require.Equal(t, uint(1), p.Next.ID)

	// Same-time entries in the past keep their relative order.
	past := []Match{
		fixture(3, now.Add(-time.Hour)),
		fixture(4, now.Add(-time.Hour)),
	}
	pp := Reconcile(past, now)
	require.Equal(t, uint(3), pp.Last[0].ID)
	require.Equal(t, uint(4), pp.Last[1].ID)
}
