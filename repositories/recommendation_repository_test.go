package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationRepository_TopRated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")

	// b and a tie on 4.5; ids decide the order.
	b := f.book(t, "00000000-0000-0000-0000-00000000000b", "B", "Writer")
	a := f.book(t, "00000000-0000-0000-0000-00000000000a", "A", "Writer")
	c := f.book(t, "00000000-0000-0000-0000-00000000000c", "C", "Writer")
	deleted := f.book(t, "00000000-0000-0000-0000-00000000000d", "D", "Writer")
	f.book(t, "00000000-0000-0000-0000-00000000000e", "E", "Writer")

	f.rate(t, b, alice, 4.0)
	f.rate(t, b, bob, 5.0)
	f.rate(t, a, alice, 4.5)
	f.rate(t, c, alice, 1.0)
	f.rate(t, deleted, alice, 5.0)
	require.NoError(t, f.books.SoftDelete(ctx, deleted.ID))

	rows, err := f.ranking.TopRated(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, a.ID, rows[0].Book.ID)
	assert.Equal(t, b.ID, rows[1].Book.ID)
	assert.Equal(t, c.ID, rows[2].Book.ID)
	assert.InDelta(t, 4.5, rows[0].AverageRating, 1e-9)
	assert.InDelta(t, 4.5, rows[1].AverageRating, 1e-9)
	assert.InDelta(t, 1.0, rows[2].AverageRating, 1e-9)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].AverageRating, rows[i].AverageRating)
	}

	top, err := f.ranking.TopRated(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, a.ID, top[0].Book.ID)

	none, err := f.ranking.TopRated(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
