package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/repo"
)

func TestObjectiveRepo_Upsert_InsertThenUpdate(t *testing.T) {
	r := repo.NewObjectiveRepo(newTestTx(t))
	ctx := context.Background()

	flag, err := r.Upsert(ctx, domain.ObjectiveFlag{
		Name:      "Alternative Power",
		Completed: true,
		Notes:     "ran on battery all weekend",
	})
	require.NoError(t, err)
	assert.True(t, flag.Completed)
	require.NotNil(t, flag.CompletedAt, "completing a flag must stamp completed_at")

	firstCompletedAt := *flag.CompletedAt

	// Re-upserting an already-completed flag keeps the original timestamp.
	flag, err = r.Upsert(ctx, domain.ObjectiveFlag{Name: "Alternative Power", Completed: true})
	require.NoError(t, err)
	require.NotNil(t, flag.CompletedAt)
	assert.True(t, flag.CompletedAt.Equal(firstCompletedAt))

	// Un-completing clears the timestamp.
	flag, err = r.Upsert(ctx, domain.ObjectiveFlag{Name: "Alternative Power", Completed: false})
	require.NoError(t, err)
	assert.False(t, flag.Completed)
	assert.Nil(t, flag.CompletedAt)
}

func TestObjectiveRepo_List(t *testing.T) {
	r := repo.NewObjectiveRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Upsert(ctx, domain.ObjectiveFlag{Name: "Winlink Email", Completed: true})
	require.NoError(t, err)
	_, err = r.Upsert(ctx, domain.ObjectiveFlag{Name: "Away from Home", Completed: false})
	require.NoError(t, err)

	flags, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "Away from Home", flags[0].Name, "flags ordered by name")
	assert.Equal(t, "Winlink Email", flags[1].Name)
}
