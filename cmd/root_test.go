package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrad-K/hh-vacancies/internal/config"
	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/domain/repository"
	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/logger"
)

func TestCriteriaFlags(t *testing.T) {
	t.Run("only changed flags", func(t *testing.T) {
		var f criteriaFlags
		c := &cobra.Command{Use: "x"}
		f.register(c)
		require.NoError(t, c.ParseFlags([]string{"--min-salary", "0", "--title", "Go"}))

		crit := f.criteria(c)
		require.NotNil(t, crit.Title)
		assert.Equal(t, "Go", *crit.Title)
		require.NotNil(t, crit.MinSalary)
		assert.Equal(t, 0, *crit.MinSalary)
		assert.Nil(t, crit.MaxSalary)
	})

	t.Run("no flags", func(t *testing.T) {
		var f criteriaFlags
		c := &cobra.Command{Use: "x"}
		f.register(c)
		require.NoError(t, c.ParseFlags(nil))
		assert.Equal(t, repository.Criteria{}, f.criteria(c))
	})
}

func TestNewRepository_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Store.DataDir = filepath.Join(t.TempDir(), "data")

	repo, closeRepo, err := newRepository(context.Background(), &cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer closeRepo()

	store, ok := repo.(*infra.JSONVacancyStore)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(cfg.Store.DataDir, "vacancies.json"), store.Path())

	require.NoError(t, repo.Add(context.Background(), model.Vacancy{ID: "1", Title: "Go"}))
	res, err := repo.Query(context.Background(), repository.Criteria{})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestNewRepository_RedisUnreachable(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = config.RedisBackend
	cfg.Store.RedisAddress = "127.0.0.1:1"

	_, _, err := newRepository(context.Background(), &cfg, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"fetch", "list", "delete", "search", "export"} {
		assert.True(t, names[want], want)
	}
}
