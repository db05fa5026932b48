package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/runoshun/pomodoro/internal/testutil"
	"github.com/runoshun/pomodoro/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		cfg := domain.NewDefaultConfig()

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Config: cfg})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/pomodoro/config.toml", out.Path)
		assert.True(t, manager.InitCalled)
		assert.Same(t, cfg, manager.InitWith)
	})

	t.Run("uses defaults when no config is given", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		require.NotNil(t, manager.InitWith)
		assert.Equal(t, domain.DefaultPomodoroMinutes, manager.InitWith.Pomodoro.Minutes)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.Info.Exists = true
		manager.InitErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
