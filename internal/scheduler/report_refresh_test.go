package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights/internal/config"
	"github.com/vfg2006/sales-insights/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-insights/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func refreshConfig(cron string, enabled bool) *config.Config {
	return &config.Config{
		Dataset: config.Dataset{
			Paths:          []string{"sales.csv"},
			RefreshCron:    cron,
			RefreshEnabled: enabled,
		},
	}
}

func TestReportRefreshService_refreshReports(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(service *mocks.MockReportService)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Atualização bem sucedida - não deve registrar erro",
			setup: func(service *mocks.MockReportService) {
				service.EXPECT().RefreshAll(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
					assert.NotEmpty(t, log.GetCorrelationID(ctx), "cada execução deve ter correlation id")
					return nil
				})
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["refresh_running"])
				assert.Equal(t, "", status["last_refresh_error"])
				assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Falha em algum dataset - deve guardar o último erro",
			setup: func(service *mocks.MockReportService) {
				service.EXPECT().RefreshAll(gomock.Any()).Return(errors.New("dataset north: load failed"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["refresh_running"])
				assert.Equal(t, "dataset north: load failed", status["last_refresh_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reportService := mocks.NewMockReportService(ctrl)
			tt.setup(reportService)

			service := NewReportRefreshService(reportService, refreshConfig("*/15 * * * *", true))
			service.refreshReports()

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestReportRefreshService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	reportService := mocks.NewMockReportService(ctrl)
	reportService.EXPECT().RefreshAll(gomock.Any()).Times(0)

	service := NewReportRefreshService(reportService, refreshConfig("*/15 * * * *", true))
	service.refreshRunning = true

	service.refreshReports()
	service.TriggerManualSync()

	assert.Equal(t, true, service.GetStatus()["refresh_running"])
}

func TestReportRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	reportService := mocks.NewMockReportService(ctrl)

	done := make(chan struct{})
	reportService.EXPECT().RefreshAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(done)
		return nil
	})

	service := NewReportRefreshService(reportService, refreshConfig("*/15 * * * *", false))
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("atualização manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["last_refresh_completed_at"].(time.Time).IsZero()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReportRefreshService_Start(t *testing.T) {
	t.Run("Desabilitado - não deve agendar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewReportRefreshService(mocks.NewMockReportService(ctrl), refreshConfig("invalid", false))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválido - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewReportRefreshService(mocks.NewMockReportService(ctrl), refreshConfig("not a cron", true))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado - deve agendar e parar com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewReportRefreshService(mocks.NewMockReportService(ctrl), refreshConfig("0 3 * * *", true))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, 2*time.Second, 10*time.Millisecond)
	})
}
