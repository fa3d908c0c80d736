package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights/infrastructure/dataset/csvfile"
	"github.com/vfg2006/sales-insights/infrastructure/dataset/remote"
	"github.com/vfg2006/sales-insights/internal/api"
	"github.com/vfg2006/sales-insights/internal/config"
	"github.com/vfg2006/sales-insights/internal/scheduler"
	"github.com/vfg2006/sales-insights/internal/usecases/reporting"
	"github.com/vfg2006/sales-insights/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(os.Stdout, cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := csvfile.NewLoader(csvfile.WithRemote(remote.NewClient(cfg), remote.IsURL))

	reportService, err := reporting.NewService(cfg, loader)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar os datasets")
	}

	// Falhas aqui não derrubam o servidor: o dataset com problema responde com erro até ser corrigido
	startupCtx, _ := log.WithCorrelationID(ctx)
	if err := reportService.RefreshAll(startupCtx); err != nil {
		logrus.WithError(err).Warn("Nem todos os datasets puderam ser carregados na inicialização")
	} else {
		logrus.WithField("datasets", len(cfg.Dataset.Paths)).Info("Relatórios iniciais gerados com sucesso")
	}

	refreshService := scheduler.NewReportRefreshService(reportService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização dos relatórios")
	}

	server, err := api.New(cfg, reportService, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
