package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/clock"
	"github.com/mn-frappe/ebalance/internal/config"
	"github.com/mn-frappe/ebalance/internal/db"
	"github.com/mn-frappe/ebalance/internal/ledger"
	ledgerdomain "github.com/mn-frappe/ebalance/internal/ledger/domain"
	"github.com/mn-frappe/ebalance/internal/logger"
	"github.com/mn-frappe/ebalance/internal/mapping"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	"github.com/mn-frappe/ebalance/internal/report"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"github.com/mn-frappe/ebalance/internal/scheduler"
	"github.com/mn-frappe/ebalance/internal/server"
	"github.com/mn-frappe/ebalance/internal/submissionlog"
	sldomain "github.com/mn-frappe/ebalance/internal/submissionlog/domain"
	"github.com/mn-frappe/ebalance/internal/taxonomy"
	"github.com/mn-frappe/ebalance/internal/tracing"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		tracing.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(migrate),
		ledger.Module,
		mapping.Module,
		submissionlog.Module,
		period.Module,
		mof.Module,
		report.Module,
		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&ledgerdomain.Account{},
		&ledgerdomain.Balance{},
		&mappingdomain.AccountMapping{},
		&reportdomain.ReportRequest{},
		&sldomain.Entry{},
		&period.ReportPeriod{},
	); err != nil {
		return err
	}
	return taxonomy.Seed(conn)
}
