package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// schema cria as tabelas na ordem das dependências
var schema = []string{
	`CREATE TABLE IF NOT EXISTS actors (
		id         VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		capability VARCHAR(32) NOT NULL CHECK (capability IN ('sales', 'orders', 'sales_orders', 'all')),
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id         VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		manager_id VARCHAR(32) REFERENCES actors (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		team_id  VARCHAR(32) NOT NULL REFERENCES teams (id) ON DELETE CASCADE,
		actor_id VARCHAR(32) NOT NULL REFERENCES actors (id),
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (team_id, actor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS target_requests (
		id               UUID PRIMARY KEY,
		category         VARCHAR(16) NOT NULL,
		amount           NUMERIC(14, 2) NOT NULL,
		quantity         NUMERIC(14, 2) NOT NULL,
		month            SMALLINT NOT NULL CHECK (month BETWEEN 1 AND 12),
		year             SMALLINT NOT NULL,
		requested_by     INTEGER NOT NULL,
		recipients_count INTEGER NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS target_records (
		id         VARCHAR(32) PRIMARY KEY,
		request_id UUID NOT NULL REFERENCES target_requests (id) ON DELETE CASCADE,
		actor_id   VARCHAR(32) NOT NULL REFERENCES actors (id),
		category   VARCHAR(16) NOT NULL,
		month      SMALLINT NOT NULL CHECK (month BETWEEN 1 AND 12),
		year       SMALLINT NOT NULL,
		amount     NUMERIC(14, 2) NOT NULL,
		quantity   NUMERIC(14, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_target_records_period ON target_records (category, year, month)`,
	`CREATE INDEX IF NOT EXISTS idx_target_records_actor ON target_records (actor_id)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          VARCHAR(32) PRIMARY KEY,
		seller_id   VARCHAR(32) NOT NULL REFERENCES actors (id),
		net_amount  NUMERIC(14, 2) NOT NULL,
		items_count NUMERIC(14, 2) NOT NULL DEFAULT 1,
		sold_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales (sold_at)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          VARCHAR(32) PRIMARY KEY,
		employee_id VARCHAR(32) NOT NULL REFERENCES actors (id),
		total_value NUMERIC(14, 2) NOT NULL,
		quantity    NUMERIC(14, 2) NOT NULL DEFAULT 1,
		ordered_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_ordered_at ON orders (ordered_at)`,
}

type seedActor struct {
	Name       string
	Capability domain.Capability
}

var seedActors = []seedActor{
	{Name: "Ana Souza", Capability: domain.CapabilitySales},
	{Name: "Bruno Lima", Capability: domain.CapabilitySalesOrders},
	{Name: "Carla Dias", Capability: domain.CapabilityOrders},
	{Name: "Diego Alves", Capability: domain.CapabilityAll},
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return errors.Wrapf(err, "erro ao executar instrução %d do schema", i+1)
		}
	}
	logrus.WithField("statements", len(schema)).Info("Schema criado")
	return nil
}

// seed insere colaboradores, um time e um mês de transações para demonstração
func seed(ctx context.Context, tx *sql.Tx, now time.Time) error {
	startTime := time.Now()

	actorIDs := make([]string, 0, len(seedActors))
	for _, actor := range seedActors {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar ID do colaborador")
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO actors (id, name, capability) VALUES ($1, $2, $3)`,
			id, actor.Name, actor.Capability); err != nil {
			return errors.Wrapf(err, "erro ao inserir colaborador %s", actor.Name)
		}
		actorIDs = append(actorIDs, id)
	}

	teamID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar ID do time")
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO teams (id, name, manager_id) VALUES ($1, $2, $3)`,
		teamID, "Loja Centro", actorIDs[len(actorIDs)-1]); err != nil {
		return errors.Wrap(err, "erro ao inserir time")
	}

	for position, actorID := range actorIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO team_members (team_id, actor_id, position) VALUES ($1, $2, $3)`,
			teamID, actorID, position); err != nil {
			return errors.Wrap(err, "erro ao inserir membro do time")
		}
	}

	firstDay := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC)
	transactions := 0
	for i, actorID := range actorIDs {
		capability := seedActors[i].Capability
		amount := decimal.NewFromInt(int64(1000 * (i + 1)))

		if domain.IsCompatible(capability, domain.CategorySales) {
			id, err := utils.GenerateID()
			if err != nil {
				return errors.Wrap(err, "erro ao gerar ID da venda")
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO sales (id, seller_id, net_amount, items_count, sold_at) VALUES ($1, $2, $3, $4, $5)`,
				id, actorID, amount, i+1, firstDay.AddDate(0, 0, i)); err != nil {
				return errors.Wrap(err, "erro ao inserir venda")
			}
			transactions++
		}

		if domain.IsCompatible(capability, domain.CategoryOrders) {
			id, err := utils.GenerateID()
			if err != nil {
				return errors.Wrap(err, "erro ao gerar ID do pedido")
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO orders (id, employee_id, total_value, quantity, ordered_at) VALUES ($1, $2, $3, $4, $5)`,
				id, actorID, amount.Div(decimal.NewFromInt(2)), 1, firstDay.AddDate(0, 0, i)); err != nil {
				return errors.Wrap(err, "erro ao inserir pedido")
			}
			transactions++
		}
	}

	logrus.WithFields(logrus.Fields{
		"actors":       len(actorIDs),
		"team":         teamID,
		"transactions": transactions,
		"elapsed":      time.Since(startTime).String(),
	}).Info("Dados de demonstração inseridos")

	return nil
}

func main() {
	seedFlag := flag.Bool("seed", false, "insere dados de demonstração após criar o schema")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel, cfg.App.Environment); err != nil {
		logrus.WithError(err).Warn("Nível de log inválido, usando 'info'")
	}

	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	withSeed := *seedFlag || cfg.Database.Seed

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if withSeed {
			return seed(ctx, tx, time.Now())
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração abortada, nenhuma alteração foi aplicada")
	}

	logrus.Info("Migração concluída com sucesso")
}
