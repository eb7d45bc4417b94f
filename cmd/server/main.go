package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/mhmmdslmnfslnust/Capacitor/internal/adapter/grpc"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/adapter/repository/memory"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/adapter/repository/postgres"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/config"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/goal"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/investment"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/ledger"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/recommendation"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/reporting"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/seeder"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/session"
)

const dbConnectAttempts = 5

func main() {
	// 1. Load configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// 2. Initialize Repositories
	transactionRepo, marketValueRepo, closeRepos := openRepositories(ctx, cfg.Database)
	defer closeRepos()

	// 3. Initialize Services (Use Cases)
	modeOpts := append(cfg.Mode.Options(), mode.WithLogger(log.Default()))
	sessions, err := session.NewManager(cfg.Budget.DefaultStrategy, modeOpts...)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}
	ledgerService := ledger.NewLedgerService(transactionRepo, sessions)
	goalService := goal.NewGoalService()
	investmentService := investment.NewInvestmentService(marketValueRepo)
	reportingService := reporting.NewReportingService(marketValueRepo)
	engine := recommendation.NewEngine()

	// Seed the demo user; with a persistent ledger this restores its balances and mode
	if cfg.SeedDemo {
		demoSeeder := seeder.NewDemoSeeder(sessions, ledgerService, goalService)
		user, err := demoSeeder.Seed(ctx)
		if err != nil {
			log.Fatalf("Failed to seed demo user: %v", err)
		}
		log.Printf("Demo user %s ready in %s", user.ID, user.FinancialMode())
	}

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
			grpcadapter.LoggingInterceptor(log.Default()),
		),
	)

	grpcAdapter := grpcadapter.NewServer(sessions, ledgerService, goalService, investmentService, reportingService, engine)
	grpcadapter.RegisterFinanceServiceServer(grpcServer, grpcAdapter)

	lis, err := net.Listen("tcp", cfg.Server.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCPort, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s (ledger backend: %s)", cfg.Server.GRPCPort, cfg.Database.Backend)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// openRepositories builds the ledger storage for the configured backend.
// The returned func releases it.
func openRepositories(ctx context.Context, cfg config.DatabaseConfig) (domain.TransactionRepository, domain.MarketValueRepository, func()) {
	if cfg.Backend == config.BackendMemory {
		log.Println("Using in-memory ledger; transactions are lost on restart")
		return memory.NewTransactionRepository(), memory.NewMarketValueRepository(), func() {}
	}

	db, err := connect(cfg.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	return postgres.NewTransactionRepository(db), postgres.NewMarketValueRepository(db), closeDB
}

// connect retries while Postgres is still starting up (docker compose)
func connect(connStr string) (*postgres.DB, error) {
	var err error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		var db *postgres.DB
		if db, err = postgres.NewDB(connStr); err == nil {
			return db, nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, dbConnectAttempts, err)
		time.Sleep(2 * time.Second)
	}
	return nil, err
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
