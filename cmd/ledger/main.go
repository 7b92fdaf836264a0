package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin"

	"mini-ledger/internal/config"
	"mini-ledger/internal/domain"
	"mini-ledger/internal/gateway"
	applog "mini-ledger/internal/log"
	"mini-ledger/internal/report"
	"mini-ledger/internal/usecase"
)

func main() {
	app := kingpin.New("ledger", "Personal finance ledger backed by a CSV file.")
	dataFile := app.Flag("data-file", "Path to the transactions CSV file (default "+domain.DefaultDataFile+")").Envar(config.EnvDataFile).String()
	logLevel := app.Flag("log-level", "Log level: debug, info, warn, error").Envar(config.EnvLogLevel).String()
	envFile := app.Flag("env-file", "Load environment variables from this file").String()

	cmdInit := app.Command("init", "Create the transactions file if it does not exist")

	cmdAdd := app.Command("add", "Add a new transaction")
	addDate := cmdAdd.Flag("date", "Transaction date (dd-mm-yyyy), defaults to today").String()
	addAmount := cmdAdd.Flag("amount", "Transaction amount").Required().String()
	addCategory := cmdAdd.Flag("category", "Category: 'I' for Income, 'E' for Expense, or any label").Required().String()
	addDescription := cmdAdd.Flag("description", "Optional description").String()

	cmdView := app.Command("view", "View transactions and summary within a date range")
	viewStart := cmdView.Flag("start", "Start date (dd-mm-yyyy)").Required().String()
	viewEnd := cmdView.Flag("end", "End date (dd-mm-yyyy)").Required().String()
	viewXLSX := cmdView.Flag("xlsx", "Also write a workbook with a daily income/expense chart to this file").String()
	viewSeries := cmdView.Flag("series", "Print the daily income/expense series").Bool()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// --- Configuration ---
	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Override(config.Config{DataFile: *dataFile, LogLevel: *logLevel}); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logConfig := applog.DefaultConfig()
	logConfig.Level, _ = applog.ParseLevel(cfg.LogLevel)
	logger := applog.New(logConfig)
	applog.SetDefault(logger)

	// --- Dependency Injection ---
	store := gateway.NewCSVTransactionStore(cfg.DataFile, domain.DefaultSchema(), logger)
	logger.Debug("Using data file", applog.FieldPath, store.Path())
	ledger := usecase.NewLedgerUseCase(store)
	ctx := context.Background()

	switch cmd {
	case cmdInit.FullCommand():
		err = ledger.Initialize(ctx)

	case cmdAdd.FullCommand():
		err = add(ctx, ledger, *addDate, *addAmount, *addCategory, *addDescription)

	case cmdView.FullCommand():
		err = view(ctx, ledger, logger, *viewStart, *viewEnd, *viewXLSX, *viewSeries)
	}

	if err != nil {
		logger.Error("Command failed", "command", cmd, applog.FieldError, err)
		os.Exit(1)
	}
}

func add(ctx context.Context, ledger *usecase.LedgerUseCase, dateStr, amountStr, categoryStr, description string) error {
	date := domain.DateOf(time.Now())
	if dateStr != "" {
		d, err := domain.ParseDate(dateStr)
		if err != nil {
			return err
		}
		date = d
	}
	amount, err := domain.ParseAmount(amountStr)
	if err != nil {
		return err
	}
	category, err := domain.ParseCategory(categoryStr)
	if err != nil {
		return err
	}

	tx := domain.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: domain.ParseDescription(description),
	}
	if err := ledger.AddTransaction(ctx, tx); err != nil {
		return err
	}
	fmt.Println("Entry added successfully!")
	return nil
}

func view(ctx context.Context, ledger *usecase.LedgerUseCase, logger *applog.Logger, startStr, endStr, xlsxPath string, printSeries bool) error {
	start, err := domain.ParseDate(startStr)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := domain.ParseDate(endStr)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}

	// A store that was never written to is created empty rather than reported missing.
	if err := ledger.Initialize(ctx); err != nil {
		return err
	}
	rep, err := ledger.View(ctx, start, end)
	if err != nil {
		return err
	}
	logger.WithComponent(applog.ComponentLedger).Debug("Queried ledger",
		applog.FieldOperation, applog.OpQuery,
		applog.FieldRangeStart, startStr,
		applog.FieldRangeEnd, endStr,
		applog.FieldCount, len(rep.Transactions))

	printer := report.DefaultPrinter()
	if err := report.WriteTable(os.Stdout, rep, printer); err != nil {
		return err
	}

	if rep.Empty() || (!printSeries && xlsxPath == "") {
		return nil
	}

	series := report.DailySeries(rep.Transactions, rep.Start, rep.End)
	if printSeries {
		fmt.Println()
		for _, point := range series {
			printer.Printf("%s  income %.2f  expense %.2f\n",
				domain.FormatDate(point.Date), point.Income.InexactFloat64(), point.Expense.InexactFloat64())
		}
	}

	if xlsxPath != "" {
		bs, err := report.WorkbookXLSX(rep, series)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
		if err := os.WriteFile(xlsxPath, bs, 0o644); err != nil {
			return fmt.Errorf("%w: write workbook %s: %w", domain.ErrStorage, xlsxPath, err)
		}
		logger.WithComponent(applog.ComponentReport).Info("Wrote workbook",
			applog.FieldOperation, applog.OpExport, applog.FieldPath, xlsxPath)
	}
	return nil
}
