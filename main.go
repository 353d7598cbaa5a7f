package main

import (
	"os"

	"github.com/username/punchlog/backend/src/config"
	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/parsers"
	"github.com/username/punchlog/backend/src/processors"
	"github.com/username/punchlog/backend/src/reports"
	"github.com/username/punchlog/backend/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Punchlog attendance processing starting...")

	logger.L.Info("Initializing services...")
	strategies, err := parsers.StrategiesFor(config.Cfg.ParseStrategies)
	if err != nil {
		logger.L.Error("Invalid parse strategy configuration", "strategies", config.Cfg.ParseStrategies, "error", err)
		os.Exit(1)
	}
	loaderService := services.NewLoaderService(strategies...)
	summaryProcessor := processors.NewSummaryProcessor(config.Cfg.Policy())
	attendanceService := services.NewAttendanceService(
		config.Cfg.OutputDirName,
		loaderService,
		summaryProcessor,
		reports.NewJSONReporter(),
		reports.NewXLSXReporter(config.Cfg.XLSXSheetName),
		os.Stdout,
	)

	result, err := attendanceService.Run(config.Cfg.InputDir)
	if err != nil {
		logger.L.Error("Attendance processing failed", "inputDir", config.Cfg.InputDir, "error", err)
		os.Exit(1)
	}
	logger.L.Info("Attendance processing finished",
		"runID", result.RunID,
		"records", result.Records,
		"dates", result.Dates,
		"entries", result.Entries,
		"outputDir", result.OutputDir)
}
