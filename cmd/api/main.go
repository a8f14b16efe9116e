package main

import (
	"fmt"
	"net/http"

	"github.com/prodtrack/timecore-backend-go/internal/config"
	appHTTP "github.com/prodtrack/timecore-backend-go/internal/handler/http"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/cron"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/database"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/jwt"
	"github.com/prodtrack/timecore-backend-go/internal/repository/postgresql"
	attendanceService "github.com/prodtrack/timecore-backend-go/internal/service/attendance"
	breakRuleService "github.com/prodtrack/timecore-backend-go/internal/service/breakrule"
	issueService "github.com/prodtrack/timecore-backend-go/internal/service/issue"
	summaryService "github.com/prodtrack/timecore-backend-go/internal/service/summary"
	worklogService "github.com/prodtrack/timecore-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	segmentRepo := postgresql.NewWorkSegmentRepository(db)
	ruleRepo := postgresql.NewBreakRuleRepository(db)
	issueClearRepo := postgresql.NewIssueClearRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	loc := cfg.Engine.Location
	summarySvc := summaryService.NewSummaryService(attendanceRepo, segmentRepo, ruleRepo, loc)
	issueSvc := issueService.NewIssueService(
		issueClearRepo,
		attendanceRepo,
		segmentRepo,
		summarySvc,
		cfg.Engine.DiscrepancyThresholdMinutes,
		cfg.Engine.IssueClearRetentionDays,
		loc,
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, ruleRepo, loc)
	worklogSvc := worklogService.NewWorklogService(segmentRepo, loc)
	breakRuleSvc := breakRuleService.NewBreakRuleService(ruleRepo)

	scheduler := cron.NewScheduler()
	timeclockJobs := cron.NewTimeclockJobs(attendanceRepo, ruleRepo, issueSvc, loc)
	timeclockJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	timesheetHandler := appHTTP.NewTimesheetHandler(summarySvc, issueSvc)
	timeclockHandler := appHTTP.NewTimeclockHandler(attendanceSvc)
	worklogHandler := appHTTP.NewWorklogHandler(worklogSvc)
	breakRuleHandler := appHTTP.NewBreakRuleHandler(breakRuleSvc)

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		timeclockHandler,
		worklogHandler,
		breakRuleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
