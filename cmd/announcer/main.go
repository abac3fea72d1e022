package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/socx/event-announcer/internal/app"
	"github.com/socx/event-announcer/internal/domain/family"
	"github.com/socx/event-announcer/internal/infra/config"
	"github.com/socx/event-announcer/internal/infra/csvstore"
	"github.com/socx/event-announcer/internal/infra/email"
	"github.com/socx/event-announcer/internal/infra/logger"
	"github.com/socx/event-announcer/internal/infra/scheduler"
	"github.com/socx/event-announcer/internal/infra/whatsapp"
	"github.com/socx/event-announcer/internal/message"
)

func main() {
	root := &cobra.Command{
		Use:   "announcer",
		Short: "Scheduled birthday, anniversary and company event announcer",
	}
	root.AddCommand(runCmd(), onceCmd(), companiesCmd(), celebrantsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// application bundles everything a command needs after startup wiring.
type application struct {
	cfg       *config.AppConfig
	log       *logrus.Logger
	announcer *app.AnnouncerService
	company   *app.CompanyReminderService
}

// newApplication loads configuration, builds the transports (validated once
// at startup; an incomplete email configuration is fatal here) and wires
// both orchestrators.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load application configuration: %w", err)
	}
	log := logger.New(cfg)
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, App: %s", cfg.LogLevel, cfg.Environment, cfg.AppName)

	emailClient, err := email.NewClient(cfg.SMTP)
	if err != nil {
		return nil, fmt.Errorf("could not build email transport: %w", err)
	}
	chatClient := whatsapp.NewClient(cfg.WhatsApp)

	dispatcher := app.NewDispatcher(emailClient, chatClient, message.Defaults(), cfg.AppName, log)

	familyRepo := csvstore.NewFamilyRepository(cfg.FamilyMembersCSV, cfg.RecipientsCSV)
	companyRepo := csvstore.NewCompanyRepository(cfg.CompaniesCSV, cfg.CompanyOfficersCSV)

	return &application{
		cfg:       cfg,
		log:       log,
		announcer: app.NewAnnouncerService(familyRepo, dispatcher, log),
		company:   app.NewCompanyReminderService(companyRepo, dispatcher, cfg.LookaheadDays, log),
	}, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler daemon, announcing on the configured cron cadences",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication()
			if err != nil {
				return err
			}

			sched := scheduler.NewAnnouncerScheduler(a.announcer, a.company, a.log, a.cfg.CronSpecCelebrants, a.cfg.CronSpecCompanies)
			if err := sched.Start(); err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			a.log.Info("Shutting down application...")
			sched.Stop()
			a.log.Info("Application shut down gracefully.")
			return nil
		},
	}
}

func onceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Execute a single celebrant announcement run and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication()
			if err != nil {
				return err
			}
			return a.announcer.Run(cmd.Context())
		},
	}
}

func companiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "Execute a single company event reminder run and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication()
			if err != nil {
				return err
			}
			return a.company.Run(cmd.Context())
		},
	}
}

func celebrantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "celebrants",
		Short: "Print this month's birthday and anniversary celebrants without sending anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("could not load application configuration: %w", err)
			}
			log := logger.New(cfg)

			repo := csvstore.NewFamilyRepository(cfg.FamilyMembersCSV, cfg.RecipientsCSV)
			svc := app.NewAnnouncerService(repo, nil, log)

			celebrants, err := svc.MonthCelebrants(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("This Month's Birthdays: %s\n", joinMemberNames(celebrants.Birthdays))
			fmt.Printf("This Month's Anniversaries: %s\n", joinMemberNames(celebrants.Anniversaries))
			return nil
		},
	}
}

func joinMemberNames(members []family.Member) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.FullName())
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
