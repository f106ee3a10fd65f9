package services

import (
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The analytics client lives in an adapter and is passed in ready-made.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, analytics portssvc.AnalyticsSvc) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      NewAuthService(cfg),
		Account:   NewAccountService(repos.AccountRepo),
		Tag:       NewTagService(repos.TagRepo),
		Journal:   NewJournalService(repos.JournalRepo, repos.AccountRepo, WithTagReader(repos.TagRepo)),
		Reporting: NewReportingService(repos.ReportingRepo, repos.AccountRepo),
		Snapshot:  NewSnapshotService(repos.AccountRepo, repos.TagRepo),
		Analytics: analytics,
	}
}
