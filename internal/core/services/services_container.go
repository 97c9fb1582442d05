package services

import (
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/platform/config"
)

// NewServiceContainer wires all application services with their repository
// dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Journal:     NewJournalService(repos.JournalRepo, repos.EntryRepo, repos.AccountRepo),
		Invoice:     NewInvoiceService(repos.VatRateRepo, repos.CustomerRepo, repos.InvoiceRepo),
		Vat:         NewVatService(repos.InvoiceRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
		Export:      NewExportService(repos.JournalRepo, repos.ReportingRepo, repos.SocieteRepo, repos.CabinetRepo),
		Cabinet:     NewCabinetService(repos.CabinetRepo, repos.SocieteRepo, repos.CessionRepo),
		Societe:     NewSocieteService(repos.SocieteRepo, repos.CabinetRepo),
		Cession:     NewCessionService(repos.SocieteRepo, repos.CessionRepo),
		DocTemplate: NewDocTemplateService(repos.DocTemplateRepo, repos.SocieteRepo),
		User:        NewUserService(repos.UserRepo, cfg),
	}
}
