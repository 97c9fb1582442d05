package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	EntryRepo       EntryRepositoryFacade
	SequenceRepo    SequenceRepositoryFacade
	VatRateRepo     VatRateRepositoryFacade
	CustomerRepo    CustomerRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	ReportingRepo   ReportingRepositoryFacade
	CabinetRepo     CabinetRepositoryFacade
	SocieteRepo     SocieteRepositoryFacade
	CessionRepo     CessionRepositoryFacade
	DocTemplateRepo DocTemplateRepositoryFacade
	UserRepo        UserRepositoryFacade
}
