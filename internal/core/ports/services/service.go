package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Journal     JournalSvcFacade
	Invoice     InvoiceSvcFacade
	Vat         VatDeclarationSvc
	Reporting   ReportingService
	Export      ExportService
	Cabinet     CabinetSvc
	Societe     SocieteSvcFacade
	Cession     CessionSvc
	DocTemplate DocTemplateSvc
	User        UserSvcFacade
}
