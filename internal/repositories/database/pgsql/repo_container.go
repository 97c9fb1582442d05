package pgsql

import (
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		EntryRepo:       newPgxEntryRepository(dbPool),
		SequenceRepo:    newPgxSequenceRepository(dbPool),
		VatRateRepo:     newPgxVatRateRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
		CabinetRepo:     newPgxCabinetRepository(dbPool),
		SocieteRepo:     newPgxSocieteRepository(dbPool),
		CessionRepo:     newPgxCessionRepository(dbPool),
		DocTemplateRepo: newPgxDocTemplateRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
