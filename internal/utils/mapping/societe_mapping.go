package mapping

import (
	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/models"
)

// ToModelCabinet converts a domain Cabinet to its row form.
func ToModelCabinet(c domain.Cabinet) models.Cabinet {
	return models.Cabinet{
		CabinetID: c.CabinetID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToDomainCabinet converts a cabinets row to its domain form.
func ToDomainCabinet(m models.Cabinet) domain.Cabinet {
	return domain.Cabinet{
		CabinetID: m.CabinetID,
		Name:      m.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelSociete converts a domain Societe to its row form.
func ToModelSociete(s domain.Societe) models.Societe {
	return models.Societe{
		SocieteID:     s.SocieteID,
		Name:          s.Name,
		TypeJuridique: strPtr(s.TypeJuridique),
		Capital:       decimalPtr(s.Capital),
		Gerant:        strPtr(s.Gerant),
		RC:            strPtr(s.RC),
		CabinetID:     strPtr(s.CabinetID),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToDomainSociete converts a societes row to its domain form, without
// associates.
func ToDomainSociete(m models.Societe) domain.Societe {
	return domain.Societe{
		SocieteID:     m.SocieteID,
		Name:          m.Name,
		TypeJuridique: strVal(m.TypeJuridique),
		Capital:       decimalVal(m.Capital),
		Gerant:        strVal(m.Gerant),
		RC:            strVal(m.RC),
		CabinetID:     strVal(m.CabinetID),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelAssociate converts a domain Associate to its row form.
func ToModelAssociate(a domain.Associate) models.Associate {
	return models.Associate{
		AssociateID: a.AssociateID,
		SocieteID:   a.SocieteID,
		Name:        a.Name,
		Address:     strPtr(a.Address),
		PartsCount:  a.PartsCount,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToDomainAssociate converts an associates row to its domain form.
func ToDomainAssociate(m models.Associate) domain.Associate {
	return domain.Associate{
		AssociateID: m.AssociateID,
		SocieteID:   m.SocieteID,
		Name:        m.Name,
		Address:     strVal(m.Address),
		PartsCount:  m.PartsCount,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainAssociateSlice converts a slice of associates rows.
func ToDomainAssociateSlice(ms []models.Associate) []domain.Associate {
	out := make([]domain.Associate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAssociate(m)
	}
	return out
}

// ToModelCession converts a domain Cession to its row form.
func ToModelCession(c domain.Cession) models.Cession {
	return models.Cession{
		CessionID:           c.CessionID,
		SocieteID:           c.SocieteID,
		CessionDate:         c.CessionDate,
		Cedant:              c.Cedant,
		CedantAddress:       strPtr(c.CedantAddress),
		Cessionnaire:        c.Cessionnaire,
		CessionnaireAddress: strPtr(c.CessionnaireAddress),
		PartsCount:          c.PartsCount,
		Price:               decimalPtr(c.Price),
		PaymentMode:         strPtr(c.PaymentMode),
		Conditions:          strPtr(c.Conditions),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// ToDomainCession converts a cessions row to its domain form.
func ToDomainCession(m models.Cession) domain.Cession {
	return domain.Cession{
		CessionID:           m.CessionID,
		SocieteID:           m.SocieteID,
		CessionDate:         m.CessionDate,
		Cedant:              m.Cedant,
		CedantAddress:       strVal(m.CedantAddress),
		Cessionnaire:        m.Cessionnaire,
		CessionnaireAddress: strVal(m.CessionnaireAddress),
		PartsCount:          m.PartsCount,
		Price:               decimalVal(m.Price),
		PaymentMode:         strVal(m.PaymentMode),
		Conditions:          strVal(m.Conditions),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelDocTemplate converts a domain DocTemplate to its row form.
func ToModelDocTemplate(t domain.DocTemplate) models.DocTemplate {
	return models.DocTemplate{
		TemplateID: t.TemplateID,
		Title:      t.Title,
		DocType:    string(t.DocType),
		Content:    t.Content,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToDomainDocTemplate converts a doc_templates row to its domain form.
func ToDomainDocTemplate(m models.DocTemplate) domain.DocTemplate {
	return domain.DocTemplate{
		TemplateID: m.TemplateID,
		Title:      m.Title,
		DocType:    domain.DocTemplateType(m.DocType),
		Content:    m.Content,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelUser converts a domain User to its row form.
func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:       u.UserID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToDomainUser converts a users row to its domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
