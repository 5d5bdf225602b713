// Package budget assembles the final proposal document from the submitted
// wizard state and renders it as a single-page A4 PDF. The document states
// an issue date and expires 7 days later.
package budget

import (
	"fmt"
	"time"

	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/pricing"
	"github.com/lendaria/calculadoria/internal/wizard"
)

// ValidityDays is how long a proposal remains valid after issuance.
const ValidityDays = 7

// Document is the immutable input of the PDF renderer.
type Document struct {
	Config     pricing.Config
	Items      []catalog.IncludedItem
	Pricing    pricing.Result
	Personal   wizard.PersonalData
	IssuedAt   time.Time
	ValidUntil time.Time
}

// Build snapshots the submitted draft into a Document. Pricing is computed
// here, from the same engine the live summary uses.
func Build(draft wizard.Draft, issuedAt time.Time) Document {
	return Document{
		Config:     draft.Config,
		Items:      draft.Items,
		Pricing:    pricing.Compute(draft.Config, draft.Items),
		Personal:   draft.Personal,
		IssuedAt:   issuedAt,
		ValidUntil: issuedAt.AddDate(0, 0, ValidityDays),
	}
}

// Filename derives the deterministic download name from the service type
// and the issue date.
func Filename(service catalog.Service, issuedAt time.Time) string {
	return fmt.Sprintf("orcamento-%s-%s.pdf", service, issuedAt.Format("2006-01-02"))
}

// AgencyLabel is the agency name printed on the document header.
func (d Document) AgencyLabel() string {
	if d.Personal.AgencyName != "" {
		return d.Personal.AgencyName
	}
	return "Sua Agência"
}

// FormatDate renders a date the way the document displays it.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
