// Package wizard implements the step controller of the quoting flow: the
// authoritative draft state, per-step validity gating for forward
// transitions and the reset-on-back policy. Going back deliberately clears
// the abandoned step and everything after it so no stale state survives.
package wizard

import (
	"errors"
	"strings"
	"time"

	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/pricing"
	"github.com/lendaria/calculadoria/internal/selection"
)

// Step is one screen of the wizard, in flow order.
type Step int

const (
	StepService Step = iota + 1
	StepItems
	StepPayment
	StepTheme
	StepPersonal
	StepSubmitted
)

// Label returns the step's display name.
func (s Step) Label() string {
	switch s {
	case StepService:
		return "Serviço"
	case StepItems:
		return "Itens Inclusos"
	case StepPayment:
		return "Pagamento"
	case StepTheme:
		return "Tema"
	case StepPersonal:
		return "Seus Dados"
	case StepSubmitted:
		return "Concluído"
	}
	return ""
}

// PersonalData carries the requester's identity through to the document.
// It has no pricing relevance.
type PersonalData struct {
	Name       string
	WhatsApp   string
	Email      string
	Budget     float64
	AgencyName string
	LogoMIME   string
	Logo       []byte
}

// MaxLogoBytes caps uploaded logo size at 5 MB.
const MaxLogoBytes = 5 * 1024 * 1024

// ValidateLogo checks an uploaded logo's MIME type and size. It returns a
// user-facing message when the file is rejected.
func ValidateLogo(mime string, size int64) error {
	if !strings.HasPrefix(mime, "image/") {
		return errors.New("selecione apenas arquivos de imagem (PNG, JPG, etc.)")
	}
	if size > MaxLogoBytes {
		return errors.New("o arquivo deve ter no máximo 5MB")
	}
	return nil
}

// Draft is the complete wizard state for one visitor.
type Draft struct {
	Step        Step
	Config      pricing.Config
	Items       []catalog.IncludedItem
	Personal    PersonalData
	SubmittedAt time.Time
}

// NewDraft starts a fresh draft at the first step with the default service
// configuration and the full default item catalog.
func NewDraft() Draft {
	return Draft{
		Step:   StepService,
		Config: defaultConfig(),
		Items:  catalog.DefaultItems(),
	}
}

func defaultConfig() pricing.Config {
	return pricing.Config{
		Service:          catalog.ServiceSDR,
		BaseValue:        catalog.MinBaseValue(catalog.ServiceSDR),
		Quantity:         1,
		PaymentMethod:    catalog.PaymentCreditCard,
		Installments:     1,
		ContractDuration: catalog.Contract12Months,
		Theme:            catalog.DefaultTheme,
	}
}

// Pricing recomputes the totals for the draft's current state.
func (d *Draft) Pricing() pricing.Result {
	return pricing.Compute(d.Config, d.Items)
}

// Selection wraps the draft's items in the selection model. Mutations made
// through the returned value must be committed with SetItems.
func (d *Draft) Selection() *selection.Selection {
	return selection.Restore(d.Config.Service, d.Items)
}

// SetItems commits an updated item list.
func (d *Draft) SetItems(items []catalog.IncludedItem) {
	d.Items = items
}

// CanAdvance reports whether the current step's inputs are complete enough
// to move forward, with a user-facing reason when they are not.
func (d *Draft) CanAdvance() error {
	switch d.Step {
	case StepService:
		if !d.Config.Service.Valid() {
			return errors.New("escolha um tipo de serviço")
		}
		if d.Config.Quantity < 1 {
			return errors.New("a quantidade deve ser pelo menos 1")
		}
	case StepItems:
		// The item list is always valid; required items cannot be removed.
	case StepPayment:
		if !d.Config.PaymentMethod.Valid() {
			return errors.New("escolha uma forma de pagamento")
		}
		if d.Config.PaymentMethod == catalog.PaymentCreditCard {
			if d.Config.Installments < 1 || d.Config.Installments > catalog.MaxInstallments {
				return errors.New("escolha o número de parcelas")
			}
		}
	case StepTheme:
		// A theme is always present; the default applies until changed.
	case StepPersonal:
		if strings.TrimSpace(d.Personal.Name) == "" {
			return errors.New("informe seu nome")
		}
		if strings.TrimSpace(d.Personal.WhatsApp) == "" {
			return errors.New("informe seu WhatsApp")
		}
		if strings.TrimSpace(d.Personal.Email) == "" {
			return errors.New("informe seu e-mail")
		}
	case StepSubmitted:
		return errors.New("o orçamento já foi concluído")
	}
	return nil
}

// Advance moves to the next step after validating the current one.
func (d *Draft) Advance() error {
	if err := d.CanAdvance(); err != nil {
		return err
	}
	if d.Step < StepSubmitted {
		d.Step++
	}
	return nil
}

// Submit validates the final step and stamps the draft as submitted.
func (d *Draft) Submit(now time.Time) error {
	if d.Step != StepPersonal {
		return errors.New("o orçamento ainda não está completo")
	}
	if err := d.CanAdvance(); err != nil {
		return err
	}
	d.Step = StepSubmitted
	d.SubmittedAt = now
	return nil
}

// GoBack returns to an earlier step, clearing the state of the abandoned
// step and every step after it:
//
//   - service: full reset (config, items, personal data)
//   - items: items back to defaults, personal data cleared
//   - payment: payment method, installments and cash discount cleared,
//     personal data cleared; items and service survive
//   - theme: theme back to default, personal data cleared
func (d *Draft) GoBack(target Step) {
	if target < StepService || target >= d.Step {
		return
	}

	switch target {
	case StepService:
		d.Config = defaultConfig()
		d.Items = catalog.DefaultItems()
		d.Personal = PersonalData{}
	case StepItems:
		d.Items = catalog.AdjustFor(d.Config.Service)
		d.Personal = PersonalData{}
	case StepPayment:
		d.Config.PaymentMethod = ""
		d.Config.Installments = 0
		d.Config.CashDiscount = 0
		d.Personal = PersonalData{}
	case StepTheme:
		d.Config.Theme = catalog.DefaultTheme
		d.Personal = PersonalData{}
	}

	d.Step = target
}
