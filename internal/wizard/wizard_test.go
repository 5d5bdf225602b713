package wizard

import (
	"testing"
	"time"

	"github.com/lendaria/calculadoria/internal/catalog"
)

func submittableDraft() Draft {
	draft := NewDraft()
	draft.Step = StepPersonal
	draft.Personal = PersonalData{
		Name:     "Maria",
		WhatsApp: "(11) 99999-9999",
		Email:    "maria@example.com",
	}
	return draft
}

func TestNewDraft_Defaults(t *testing.T) {
	draft := NewDraft()

	if draft.Step != StepService {
		t.Fatalf("step = %v, want StepService", draft.Step)
	}
	if draft.Config.Service != catalog.ServiceSDR {
		t.Fatalf("service = %v, want SDR", draft.Config.Service)
	}
	if draft.Config.BaseValue != catalog.MinBaseValue(catalog.ServiceSDR) {
		t.Fatalf("base value = %v, want service minimum", draft.Config.BaseValue)
	}
	if len(draft.Items) != len(catalog.DefaultItems()) {
		t.Fatalf("item count = %d, want full default catalog", len(draft.Items))
	}
	if draft.Config.Theme != catalog.DefaultTheme {
		t.Fatal("theme must start at the default")
	}
}

func TestAdvance_WalksTheFlow(t *testing.T) {
	draft := NewDraft()

	steps := []Step{StepItems, StepPayment, StepTheme, StepPersonal}
	for _, want := range steps {
		if err := draft.Advance(); err != nil {
			t.Fatalf("advance to %v: %v", want, err)
		}
		if draft.Step != want {
			t.Fatalf("step = %v, want %v", draft.Step, want)
		}
	}
}

func TestAdvance_RejectsInvalidService(t *testing.T) {
	draft := NewDraft()
	draft.Config.Service = "outro"

	if err := draft.Advance(); err == nil {
		t.Fatal("expected invalid service to block advancing")
	}
	if draft.Step != StepService {
		t.Fatalf("step moved to %v on validation failure", draft.Step)
	}
}

func TestAdvance_RejectsCreditCardWithoutInstallments(t *testing.T) {
	draft := NewDraft()
	draft.Step = StepPayment
	draft.Config.PaymentMethod = catalog.PaymentCreditCard
	draft.Config.Installments = 0

	if err := draft.Advance(); err == nil {
		t.Fatal("expected missing installments to block advancing")
	}

	draft.Config.Installments = 13
	if err := draft.Advance(); err == nil {
		t.Fatal("expected installments above the ceiling to block advancing")
	}
}

func TestSubmit_RequiresPersonalData(t *testing.T) {
	draft := NewDraft()
	draft.Step = StepPersonal

	if err := draft.Submit(time.Now()); err == nil {
		t.Fatal("expected empty personal data to block submission")
	}
}

func TestSubmit_StampsDraft(t *testing.T) {
	draft := submittableDraft()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	if err := draft.Submit(now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if draft.Step != StepSubmitted {
		t.Fatalf("step = %v, want StepSubmitted", draft.Step)
	}
	if !draft.SubmittedAt.Equal(now) {
		t.Fatalf("submittedAt = %v, want %v", draft.SubmittedAt, now)
	}

	if err := draft.Submit(now); err == nil {
		t.Fatal("expected double submission to fail")
	}
}

func TestGoBack_ToServiceResetsEverything(t *testing.T) {
	draft := submittableDraft()
	draft.Config.Service = catalog.ServiceCloser
	draft.Config.BaseValue = 22000
	draft.Config.PaymentMethod = catalog.PaymentPix
	draft.Config.CashDiscount = 0.10

	draft.GoBack(StepService)

	if draft.Step != StepService {
		t.Fatalf("step = %v, want StepService", draft.Step)
	}
	if draft.Config.Service != catalog.ServiceSDR || draft.Config.BaseValue != 15000 {
		t.Fatalf("config not reset: %+v", draft.Config)
	}
	if draft.Personal.Name != "" {
		t.Fatal("personal data must be cleared")
	}
}

func TestGoBack_ToItemsRestoresAdjustedCatalog(t *testing.T) {
	draft := submittableDraft()
	draft.Config.Service = catalog.ServiceCloser
	draft.Items = nil

	draft.GoBack(StepItems)

	if draft.Step != StepItems {
		t.Fatalf("step = %v, want StepItems", draft.Step)
	}
	if _, ok := catalog.FindItem(draft.Items, catalog.ItemMeetings); ok {
		t.Fatal("closer catalog must not include meeting recording")
	}
	if item, ok := catalog.FindItem(draft.Items, catalog.ItemSupport); !ok || item.Price != 600 {
		t.Fatalf("support item = %+v, ok = %v; want closer-adjusted price", item, ok)
	}
	if draft.Config.Service != catalog.ServiceCloser {
		t.Fatal("service must survive going back to items")
	}
}

func TestGoBack_ToPaymentClearsPaymentOnly(t *testing.T) {
	draft := submittableDraft()
	draft.Config.PaymentMethod = catalog.PaymentPix
	draft.Config.CashDiscount = 0.05
	draft.Config.Installments = 1
	items := draft.Items

	draft.GoBack(StepPayment)

	if draft.Config.PaymentMethod != "" || draft.Config.Installments != 0 || draft.Config.CashDiscount != 0 {
		t.Fatalf("payment fields not cleared: %+v", draft.Config)
	}
	if len(draft.Items) != len(items) {
		t.Fatal("items must survive going back to payment")
	}
	if draft.Personal.Name != "" {
		t.Fatal("personal data must be cleared")
	}
}

func TestGoBack_ToThemeResetsTheme(t *testing.T) {
	draft := submittableDraft()
	draft.Config.Theme, _ = catalog.ThemeByName("natural")

	draft.GoBack(StepTheme)

	if draft.Config.Theme != catalog.DefaultTheme {
		t.Fatal("theme must reset to the default")
	}
	if draft.Config.PaymentMethod == "" {
		t.Fatal("payment selection must survive going back to theme")
	}
}

func TestGoBack_ForwardAndSelfTargetsIgnored(t *testing.T) {
	draft := NewDraft()
	draft.Step = StepPayment

	draft.GoBack(StepPayment)
	if draft.Step != StepPayment {
		t.Fatal("going back to the current step must be a no-op")
	}

	draft.GoBack(StepTheme)
	if draft.Step != StepPayment {
		t.Fatal("going forward via GoBack must be a no-op")
	}
}

func TestValidateLogo(t *testing.T) {
	if err := ValidateLogo("image/png", 1024); err != nil {
		t.Fatalf("valid logo rejected: %v", err)
	}
	if err := ValidateLogo("application/pdf", 1024); err == nil {
		t.Fatal("non-image MIME must be rejected")
	}
	if err := ValidateLogo("image/jpeg", MaxLogoBytes+1); err == nil {
		t.Fatal("oversized logo must be rejected")
	}
}
