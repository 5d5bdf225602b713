package main

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lendaria/calculadoria/internal/budget"
	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/colors"
	"github.com/lendaria/calculadoria/internal/money"
	"github.com/lendaria/calculadoria/internal/wizard"
)

// currentDraft resolves the visitor's draft from the signed cookie,
// starting a fresh one when the cookie is absent, forged or points at a
// purged draft.
func (s *server) currentDraft(w http.ResponseWriter, r *http.Request) (string, wizard.Draft, error) {
	if id, ok := s.sessions.draftIDFromRequest(r); ok {
		draft, err := s.loadDraft(id)
		if err == nil {
			return id, draft, nil
		}
		if err != errDraftNotFound {
			return "", wizard.Draft{}, err
		}
	}

	id := uuid.NewString()
	draft := wizard.NewDraft()
	if err := s.saveDraft(id, draft); err != nil {
		return "", wizard.Draft{}, err
	}
	s.sessions.setDraftCookie(w, id)
	return id, draft, nil
}

func (s *server) handleWizard(w http.ResponseWriter, r *http.Request) {
	_, draft, err := s.currentDraft(w, r)
	if err != nil {
		http.Error(w, "failed to load draft", http.StatusInternalServerError)
		return
	}

	data := s.buildWizardViewData(draft)
	data.ErrorMessage = r.URL.Query().Get("error")
	data.SuccessMessage = r.URL.Query().Get("success")
	s.renderTemplate(w, stepTemplate(draft.Step), data)
}

func stepTemplate(step wizard.Step) string {
	switch step {
	case wizard.StepService:
		return "step_service.html"
	case wizard.StepItems:
		return "step_items.html"
	case wizard.StepPayment:
		return "step_payment.html"
	case wizard.StepTheme:
		return "step_theme.html"
	case wizard.StepPersonal:
		return "step_personal.html"
	case wizard.StepSubmitted:
		return "success.html"
	}
	return "step_service.html"
}

func (s *server) handleServiceSubmit(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepService, func(draft *wizard.Draft) error {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("formulário inválido")
		}

		cfg, err := parseServiceForm(r, draft.Config)
		if err != nil {
			return err
		}

		if cfg.Service != draft.Config.Service {
			sel := draft.Selection()
			sel.SwitchService(cfg.Service)
			draft.SetItems(sel.Items())
		}
		draft.Config = cfg

		return draft.Advance()
	})
}

func (s *server) handleItemToggle(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepItems, func(draft *wizard.Draft) error {
		sel := draft.Selection()
		sel.Toggle(r.FormValue("item_id"))
		draft.SetItems(sel.Items())
		return nil
	})
}

func (s *server) handleItemPrice(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepItems, func(draft *wizard.Draft) error {
		sel := draft.Selection()
		sel.SetPrice(r.FormValue("item_id"), money.ParseBRL(r.FormValue("price")))
		draft.SetItems(sel.Items())
		return nil
	})
}

func (s *server) handleItemRecurrence(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepItems, func(draft *wizard.Draft) error {
		sel := draft.Selection()
		sel.ToggleRecurrence(r.FormValue("item_id"))
		draft.SetItems(sel.Items())
		return nil
	})
}

func (s *server) handleCustomItemAdd(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepItems, func(draft *wizard.Draft) error {
		sel := draft.Selection()
		if _, ok := sel.AddCustom(r.FormValue("label")); !ok {
			return fmt.Errorf("informe um nome para o item")
		}
		draft.SetItems(sel.Items())
		return nil
	})
}

func (s *server) handleCustomItemRemove(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepItems, func(draft *wizard.Draft) error {
		sel := draft.Selection()
		sel.RemoveCustom(r.FormValue("item_id"))
		draft.SetItems(sel.Items())
		return nil
	})
}

func (s *server) handleItemsNext(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepItems, func(draft *wizard.Draft) error {
		return draft.Advance()
	})
}

func (s *server) handlePaymentSubmit(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepPayment, func(draft *wizard.Draft) error {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("formulário inválido")
		}

		cfg, err := parsePaymentForm(r, draft.Config)
		if err != nil {
			return err
		}
		draft.Config = cfg

		return draft.Advance()
	})
}

func (s *server) handleThemeSubmit(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepTheme, func(draft *wizard.Draft) error {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("formulário inválido")
		}

		theme := parseThemeForm(r, draft.Config.Theme)
		if r.FormValue("autofix") == "1" {
			theme = colors.AutoFixTheme(theme)
		}
		draft.Config.Theme = theme

		return draft.Advance()
	})
}

func (s *server) handlePersonalSubmit(w http.ResponseWriter, r *http.Request) {
	s.withDraft(w, r, wizard.StepPersonal, func(draft *wizard.Draft) error {
		data, err := parsePersonalForm(r)
		if err != nil {
			return err
		}
		draft.Personal = data

		if err := draft.Submit(time.Now()); err != nil {
			return err
		}

		if err := s.insertQuote(*draft, draft.Pricing()); err != nil {
			// The proposal is already generated for the visitor; the log
			// entry is best effort.
			log.Printf("warning: failed to record quote: %v", err)
		}
		return nil
	})
}

func (s *server) handleGoBack(w http.ResponseWriter, r *http.Request) {
	id, draft, err := s.currentDraft(w, r)
	if err != nil {
		http.Error(w, "failed to load draft", http.StatusInternalServerError)
		return
	}

	target, err := strconv.Atoi(r.FormValue("step"))
	if err == nil {
		draft.GoBack(wizard.Step(target))
		if err := s.saveDraft(id, draft); err != nil {
			http.Error(w, "failed to save draft", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/wizard", http.StatusSeeOther)
}

// withDraft wraps a wizard mutation: it loads the draft, enforces the
// expected step, applies the mutation, persists and redirects. Validation
// failures surface as a flash message on the re-rendered step.
func (s *server) withDraft(w http.ResponseWriter, r *http.Request, step wizard.Step, mutate func(*wizard.Draft) error) {
	id, draft, err := s.currentDraft(w, r)
	if err != nil {
		http.Error(w, "failed to load draft", http.StatusInternalServerError)
		return
	}

	if draft.Step != step {
		http.Redirect(w, r, "/wizard", http.StatusSeeOther)
		return
	}

	if err := mutate(&draft); err != nil {
		http.Redirect(w, r, "/wizard?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if err := s.saveDraft(id, draft); err != nil {
		http.Error(w, "failed to save draft", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/wizard", http.StatusSeeOther)
}

// handleExport streams the submitted proposal as a PDF download. A failed
// render leaves the draft untouched so the visitor can simply retry.
func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	_, draft, err := s.currentDraft(w, r)
	if err != nil {
		http.Error(w, "failed to load draft", http.StatusInternalServerError)
		return
	}

	if draft.Step != wizard.StepSubmitted {
		http.Redirect(w, r, "/wizard", http.StatusSeeOther)
		return
	}

	doc := budget.Build(draft, draft.SubmittedAt)
	pdf, err := budget.GeneratePDF(doc)
	if err != nil {
		log.Printf("pdf export failed: %v", err)
		http.Redirect(w, r, "/wizard?error="+url.QueryEscape("Erro ao gerar o PDF. Por favor, tente novamente."), http.StatusSeeOther)
		return
	}

	filename := budget.Filename(draft.Config.Service, draft.SubmittedAt)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		http.Error(w, "failed to load quotes", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "quotes.html", quotesViewData{
		Query:  query,
		Quotes: quotes,
	})
}

// handleNewQuote discards the current draft cookie and starts over.
func (s *server) handleNewQuote(w http.ResponseWriter, r *http.Request) {
	s.sessions.clearDraftCookie(w)
	http.Redirect(w, r, "/wizard", http.StatusSeeOther)
}

// ── view data ───────────────────────────────────────────────────────────

type summaryView struct {
	ServiceLabel    string
	Quantity        int
	BaseTotal       string
	ItemsTotal      string
	RecurringTotal  string
	Discount        string
	InstallmentNote string
	ProjectTotal    string
	TotalValue      string
}

type itemView struct {
	ID          string
	Label       string
	PriceLabel  string
	IsRecurring bool
	Required    bool
	Custom      bool
	Selected    bool
}

type serviceOption struct {
	Value       catalog.Service
	Label       string
	Description string
	MinBase     string
	MaxBase     string
	Selected    bool
}

type paymentOption struct {
	Value        catalog.PaymentMethod
	Label        string
	CashDiscount bool
	Selected     bool
}

type contrastView struct {
	Label string
	Ratio string
	Grade colors.Grade
}

type wizardViewData struct {
	baseViewData
	Step            wizard.Step
	StepLabel       string
	Config          configView
	Services        []serviceOption
	Items           []itemView
	SuggestedBase   string
	PaymentMethods  []paymentOption
	MaxInstallments int
	ThemeNames      []string
	Theme           catalog.ColorTheme
	ThemeIssues     []string
	Contrast        []contrastView
	Summary         summaryView
}

type configView struct {
	Service          catalog.Service
	BaseValue        string
	Quantity         int
	Recurring        bool
	RecurringValue   string
	PaymentMethod    catalog.PaymentMethod
	Installments     int
	CashDiscount     string
	ContractDiscount string
}

func (s *server) buildWizardViewData(draft wizard.Draft) wizardViewData {
	result := draft.Pricing()

	summary := summaryView{
		ServiceLabel:   draft.Config.Service.Label(),
		Quantity:       draft.Config.Quantity,
		BaseTotal:      money.FormatBRLIfValid(result.BaseTotal),
		ItemsTotal:     money.FormatBRLIfValid(result.ItemsTotal),
		RecurringTotal: money.FormatBRLIfValid(result.RecurringTotal),
		Discount:       money.FormatBRLIfValid(result.DiscountAmount),
		ProjectTotal:   money.FormatBRLIfValid(result.ProjectTotal),
		TotalValue:     money.FormatBRLIfValid(result.TotalValue),
	}
	if money.Displayable(result.InstallmentValue) {
		summary.InstallmentNote = fmt.Sprintf("%dx de %s",
			draft.Config.Installments, money.FormatBRL(result.InstallmentValue))
	}

	data := wizardViewData{
		Step:            draft.Step,
		StepLabel:       draft.Step.Label(),
		Config:          buildConfigView(draft),
		Summary:         summary,
		MaxInstallments: catalog.MaxInstallments,
		ThemeNames:      catalog.ThemeNames(),
		Theme:           draft.Config.Theme,
	}

	switch draft.Step {
	case wizard.StepService:
		for _, svc := range catalog.Services() {
			data.Services = append(data.Services, serviceOption{
				Value:       svc,
				Label:       svc.Label(),
				Description: svc.Description(),
				MinBase:     money.FormatBRL(catalog.MinBaseValue(svc)),
				MaxBase:     money.FormatBRL(catalog.MaxBaseValue(svc)),
				Selected:    svc == draft.Config.Service,
			})
		}
	case wizard.StepItems:
		data.Items = buildItemViews(draft)
		data.SuggestedBase = suggestedBase(draft)
	case wizard.StepPayment:
		for _, method := range catalog.PaymentMethods() {
			data.PaymentMethods = append(data.PaymentMethods, paymentOption{
				Value:        method,
				Label:        method.Label(),
				CashDiscount: method.AllowsCashDiscount(),
				Selected:     method == draft.Config.PaymentMethod,
			})
		}
	case wizard.StepTheme:
		data.ThemeIssues = colors.ValidateTheme(draft.Config.Theme)
		data.Contrast = buildContrastViews(draft.Config.Theme)
	}

	return data
}

func buildConfigView(draft wizard.Draft) configView {
	return configView{
		Service:          draft.Config.Service,
		BaseValue:        money.FormatBRLIfValid(draft.Config.BaseValue),
		Quantity:         draft.Config.Quantity,
		Recurring:        draft.Config.Recurring,
		RecurringValue:   money.FormatBRLIfValid(draft.Config.RecurringValue),
		PaymentMethod:    draft.Config.PaymentMethod,
		Installments:     draft.Config.Installments,
		CashDiscount:     formatPercent(draft.Config.CashDiscount),
		ContractDiscount: formatPercent(draft.Config.ContractDiscount),
	}
}

func formatPercent(fraction float64) string {
	if fraction <= 0 {
		return ""
	}
	return strconv.FormatFloat(fraction*100, 'f', -1, 64)
}

// buildItemViews lists the adjusted catalog with selection state, followed
// by the visitor's custom items.
func buildItemViews(draft wizard.Draft) []itemView {
	selected := draft.Items

	var views []itemView
	for _, item := range catalog.AdjustFor(draft.Config.Service) {
		current := item
		chosen, isSelected := catalog.FindItem(selected, item.ID)
		if isSelected {
			current = chosen
		}
		views = append(views, itemView{
			ID:          current.ID,
			Label:       current.Label,
			PriceLabel:  priceLabel(current.Price),
			IsRecurring: current.IsRecurring,
			Required:    current.Required,
			Selected:    isSelected,
		})
	}
	for _, item := range selected {
		if !item.Custom {
			continue
		}
		views = append(views, itemView{
			ID:          item.ID,
			Label:       item.Label,
			PriceLabel:  priceLabel(item.Price),
			IsRecurring: item.IsRecurring,
			Custom:      true,
			Selected:    true,
		})
	}

	return views
}

func priceLabel(price float64) string {
	if !money.Displayable(price) {
		return "Bônus"
	}
	return money.FormatBRL(price)
}

// suggestedBase hints a lower base value when default items were
// deselected: current base minus their catalog value, floored at the
// service minimum.
func suggestedBase(draft wizard.Draft) string {
	removed := draft.Selection().DeselectedValue()
	if removed <= 0 {
		return ""
	}

	min := catalog.MinBaseValue(draft.Config.Service)
	suggested := draft.Config.BaseValue - removed
	if suggested < min {
		suggested = min
	}
	if suggested >= draft.Config.BaseValue {
		return ""
	}
	return money.FormatBRL(suggested)
}

func buildContrastViews(theme catalog.ColorTheme) []contrastView {
	pairs := []struct {
		label  string
		fg, bg string
	}{
		{"Texto / Fundo", theme.Text, theme.Background},
		{"Texto secundário / Fundo", theme.TextSecondary, theme.Background},
		{"Primária / Fundo", theme.Primary, theme.Background},
		{"Texto / Superfície", theme.Text, theme.Surface},
	}

	views := make([]contrastView, 0, len(pairs))
	for _, p := range pairs {
		views = append(views, contrastView{
			Label: p.label,
			Ratio: fmt.Sprintf("%.2f:1", colors.ContrastRatio(p.fg, p.bg)),
			Grade: colors.Rating(p.fg, p.bg),
		})
	}
	return views
}
