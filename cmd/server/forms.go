package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/colors"
	"github.com/lendaria/calculadoria/internal/money"
	"github.com/lendaria/calculadoria/internal/pricing"
	"github.com/lendaria/calculadoria/internal/wizard"
)

// parseServiceForm applies the service step's fields onto the config.
// Numeric junk is clamped, never rejected: the base value snaps into the
// service's allowed range and the quantity floors at 1.
func parseServiceForm(r *http.Request, cfg pricing.Config) (pricing.Config, error) {
	service := catalog.Service(r.FormValue("service"))
	if !service.Valid() {
		return cfg, fmt.Errorf("escolha um tipo de serviço válido")
	}

	cfg.Service = service
	cfg.BaseValue = catalog.ClampBaseValue(service, money.ParseBRL(r.FormValue("base_value")))
	cfg.Quantity = parseQuantity(r.FormValue("quantity"))
	cfg.Recurring = r.FormValue("recurring") == "1"
	cfg.ContractDuration = catalog.Contract12Months
	cfg.ContractDiscount = money.ParsePercent(r.FormValue("contract_discount"))

	cfg.RecurringValue = 0
	if cfg.Recurring {
		if v := money.ParseBRL(r.FormValue("recurring_value")); v > 0 {
			cfg.RecurringValue = clampRecurring(service, v)
		}
	}

	return cfg, nil
}

func parseQuantity(raw string) int {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || quantity < 1 {
		return 1
	}
	return quantity
}

func clampRecurring(service catalog.Service, v float64) float64 {
	if min := catalog.MinRecurring(service); v < min {
		return min
	}
	if max := catalog.MaxRecurring(service); v > max {
		return max
	}
	return v
}

// parsePaymentForm applies the payment step's fields. Installments only
// matter for credit card and clamp into [1, MaxInstallments]; the cash
// discount only survives on instant-settlement methods.
func parsePaymentForm(r *http.Request, cfg pricing.Config) (pricing.Config, error) {
	method := catalog.PaymentMethod(r.FormValue("payment_method"))
	if !method.Valid() {
		return cfg, fmt.Errorf("escolha uma forma de pagamento")
	}

	cfg.PaymentMethod = method

	cfg.Installments = 0
	if method == catalog.PaymentCreditCard {
		cfg.Installments = parseInstallments(r.FormValue("installments"))
	}

	cfg.CashDiscount = 0
	if method.AllowsCashDiscount() {
		cfg.CashDiscount = money.ParsePercent(r.FormValue("cash_discount"))
	}

	return cfg, nil
}

func parseInstallments(raw string) int {
	installments, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || installments < 1 {
		return 1
	}
	if installments > catalog.MaxInstallments {
		return catalog.MaxInstallments
	}
	return installments
}

// parseThemeForm builds the next theme from an optional preset plus
// per-color overrides. A malformed hex value keeps the last valid color
// for that slot.
func parseThemeForm(r *http.Request, current catalog.ColorTheme) catalog.ColorTheme {
	theme := current
	if preset, ok := catalog.ThemeByName(r.FormValue("preset")); ok {
		theme = preset
	}

	overrides := []struct {
		field string
		dest  *string
	}{
		{"primary", &theme.Primary},
		{"secondary", &theme.Secondary},
		{"accent", &theme.Accent},
		{"background", &theme.Background},
		{"surface", &theme.Surface},
		{"text", &theme.Text},
		{"text_secondary", &theme.TextSecondary},
		{"border", &theme.Border},
	}
	for _, o := range overrides {
		raw := strings.TrimSpace(r.FormValue(o.field))
		if raw == "" {
			continue
		}
		if _, ok := colors.ParseHex(raw); ok {
			*o.dest = raw
		}
	}

	return theme
}

// parsePersonalForm reads the final step's multipart form, including the
// optional logo upload. Upload problems are reported as user-facing
// messages and leave the rest of the data untouched.
func parsePersonalForm(r *http.Request) (wizard.PersonalData, error) {
	if err := r.ParseMultipartForm(wizard.MaxLogoBytes + 1<<20); err != nil {
		return wizard.PersonalData{}, fmt.Errorf("formulário inválido")
	}

	data := wizard.PersonalData{
		Name:       strings.TrimSpace(r.FormValue("name")),
		WhatsApp:   strings.TrimSpace(r.FormValue("whatsapp")),
		Email:      strings.TrimSpace(r.FormValue("email")),
		AgencyName: strings.TrimSpace(r.FormValue("agency_name")),
		Budget:     money.ParseBRL(r.FormValue("budget")),
	}

	if data.Name == "" {
		return data, fmt.Errorf("informe seu nome")
	}
	if data.WhatsApp == "" {
		return data, fmt.Errorf("informe seu WhatsApp")
	}
	if data.Email == "" {
		return data, fmt.Errorf("informe seu e-mail")
	}

	file, header, err := r.FormFile("logo")
	if err == http.ErrMissingFile {
		return data, nil
	}
	if err != nil {
		return data, nil
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	if err := wizard.ValidateLogo(mime, header.Size); err != nil {
		return data, err
	}

	logo, err := io.ReadAll(io.LimitReader(file, wizard.MaxLogoBytes))
	if err != nil {
		return data, fmt.Errorf("não foi possível ler o arquivo de logo")
	}

	data.LogoMIME = mime
	data.Logo = logo
	return data, nil
}
