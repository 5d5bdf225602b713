// Package catalog holds the static service catalog: service types, payment
// methods, default included items, per-service price bounds and the
// predefined color themes. All data here is immutable; accessors return
// fresh copies and per-service adjustments are pure transforms.
package catalog

// Service identifies one of the billable agent packages.
type Service string

const (
	ServiceSDR    Service = "agente-sdr"
	ServiceCloser Service = "agente-closer"
)

// Services lists every selectable service in display order.
func Services() []Service {
	return []Service{ServiceSDR, ServiceCloser}
}

// Valid reports whether s is a known service.
func (s Service) Valid() bool {
	switch s {
	case ServiceSDR, ServiceCloser:
		return true
	}
	return false
}

// Label returns the display name of the service.
func (s Service) Label() string {
	switch s {
	case ServiceSDR:
		return "Agente SDR"
	case ServiceCloser:
		return "Agente Closer"
	}
	return string(s)
}

// Description returns the marketing description of the service.
func (s Service) Description() string {
	switch s {
	case ServiceSDR:
		return "Prospecção e qualificação automatizada de vendas com plataforma completa e data analytics"
	case ServiceCloser:
		return "Automação de fechamento de negócios com plataforma completa, data analytics e recursos avançados para reuniões"
	}
	return ""
}

// PaymentMethod identifies how the one-time project value is paid.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentPix          PaymentMethod = "pix"
	PaymentBankSlip     PaymentMethod = "bank-slip"
)

// PaymentMethods lists every payment method in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCreditCard, PaymentBankTransfer, PaymentPix, PaymentBankSlip}
}

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentBankTransfer, PaymentPix, PaymentBankSlip:
		return true
	}
	return false
}

// Label returns the display name of the payment method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Cartão de Crédito"
	case PaymentBankTransfer:
		return "Transferência Bancária"
	case PaymentPix:
		return "PIX"
	case PaymentBankSlip:
		return "Boleto Bancário"
	}
	return string(m)
}

// AllowsCashDiscount reports whether the method is eligible for the cash
// discount. Only instant-settlement methods qualify.
func (m PaymentMethod) AllowsCashDiscount() bool {
	return m == PaymentPix || m == PaymentBankTransfer
}

// ContractDuration identifies the committed contract length.
type ContractDuration string

// Contract12Months is currently the only offered duration.
const Contract12Months ContractDuration = "12"

// Label returns the display name of the contract duration.
func (d ContractDuration) Label() string {
	if d == Contract12Months {
		return "12 meses"
	}
	return string(d)
}

// MaxInstallments is the credit-card installment ceiling.
const MaxInstallments = 12

// IncludedItem is one line item of the package: either a catalog default or
// a user-added custom entry. A price of zero is displayed as a bonus, never
// summed. Required items cannot be deselected.
type IncludedItem struct {
	ID          string
	Label       string
	Price       float64
	IsRecurring bool
	Required    bool
	Custom      bool
}

// Stable ids of the default catalog items.
const (
	ItemWhatsApp     = "integracao-whatsapp"
	ItemSpreadsheet  = "integracao-planilha"
	ItemCRM          = "integracao-crm"
	ItemExternal     = "integracao-ferramentas"
	ItemDashboard    = "dashboard-metricas"
	ItemReports      = "relatorios-semanais"
	ItemMeetings     = "gravacao-reunioes"
	ItemSupport      = "grupo-suporte"
	ItemMaintenance  = "manutencoes-tecnicas"
	ItemPerfUpdates  = "atualizacoes-performance"
)

var defaultItems = []IncludedItem{
	{ID: ItemWhatsApp, Label: "Integração com WhatsApp da empresa", Price: 2000},
	{ID: ItemSpreadsheet, Label: "Integração com Planilha", Price: 1500},
	{ID: ItemCRM, Label: "Integração Avançada com CRM", Price: 2500},
	{ID: ItemExternal, Label: "Integração com 3 Ferramentas externas", Price: 4000},
	{ID: ItemDashboard, Label: "Dashboard de Métricas", Price: 500, IsRecurring: true},
	{ID: ItemReports, Label: "Relatórios Semanais", Price: 400, IsRecurring: true},
	{ID: ItemMeetings, Label: "Gravação e Avaliação de Reuniões", Price: 600, IsRecurring: true},
	{ID: ItemSupport, Label: "Grupo de Suporte dedicado", Price: 500, IsRecurring: true, Required: true},
	{ID: ItemMaintenance, Label: "Manutenções Técnicas", Price: 800, IsRecurring: true, Required: true},
	{ID: ItemPerfUpdates, Label: "Acesso às Novas Atualizações de Performance", Price: 700, IsRecurring: true, Required: true},
}

// DefaultItems returns a fresh copy of the default item catalog.
func DefaultItems() []IncludedItem {
	items := make([]IncludedItem, len(defaultItems))
	copy(items, defaultItems)
	return items
}

// AdjustFor returns the item catalog adjusted for the given service. The
// closer package drops the meeting-recording feature and compensates by
// raising the price of the remaining recurring items. The transform never
// mutates the shared defaults.
func AdjustFor(s Service) []IncludedItem {
	if s != ServiceCloser {
		return DefaultItems()
	}

	items := make([]IncludedItem, 0, len(defaultItems))
	for _, item := range defaultItems {
		switch item.ID {
		case ItemMeetings:
			continue
		case ItemDashboard:
			item.Price = 700
		case ItemReports:
			item.Price = 600
		case ItemSupport:
			item.Price = 600
		case ItemPerfUpdates:
			item.Price = 800
		}
		items = append(items, item)
	}
	return items
}

// FindItem looks up an item by id.
func FindItem(items []IncludedItem, id string) (IncludedItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return IncludedItem{}, false
}

// Per-service bounds for the one-time base value and the recurring floor,
// in whole reais.
var (
	minBaseValue = map[Service]float64{ServiceSDR: 15000, ServiceCloser: 15000}
	maxBaseValue = map[Service]float64{ServiceSDR: 25000, ServiceCloser: 25000}
	minRecurring = map[Service]float64{ServiceSDR: 2000, ServiceCloser: 2000}
	maxRecurring = map[Service]float64{ServiceSDR: 3500, ServiceCloser: 3500}
)

// MinBaseValue returns the minimum billable base value for the service.
func MinBaseValue(s Service) float64 { return minBaseValue[s] }

// MaxBaseValue returns the maximum billable base value for the service.
func MaxBaseValue(s Service) float64 { return maxBaseValue[s] }

// MinRecurring returns the minimum monthly recurring floor for the service.
func MinRecurring(s Service) float64 { return minRecurring[s] }

// MaxRecurring returns the maximum monthly recurring value for the service.
func MaxRecurring(s Service) float64 { return maxRecurring[s] }

// ClampBaseValue forces v into the service's [min, max] base value range.
func ClampBaseValue(s Service, v float64) float64 {
	if min := MinBaseValue(s); v < min {
		return min
	}
	if max := MaxBaseValue(s); max > 0 && v > max {
		return max
	}
	return v
}
