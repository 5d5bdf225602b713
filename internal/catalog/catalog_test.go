package catalog

import "testing"

func TestAdjustFor_SDRKeepsDefaults(t *testing.T) {
	items := AdjustFor(ServiceSDR)

	if len(items) != len(defaultItems) {
		t.Fatalf("item count = %d, want %d", len(items), len(defaultItems))
	}
	if item, ok := FindItem(items, ItemMeetings); !ok || item.Price != 600 {
		t.Fatalf("meetings item = %+v, ok = %v", item, ok)
	}
}

func TestAdjustFor_CloserDropsMeetingsAndRaisesPrices(t *testing.T) {
	items := AdjustFor(ServiceCloser)

	if _, ok := FindItem(items, ItemMeetings); ok {
		t.Fatal("closer catalog must not include meeting recording")
	}

	want := map[string]float64{
		ItemDashboard:   700,
		ItemReports:     600,
		ItemSupport:     600,
		ItemPerfUpdates: 800,
		ItemWhatsApp:    2000,
	}
	for id, price := range want {
		item, ok := FindItem(items, id)
		if !ok {
			t.Fatalf("missing item %q", id)
		}
		if item.Price != price {
			t.Fatalf("%s price = %v, want %v", id, item.Price, price)
		}
	}
}

func TestAdjustFor_NeverMutatesDefaults(t *testing.T) {
	adjusted := AdjustFor(ServiceCloser)
	adjusted[0].Price = -1

	fresh := AdjustFor(ServiceCloser)
	if fresh[0].Price == -1 {
		t.Fatal("AdjustFor leaked a mutable reference to the defaults")
	}

	if item, _ := FindItem(DefaultItems(), ItemSupport); item.Price != 500 {
		t.Fatalf("default support price = %v, want 500", item.Price)
	}
}

func TestRequiredRecurringFloor(t *testing.T) {
	var floor float64
	for _, item := range DefaultItems() {
		if item.Required && item.IsRecurring {
			floor += item.Price
		}
	}
	if floor != 2000 {
		t.Fatalf("required recurring floor = %v, want 2000", floor)
	}
	if floor != MinRecurring(ServiceSDR) {
		t.Fatalf("floor %v disagrees with MinRecurring %v", floor, MinRecurring(ServiceSDR))
	}
}

func TestClampBaseValue(t *testing.T) {
	if got := ClampBaseValue(ServiceSDR, 1000); got != 15000 {
		t.Fatalf("clamp below min = %v, want 15000", got)
	}
	if got := ClampBaseValue(ServiceSDR, 90000); got != 25000 {
		t.Fatalf("clamp above max = %v, want 25000", got)
	}
	if got := ClampBaseValue(ServiceSDR, 20000); got != 20000 {
		t.Fatalf("clamp in range = %v, want 20000", got)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("ThemeByName(%q) not found", name)
		}
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Fatal("unknown theme name must not resolve")
	}
	if theme, _ := ThemeByName("lendario"); theme != DefaultTheme {
		t.Fatal("lendario must be the default theme")
	}
}

func TestServiceAndPaymentValidity(t *testing.T) {
	if !ServiceCloser.Valid() || Service("x").Valid() {
		t.Fatal("service validity broken")
	}
	if !PaymentPix.AllowsCashDiscount() || !PaymentBankTransfer.AllowsCashDiscount() {
		t.Fatal("instant methods must allow the cash discount")
	}
	if PaymentCreditCard.AllowsCashDiscount() || PaymentBankSlip.AllowsCashDiscount() {
		t.Fatal("deferred methods must not allow the cash discount")
	}
}
