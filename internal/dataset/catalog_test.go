package dataset

import "testing"

func TestAssetClassFor(t *testing.T) {
	tests := []struct {
		instrument string
		want       string
	}{
		{"MSFT.O", "Equity"},
		{"AAPL.O", "Equity"},
		{"JPM.N", "Equity"},
		{"SPX_OPT", "Equity"},
		{"DBR.X", "Equity"}, // dotted code wins over the bond keyword
		{"GOVBOND10Y", "Fixed Income"},
		{"EURUSDSPOT", "FX"},
		{"USDJPYSPOT", "FX"},
		{"CDS_UK", "Derivatives"},
	}

	for _, tc := range tests {
		if got := AssetClassFor(tc.instrument); got != tc.want {
			t.Errorf("AssetClassFor(%q) = %q, want %q", tc.instrument, got, tc.want)
		}
		// Pure function: repeated calls must agree.
		if again := AssetClassFor(tc.instrument); again != tc.want {
			t.Errorf("AssetClassFor(%q) not stable: %q", tc.instrument, again)
		}
	}
}

func TestCatalogFixed(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 5 {
		t.Fatalf("catalog must hold exactly 5 scenarios, got %d", len(catalog))
	}
	wantIDs := []ScenarioID{"SCEN1", "SCEN2", "SCEN3", "SCEN4", "SCEN5"}
	for i, s := range catalog {
		if s.ID != wantIDs[i] {
			t.Errorf("catalog[%d].ID = %s, want %s", i, s.ID, wantIDs[i])
		}
		if s.Name == "" || s.Tag == "" {
			t.Errorf("catalog[%d] has empty name or tag", i)
		}
	}
}

func TestCounterpartiesAndBooks(t *testing.T) {
	cps := Counterparties()
	if len(cps) != 20 || cps[0] != "CP001" || cps[19] != "CP020" {
		t.Fatalf("unexpected counterparty universe: %v", cps)
	}
	books := Books()
	if len(books) != 7 || books[0] != "Book1" || books[6] != "Book7" {
		t.Fatalf("unexpected book universe: %v", books)
	}
}
