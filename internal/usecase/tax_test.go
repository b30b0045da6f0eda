package usecase

import "testing"

func TestCalcLineAmounts(t *testing.T) {
	tests := []struct {
		name       string
		price, qty int
		taxCd      string
		wantExTax  int
		wantTax    int
		wantTotal  int
	}{
		{"standard rate", 100, 2, "10", 200, 20, 220},
		{"reduced rate floors the tax", 105, 1, "08", 105, 8, 113},
		{"exempt", 300, 3, "00", 900, 0, 900},
		{"standard rate floors the tax", 33, 1, "10", 33, 3, 36},
		{"zero price", 0, 5, "10", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exTax, tax, total, err := calcLineAmounts(tt.price, tt.qty, tt.taxCd)
			if err != nil {
				t.Fatalf("calcLineAmounts returned unexpected error: %v", err)
			}
			if exTax != tt.wantExTax {
				t.Errorf("exTax = %d, want %d", exTax, tt.wantExTax)
			}
			if tax != tt.wantTax {
				t.Errorf("tax = %d, want %d", tax, tt.wantTax)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestCalcLineAmounts_InvalidTaxCd(t *testing.T) {
	if _, _, _, err := calcLineAmounts(100, 1, "99"); err == nil {
		t.Error("expected an error for an unknown tax classification")
	}
	if _, _, _, err := calcLineAmounts(100, 1, ""); err == nil {
		t.Error("expected an error for an empty tax classification")
	}
}
