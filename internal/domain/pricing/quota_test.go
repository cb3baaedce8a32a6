package pricing

import (
	"testing"

	"gerador_licitacao/internal/domain/entities"
)

func TestQuotaSplit(t *testing.T) {
	tests := []struct {
		name          string
		procType      entities.ProcurementType
		modality      entities.BiddingModality
		unitEstimate  float64
		totalQuantity float64
		wantReserved  float64
		wantOpen      float64
		wantEmpty     bool
	}{
		{
			name:          "common modality splits 25/75",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityPregaoEletronicoComum,
			unitEstimate:  10,
			totalQuantity: 100,
			wantReserved:  25,
			wantOpen:      75,
		},
		{
			name:          "common modality floors reserved",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityPregaoEletronicoComum,
			unitEstimate:  10,
			totalQuantity: 10,
			wantReserved:  2,
			wantOpen:      8,
		},
		{
			name:          "srp modality caps by value",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityPregaoEletronicoRP,
			unitEstimate:  1000,
			totalQuantity: 100,
			wantReserved:  25, // min(25000, 80000) / 1000
			wantOpen:      75,
		},
		{
			name:          "srp modality hits the 80k cap",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityPregaoEletronicoRP,
			unitEstimate:  1000,
			totalQuantity: 2000, // totalValue 2M, 25% = 500k, capped at 80k
			wantReserved:  80,
			wantOpen:      1920,
		},
		{
			name:          "over the exemption threshold",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityPregaoEletronicoComum,
			unitEstimate:  5_000_000,
			totalQuantity: 2,
			wantEmpty:     true,
		},
		{
			name:          "other modality",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityOutra,
			unitEstimate:  10,
			totalQuantity: 100,
			wantEmpty:     true,
		},
		{
			name:          "non-licitacao never splits",
			procType:      entities.ProcurementAdesaoAta,
			modality:      entities.ModalityPregaoEletronicoComum,
			unitEstimate:  10,
			totalQuantity: 100,
			wantEmpty:     true,
		},
		{
			name:          "srp with zero unit estimate",
			procType:      entities.ProcurementLicitacao,
			modality:      entities.ModalityPregaoEletronicoRP,
			unitEstimate:  0,
			totalQuantity: 100,
			wantReserved:  0,
			wantOpen:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotas := QuotaSplit(tt.procType, tt.modality, tt.unitEstimate, tt.totalQuantity)

			if tt.wantEmpty {
				if len(quotas) != 0 {
					t.Fatalf("expected no quotas, got %+v", quotas)
				}
				return
			}

			var reserved, open *entities.Quota
			for i := range quotas {
				switch quotas[i].Type {
				case entities.QuotaReservadaMEEPP:
					reserved = &quotas[i]
				case entities.QuotaAmplaConcorrencia:
					open = &quotas[i]
				}
			}

			if tt.wantReserved > 0 {
				if reserved == nil {
					t.Fatalf("expected reserved quota, got %+v", quotas)
				}
				if reserved.Quantity != tt.wantReserved {
					t.Fatalf("reserved = %v, want %v", reserved.Quantity, tt.wantReserved)
				}
				if reserved.TROrder != "1.1" {
					t.Fatalf("reserved TR order = %q, want 1.1", reserved.TROrder)
				}
			} else if reserved != nil {
				t.Fatalf("expected no reserved quota, got %+v", *reserved)
			}

			if tt.wantOpen > 0 {
				if open == nil {
					t.Fatalf("expected open quota, got %+v", quotas)
				}
				if open.Quantity != tt.wantOpen {
					t.Fatalf("open = %v, want %v", open.Quantity, tt.wantOpen)
				}
				if open.TROrder != "1.2" {
					t.Fatalf("open TR order = %q, want 1.2", open.TROrder)
				}
			} else if open != nil {
				t.Fatalf("expected no open quota, got %+v", *open)
			}
		})
	}
}
