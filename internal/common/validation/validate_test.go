package validation_test

import (
	"testing"

	"github.com/fintechlabs/go-wallet-gate/internal/common/validation"
	"github.com/fintechlabs/go-wallet-gate/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_SubmitIntentRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SubmitIntentRequest
		wantErr bool
	}{
		{
			name: "happy path",
			req: models.SubmitIntentRequest{
				Kind:         string(models.KindBankTransfer),
				Amount:       "500",
				Counterparty: "Jane Doe",
			},
			wantErr: false,
		},
		{
			name: "zero amount rejected",
			req: models.SubmitIntentRequest{
				Kind:         string(models.KindBankTransfer),
				Amount:       "0",
				Counterparty: "Jane Doe",
			},
			wantErr: true,
		},
		{
			name: "negative amount rejected",
			req: models.SubmitIntentRequest{
				Kind:         string(models.KindTrade),
				Amount:       "-1",
				Counterparty: "AAPL - BUY",
			},
			wantErr: true,
		},
		{
			name: "non numeric amount rejected",
			req: models.SubmitIntentRequest{
				Kind:         string(models.KindRecharge),
				Amount:       "ten",
				Counterparty: "Netflix",
			},
			wantErr: true,
		},
		{
			name: "missing counterparty rejected",
			req: models.SubmitIntentRequest{
				Kind:   string(models.KindBankTransfer),
				Amount: "100",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
