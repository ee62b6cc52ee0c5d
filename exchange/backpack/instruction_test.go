package backpack

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveInstruction(t *testing.T) {
	tests := []struct {
		method      string
		path        string
		instruction string
	}{
		{http.MethodGet, APICapital, "balanceQuery"},
		{http.MethodPost, APIOrder, "orderExecute"},
		{http.MethodPost, APIOrders, "orderExecute"},
		{http.MethodDelete, APIOrder, "orderCancel"},
		{http.MethodDelete, APIOrders, "orderCancelAll"},
		{http.MethodGet, APIOrders, "orderQueryAll"},
		{http.MethodPatch, APIAccount, "accountUpdate"},
		{http.MethodGet, APIFillHistory, "fillHistoryQueryAll"},
		{http.MethodPost, APIRFQ, "rfqSubmit"},
	}

	for _, tt := range tests {
		instruction, ok := ResolveInstruction(tt.method, tt.path)

		assert.True(t, ok, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.instruction, instruction, "%s %s", tt.method, tt.path)
	}
}

func TestResolveInstructionPublicEndpoints(t *testing.T) {
	for _, r := range []route{
		{http.MethodGet, APIMarkets},
		{http.MethodGet, APITicker},
		{http.MethodGet, APIDepth},
		{http.MethodGet, APIKlines},
		{http.MethodGet, APIUser},
		{http.MethodPut, APIOrder},
		{http.MethodGet, "/api/v1/unknown"},
	} {
		_, ok := ResolveInstruction(r.method, r.path)

		assert.False(t, ok, "%s %s", r.method, r.path)
	}
}
