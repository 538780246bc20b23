package seeding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Step
		wantErr bool
	}{
		{name: "vazio roda todas", input: nil, want: AllSteps},
		{name: "mantém a ordem de dependência", input: []string{"revenue", "Invoices"}, want: []Step{StepInvoices, StepRevenue}},
		{name: "ignora repetidos e espaços", input: []string{" users", "users", ""}, want: []Step{StepUsers}},
		{name: "etapa desconhecida", input: []string{"orders"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := ParseSteps(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, steps)
		})
	}
}
