package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvoiceNotFound, "Fatura não encontrada", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvoiceNotFound, body.Code)
	assert.Equal(t, "Fatura não encontrada", body.Message)
	assert.Nil(t, body.Details)
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("NOPE_001"))
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidFormat))
}
