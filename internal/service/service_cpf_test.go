package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/ms-cpf/internal/logger"
	"github.com/MKhiriev/ms-cpf/internal/metrics"
	"github.com/MKhiriev/ms-cpf/internal/mock"
	"github.com/MKhiriev/ms-cpf/internal/validators"
	"github.com/MKhiriev/ms-cpf/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func validationsCount(m *metrics.Metrics, result string) float64 {
	return testutil.ToFloat64(m.Validations.WithLabelValues(result))
}

// ─────────────────────────────────────────────
// ValidateCPF with the real validator
// ─────────────────────────────────────────────

func TestCPFService_ValidateCPF_Valid(t *testing.T) {
	m := newTestMetrics()
	svc := NewCPFService(validators.NewCPFValidator(), m, logger.Nop())

	resp, err := svc.ValidateCPF(context.Background(), "529.982.247-25")

	require.NoError(t, err)
	assert.Equal(t, models.CPFResponse{CPF: "529.982.247-25", IsValid: true}, resp)
	assert.Equal(t, float64(1), validationsCount(m, metrics.ResultValid))
	assert.Equal(t, float64(0), validationsCount(m, metrics.ResultInvalid))
}

func TestCPFService_ValidateCPF_Invalid(t *testing.T) {
	m := newTestMetrics()
	svc := NewCPFService(validators.NewCPFValidator(), m, logger.Nop())

	resp, err := svc.ValidateCPF(context.Background(), "11111111111")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCPF)
	assert.ErrorIs(t, err, validators.ErrInvalidCPF)
	assert.False(t, resp.IsValid)
	assert.Equal(t, float64(1), validationsCount(m, metrics.ResultInvalid))
}

func TestCPFService_ValidateCPF_Empty(t *testing.T) {
	m := newTestMetrics()
	svc := NewCPFService(validators.NewCPFValidator(), m, logger.Nop())

	resp, err := svc.ValidateCPF(context.Background(), "")

	assert.ErrorIs(t, err, ErrCPFIsRequired)
	assert.Equal(t, models.CPFResponse{}, resp)
	assert.Equal(t, float64(0), validationsCount(m, metrics.ResultValid))
	assert.Equal(t, float64(0), validationsCount(m, metrics.ResultInvalid))
}

func TestCPFService_ValidateCPF_EchoesInputUnmodified(t *testing.T) {
	svc := NewCPFService(validators.NewCPFValidator(), newTestMetrics(), logger.Nop())

	input := "cpf: 529.982.247-25"
	resp, err := svc.ValidateCPF(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, input, resp.CPF)
}

// ─────────────────────────────────────────────
// ValidateCPF with a mocked validator
// ─────────────────────────────────────────────

func TestCPFService_ValidateCPF_PassesFieldScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(ctx, "52998224725", validators.FieldCPF).Return(nil)

	svc := NewCPFService(v, newTestMetrics(), logger.Nop())
	resp, err := svc.ValidateCPF(ctx, "52998224725")

	require.NoError(t, err)
	assert.True(t, resp.IsValid)
}

func TestCPFService_ValidateCPF_UnexpectedValidatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).Return(validators.ErrUnsupportedType)

	m := newTestMetrics()
	svc := NewCPFService(v, m, logger.Nop())
	_, err := svc.ValidateCPF(context.Background(), "52998224725")

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrUnsupportedType)
	assert.NotErrorIs(t, err, ErrInvalidCPF)
	assert.Equal(t, float64(0), validationsCount(m, metrics.ResultValid))
	assert.Equal(t, float64(0), validationsCount(m, metrics.ResultInvalid))
}
