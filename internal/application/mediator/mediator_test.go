package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/application/mediator"
)

type pingRequest struct{ Message string }

type pingHandler struct{}

func (h *pingHandler) Handle(_ context.Context, request mediator.Request) (mediator.Response, error) {
	return request.(*pingRequest).Message, nil
}

func TestMediator_DispatchesByRequestType(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingRequest](m, &pingHandler{}))

	response, err := m.Send(context.Background(), &pingRequest{Message: "pong"})

	require.NoError(t, err)
	assert.Equal(t, "pong", response)
}

func TestMediator_UnregisteredRequest(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), &pingRequest{})

	assert.Error(t, err)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingRequest](m, &pingHandler{}))

	err := mediator.RegisterHandler[*pingRequest](m, &pingHandler{})

	assert.Error(t, err)
}

func TestMediator_NilRequest(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), nil)

	assert.Error(t, err)
}
