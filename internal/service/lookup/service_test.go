package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/domain"
	"github.com/heartmarshall/wordroots/internal/metrics"
)

const testCorpus = `run dash sprint

clear lucid
{
(spec): to see
spectacle
spectator
}
`

type observation struct {
	kind    string
	outcome string
	words   int
}

type recorderMock struct {
	calls []observation
}

func (m *recorderMock) ObserveLookup(kind, outcome string, words int) {
	m.calls = append(m.calls, observation{kind, outcome, words})
}

func newTestService(t *testing.T) (*Service, *recorderMock) {
	t.Helper()
	rec := &recorderMock{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, corpus.Load(testCorpus), rec), rec
}

func TestService_Anchor(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(t)

	group, err := svc.Anchor(context.Background(), "  run ")
	require.NoError(t, err)
	assert.Equal(t, "run", group.Anchor)
	assert.Equal(t, []observation{{metrics.KindAnchor, metrics.OutcomeHit, 0}}, rec.calls)
}

func TestService_Anchor_NotFound(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(t)

	_, err := svc.Anchor(context.Background(), "walk")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []observation{{metrics.KindAnchor, metrics.OutcomeMiss, 0}}, rec.calls)
}

func TestService_Root(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(t)

	words, err := svc.Root(context.Background(), "spec")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"clear", "spectacle", "spectator"}, words)
	assert.Equal(t, []observation{{metrics.KindRoot, metrics.OutcomeHit, 3}}, rec.calls)
}

func TestService_Root_NotFound(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(t)

	_, err := svc.Root(context.Background(), "dur")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []observation{{metrics.KindRoot, metrics.OutcomeMiss, 0}}, rec.calls)
}

func TestService_EmptyQueryIsValidationError(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(t)

	_, err := svc.Anchor(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Root(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "root", verr.Errors[0].Field)

	assert.Equal(t, []observation{
		{metrics.KindAnchor, metrics.OutcomeInvalid, 0},
		{metrics.KindRoot, metrics.OutcomeInvalid, 0},
	}, rec.calls)
}

func TestService_Info(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	info := svc.Info(context.Background())
	assert.Equal(t, 2, info.Stats.Groups)
	assert.Equal(t, 1, info.Stats.Roots)
}

func TestService_NilRecorder(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(logger, corpus.Load(testCorpus), nil)

	_, err := svc.Anchor(context.Background(), "run")
	require.NoError(t, err)
}
