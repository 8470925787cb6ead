package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports/mocks"
)

func TestFingerprintServiceReturnsStoredAgent(t *testing.T) {
	repo := mocks.NewMockFingerprintRepository(t)
	generator := mocks.NewMockUserAgentGenerator(t)
	service := NewFingerprintService(repo, generator)

	repo.EXPECT().List(mockAnyContext()).Return([]domain.Fingerprint{{SessionName: "alice", UserAgent: "ua-alice"}}, nil).Once()

	ua, err := service.UserAgent(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "ua-alice", ua)

	ua, err = service.UserAgent(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "ua-alice", ua)
}

func TestFingerprintServiceAppendsNewSessionOnce(t *testing.T) {
	repo := mocks.NewMockFingerprintRepository(t)
	generator := mocks.NewMockUserAgentGenerator(t)
	service := NewFingerprintService(repo, generator)

	repo.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()
	generator.EXPECT().Generate().Return("ua-bob").Once()
	repo.EXPECT().Append(mockAnyContext(), domain.Fingerprint{SessionName: "bob", UserAgent: "ua-bob"}).Return(domain.Fingerprint{SessionName: "bob", UserAgent: "ua-bob"}, nil).Once()

	for range 3 {
		ua, err := service.UserAgent(context.Background(), "bob")
		require.NoError(t, err)
		assert.Equal(t, "ua-bob", ua)
	}
}

func TestFingerprintServiceDoesNotCacheFailedAppend(t *testing.T) {
	repo := mocks.NewMockFingerprintRepository(t)
	generator := mocks.NewMockUserAgentGenerator(t)
	service := NewFingerprintService(repo, generator)

	repo.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()
	generator.EXPECT().Generate().Return("ua-bob").Twice()
	repo.EXPECT().Append(mockAnyContext(), domain.Fingerprint{SessionName: "bob", UserAgent: "ua-bob"}).Return(domain.Fingerprint{}, errors.New("disk full")).Once()
	repo.EXPECT().Append(mockAnyContext(), domain.Fingerprint{SessionName: "bob", UserAgent: "ua-bob"}).Return(domain.Fingerprint{SessionName: "bob", UserAgent: "ua-bob"}, nil).Once()

	_, err := service.UserAgent(context.Background(), "bob")
	require.Error(t, err)
	assert.ErrorContains(t, err, "save user agent")

	ua, err := service.UserAgent(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "ua-bob", ua)
}

func TestFingerprintServiceKeepsAgentStoredByAnotherWriter(t *testing.T) {
	repo := mocks.NewMockFingerprintRepository(t)
	generator := mocks.NewMockUserAgentGenerator(t)
	service := NewFingerprintService(repo, generator)

	repo.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()
	generator.EXPECT().Generate().Return("ua-fresh").Once()
	repo.EXPECT().Append(mockAnyContext(), domain.Fingerprint{SessionName: "bob", UserAgent: "ua-fresh"}).
		Return(domain.Fingerprint{SessionName: "bob", UserAgent: "ua-stored"}, nil).Once()

	ua, err := service.UserAgent(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "ua-stored", ua)

	ua, err = service.Lookup(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "ua-stored", ua)
}

func TestFingerprintServiceLookup(t *testing.T) {
	repo := mocks.NewMockFingerprintRepository(t)
	service := NewFingerprintService(repo, mocks.NewMockUserAgentGenerator(t))

	repo.EXPECT().List(mockAnyContext()).Return([]domain.Fingerprint{{SessionName: "alice", UserAgent: "ua-alice"}}, nil).Once()

	ua, err := service.Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "ua-alice", ua)

	_, err = service.Lookup(context.Background(), "carol")
	assert.ErrorIs(t, err, domain.ErrFingerprintNotFound)
}

func TestFingerprintServiceRejectsEmptyName(t *testing.T) {
	service := NewFingerprintService(mocks.NewMockFingerprintRepository(t), mocks.NewMockUserAgentGenerator(t))

	_, err := service.UserAgent(context.Background(), " ")
	assert.ErrorContains(t, err, "session name is empty")
}

func TestFingerprintServiceListFailure(t *testing.T) {
	repo := mocks.NewMockFingerprintRepository(t)
	service := NewFingerprintService(repo, mocks.NewMockUserAgentGenerator(t))

	repo.EXPECT().List(mockAnyContext()).Return(nil, errors.New("parse error")).Once()

	_, err := service.UserAgent(context.Background(), "alice")
	assert.ErrorContains(t, err, "load user agents")
}
