//go:build !integration

package scanner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/mocks"
	"github.com/medpak/webster-service/internal/scanner"
	"github.com/medpak/webster-service/internal/service"
)

func receiveEvent(t *testing.T, events <-chan scanner.Event) scanner.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed unexpectedly")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scan event")
		return scanner.Event{}
	}
}

func TestSession_VerifiesEachBarcode(t *testing.T) {
	packID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	workflow := new(mocks.MockWorkflow)
	workflow.On("VerifyByBarcode", mock.Anything, packID, "93425786", pharmacistID).
		Return(&service.VerificationResult{Outcome: service.Verified, Barcode: "93425786"}, nil).Once()
	workflow.On("VerifyByBarcode", mock.Anything, packID, "00000000", pharmacistID).
		Return(&service.VerificationResult{Outcome: service.NotFound, Barcode: "00000000"}, nil).Once()

	source := make(scanner.ChannelSource, 2)
	session := scanner.NewSession(context.Background(), workflow, source, packID, pharmacistID)
	defer session.Stop()

	source <- "93425786"
	ev := receiveEvent(t, session.Events())
	require.NoError(t, ev.Err)
	assert.Equal(t, "93425786", ev.Barcode)
	assert.Equal(t, service.Verified, ev.Result.Outcome)

	source <- "00000000"
	ev = receiveEvent(t, session.Events())
	require.NoError(t, ev.Err)
	assert.Equal(t, service.NotFound, ev.Result.Outcome)

	workflow.AssertExpectations(t)
}

func TestSession_PropagatesWorkflowErrors(t *testing.T) {
	packID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	workflow := new(mocks.MockWorkflow)
	workflow.On("VerifyByBarcode", mock.Anything, packID, "93425786", pharmacistID).
		Return(nil, service.ErrPackNotFound).Once()

	source := make(scanner.ChannelSource, 1)
	session := scanner.NewSession(context.Background(), workflow, source, packID, pharmacistID)
	defer session.Stop()

	source <- "93425786"
	ev := receiveEvent(t, session.Events())
	assert.ErrorIs(t, ev.Err, service.ErrPackNotFound)
	assert.Nil(t, ev.Result)
}

func TestSession_StopIsIdempotent(t *testing.T) {
	workflow := new(mocks.MockWorkflow)
	source := make(scanner.ChannelSource)

	session := scanner.NewSession(context.Background(), workflow, source, primitive.NewObjectID(), primitive.NewObjectID())

	session.Stop()
	session.Stop()

	_, ok := <-session.Events()
	assert.False(t, ok, "event channel should be closed after Stop")
	workflow.AssertNotCalled(t, "VerifyByBarcode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSession_ContextCancellationEndsSession(t *testing.T) {
	workflow := new(mocks.MockWorkflow)
	source := make(scanner.ChannelSource)

	ctx, cancel := context.WithCancel(context.Background())
	session := scanner.NewSession(ctx, workflow, source, primitive.NewObjectID(), primitive.NewObjectID())

	cancel()

	select {
	case _, ok := <-session.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end on context cancellation")
	}
}

func TestSession_SourceCloseEndsSession(t *testing.T) {
	packID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	workflow := new(mocks.MockWorkflow)
	workflow.On("VerifyByBarcode", mock.Anything, packID, "93425786", pharmacistID).
		Return(nil, errors.New("storage down")).Once()

	source := make(scanner.ChannelSource, 1)
	session := scanner.NewSession(context.Background(), workflow, source, packID, pharmacistID)

	source <- "93425786"
	ev := receiveEvent(t, session.Events())
	assert.Error(t, ev.Err)

	close(source)

	select {
	case _, ok := <-session.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end when source closed")
	}
	workflow.AssertExpectations(t)
}
