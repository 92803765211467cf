package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mandymoney/quote-craft/internal/catalog"
	"github.com/mandymoney/quote-craft/internal/db"
	"github.com/mandymoney/quote-craft/internal/mail"
	"github.com/mandymoney/quote-craft/internal/mocks"
	"github.com/mandymoney/quote-craft/internal/services"
	"github.com/mandymoney/quote-craft/internal/types"
)

type dispatchFixture struct {
	service  *services.DispatchService
	renderer *mocks.MockDocumentRenderer
	uploader *mocks.MockStorageUploader
	notifier *mocks.MockAlertNotifier
	queue    *mocks.MockAttemptQueuePublisher
	queries  *mocks.MockQuerier
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	ctrl := gomock.NewController(t)

	f := &dispatchFixture{
		renderer: mocks.NewMockDocumentRenderer(ctrl),
		uploader: mocks.NewMockStorageUploader(ctrl),
		notifier: mocks.NewMockAlertNotifier(ctrl),
		queue:    mocks.NewMockAttemptQueuePublisher(ctrl),
		queries:  mocks.NewMockQuerier(ctrl),
	}
	f.service = services.NewDispatchService(
		services.NewValidationService(),
		f.renderer,
		f.uploader,
		f.notifier,
		f.queue,
		f.queries,
		mail.NewComposer("orders@example.com"),
	)
	return f
}

func completeSnapshot() services.SessionSnapshot {
	pricing := services.NewPricingService()
	teacherTier, _ := catalog.TierByID(catalog.TeacherTierID)
	studentTier, _ := catalog.TierByID(catalog.StudentTierID)

	breakdown := pricing.PriceCombination(services.CombinationParams{
		TeacherTier:       &teacherTier,
		StudentTier:       &studentTier,
		TeacherCount:      2,
		StudentCount:      100,
		StudentPriceCents: catalog.StudentPriceCents(100),
	})

	return services.SessionSnapshot{
		SessionID:    uuid.New(),
		Info:         completeInfo(),
		TeacherCount: 2,
		StudentCount: 100,
		Selection: types.Selection{
			Mode: types.SelectionModeTierPair,
			TierPair: &types.TeacherStudentSelection{
				TeacherTierID: catalog.TeacherTierID,
				StudentTierID: catalog.StudentTierID,
				TeacherCount:  2,
				StudentCount:  100,
			},
		},
		AccessPeriodMonths: 12,
		ProgramStartDate:   time.Now(),
		Breakdown:          breakdown,
	}
}

// A gate rejection must produce no side effects at all: no render, no
// upload, no audit write, no alert. The mocks have no expectations, so
// any call fails the test.
func TestDispatchRejectedProducesNoSideEffects(t *testing.T) {
	f := newDispatchFixture(t)

	snapshot := completeSnapshot()
	snapshot.Info = types.SchoolInfo{}

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeOrder)
	require.NoError(t, err)

	assert.Equal(t, services.DispatchRejected, result.Status)
	assert.Equal(t, []string{
		"School name",
		"Coordinator name",
		"Coordinator email",
		"Contact phone",
		"Complete school address",
	}, result.MissingFields)
	assert.Empty(t, result.Reference)
	assert.Nil(t, result.PDF)
	assert.False(t, result.AcknowledgementRequired)
}

func TestDispatchQuoteHappyPath(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()
	pdf := []byte("%PDF-1.4 test")
	url := "https://documents.example.com/quote.pdf"

	f.renderer.EXPECT().RenderQuote(gomock.Any()).Return(pdf, nil)
	f.uploader.EXPECT().Upload(gomock.Any(), pdf, gomock.Any()).Return(url, nil)
	f.queries.EXPECT().CreateQuoteAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateQuoteAttemptParams) (db.QuoteAttempt, error) {
			assert.Equal(t, string(types.AttemptTypeQuote), params.AttemptType)
			assert.Equal(t, "Springfield High", params.SchoolName.String)
			assert.Equal(t, int32(2), params.TeacherCount)
			assert.Equal(t, int32(100), params.StudentCount)
			assert.Equal(t, int64(879780), params.TotalPriceCents)
			assert.True(t, params.PdfUrl.Valid)
			assert.Equal(t, url, params.PdfUrl.String)
			return db.QuoteAttempt{}, nil
		})
	f.notifier.EXPECT().NotifyQuoteAttempt(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
	require.NoError(t, err)

	assert.Equal(t, services.DispatchCompleted, result.Status)
	assert.True(t, strings.HasPrefix(result.Reference, "MM-"))
	assert.Equal(t, pdf, result.PDF)
	assert.True(t, strings.HasPrefix(result.Filename, "MandyMoney_Quote_"))
	require.NotNil(t, result.PDFURL)
	assert.Equal(t, url, *result.PDFURL)
	assert.Empty(t, result.Warnings)

	// A plain quote export ends at the download; no email handoff.
	assert.Empty(t, result.Mailto)
	assert.False(t, result.AcknowledgementRequired)
}

func TestDispatchOrderOpensMailClient(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()
	url := "https://documents.example.com/order.pdf"

	f.renderer.EXPECT().RenderOrder(gomock.Any()).Return([]byte("%PDF"), nil)
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(url, nil)
	f.queries.EXPECT().CreateQuoteAttempt(gomock.Any(), gomock.Any()).Return(db.QuoteAttempt{}, nil)
	f.notifier.EXPECT().NotifyQuoteAttempt(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeOrder)
	require.NoError(t, err)

	assert.Equal(t, services.DispatchCompleted, result.Status)
	assert.True(t, strings.HasPrefix(result.Filename, "MandyMoney_Order_"))
	assert.True(t, strings.HasPrefix(result.Mailto, "mailto:orders@example.com?"))
	assert.True(t, result.AcknowledgementRequired)
}

func TestDispatchUploadFailureDegrades(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()

	f.renderer.EXPECT().RenderQuote(gomock.Any()).Return([]byte("%PDF"), nil)
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unavailable"))
	f.queries.EXPECT().CreateQuoteAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateQuoteAttemptParams) (db.QuoteAttempt, error) {
			// The audit record is written with a null URL.
			assert.False(t, params.PdfUrl.Valid)
			return db.QuoteAttempt{}, nil
		})
	f.notifier.EXPECT().NotifyQuoteAttempt(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
	require.NoError(t, err)

	assert.Equal(t, services.DispatchCompleted, result.Status)
	assert.Nil(t, result.PDFURL)
	assert.NotEmpty(t, result.PDF, "the local download survives the upload failure")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "downloaded copy")
}

func TestDispatchRenderFailureIsFatal(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()

	f.renderer.EXPECT().RenderQuote(gomock.Any()).Return(nil, errors.New("layout engine exploded"))

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
	require.Error(t, err)
	assert.Nil(t, result)
	// No audit record, upload or alert: the mocks would flag any call.
}

func TestDispatchAuditFailureEnqueuesReplay(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()

	f.renderer.EXPECT().RenderQuote(gomock.Any()).Return([]byte("%PDF"), nil)
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://example.com/doc.pdf", nil)
	f.queries.EXPECT().CreateQuoteAttempt(gomock.Any(), gomock.Any()).
		Return(db.QuoteAttempt{}, errors.New("connection refused"))
	f.queue.EXPECT().PublishQuoteAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, attempt types.QuoteAttempt) error {
			assert.Equal(t, types.AttemptTypeQuote, attempt.AttemptType)
			assert.Equal(t, "Springfield High", attempt.SchoolName)
			return nil
		})
	f.notifier.EXPECT().NotifyQuoteAttempt(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
	require.NoError(t, err)

	assert.Equal(t, services.DispatchCompleted, result.Status)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "could not be recorded")
}

func TestDispatchNotifierFailureIsSwallowed(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()

	f.renderer.EXPECT().RenderQuote(gomock.Any()).Return([]byte("%PDF"), nil)
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://example.com/doc.pdf", nil)
	f.queries.EXPECT().CreateQuoteAttempt(gomock.Any(), gomock.Any()).Return(db.QuoteAttempt{}, nil)
	f.notifier.EXPECT().NotifyQuoteAttempt(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout"))

	result, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
	require.NoError(t, err)

	assert.Equal(t, services.DispatchCompleted, result.Status)
	assert.Empty(t, result.Warnings, "the alert is fire and forget; the user never hears about it")
}

func TestDispatchInvalidActionType(t *testing.T) {
	f := newDispatchFixture(t)

	_, err := f.service.Dispatch(context.Background(), completeSnapshot(), types.AttemptType("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid action type")
}

func TestDispatchGuardsConcurrentSameAction(t *testing.T) {
	f := newDispatchFixture(t)
	snapshot := completeSnapshot()

	entered := make(chan struct{})
	release := make(chan struct{})

	f.renderer.EXPECT().RenderQuote(gomock.Any()).
		DoAndReturn(func(types.DocumentData) ([]byte, error) {
			close(entered)
			<-release
			return []byte("%PDF"), nil
		})
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://example.com/doc.pdf", nil)
	f.queries.EXPECT().CreateQuoteAttempt(gomock.Any(), gomock.Any()).Return(db.QuoteAttempt{}, nil)
	f.notifier.EXPECT().NotifyQuoteAttempt(gomock.Any(), gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
		done <- err
	}()

	<-entered
	_, err := f.service.Dispatch(context.Background(), snapshot, types.AttemptTypeQuote)
	assert.ErrorIs(t, err, services.ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestBuildDocumentFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		action     types.AttemptType
		schoolName string
		want       string
	}{
		{"quote with school name", types.AttemptTypeQuote, "Springfield High", "MandyMoney_Quote_Springfield-High_2026-08-30.pdf"},
		{"order with school name", types.AttemptTypeOrder, "Springfield High", "MandyMoney_Order_Springfield-High_2026-08-30.pdf"},
		{"enquiry uses quote layout", types.AttemptTypeEnquiry, "Springfield High", "MandyMoney_Quote_Springfield-High_2026-08-30.pdf"},
		{"blank name falls back", types.AttemptTypeQuote, "   ", "MandyMoney_Quote_School_2026-08-30.pdf"},
		{"punctuation stripped", types.AttemptTypeQuote, "St. Mary's (Nth)", "MandyMoney_Quote_St-Marys-Nth_2026-08-30.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.BuildDocumentFilename(tt.action, tt.schoolName, now))
		})
	}
}
