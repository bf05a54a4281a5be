package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"
	mock_interfaces "freightmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	quotes    *mock_interfaces.MockIQuoteRepository
	freights  *mock_interfaces.MockIFreightRepository
	lifecycle *mock_interfaces.MockILifecycleRepository
	carriers  *mock_interfaces.MockICarrierRepository
	users     *mock_interfaces.MockIUserRepository
	notifier  *mock_interfaces.MockINotifier
	mailer    *mock_interfaces.MockIMailer
}

func newQuoteUseCaseWithMocks(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		quotes:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		freights:  mock_interfaces.NewMockIFreightRepository(ctrl),
		lifecycle: mock_interfaces.NewMockILifecycleRepository(ctrl),
		carriers:  mock_interfaces.NewMockICarrierRepository(ctrl),
		users:     mock_interfaces.NewMockIUserRepository(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
		mailer:    mock_interfaces.NewMockIMailer(ctrl),
	}
	uc := NewQuoteUseCase(m.quotes, m.freights, m.lifecycle, m.carriers, m.users, m.notifier, m.mailer)
	return uc, m
}

// expectCarrierCaller wires the auth-uid -> user -> carrier lookup chain.
// The returned client has no email so no mail goroutine is spawned.
func (m quoteMocks) expectCarrierCaller(authUID, userID, carrierID string) {
	m.users.EXPECT().GetByAuthUID(gomock.Any(), authUID).Return(entities.User{ID: userID}, nil)
	m.carriers.EXPECT().GetByUserID(gomock.Any(), userID).Return(entities.Carrier{ID: carrierID, UserID: userID}, nil)
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("empty request id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "   ", EstimatedPrice: 10})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("non positive price", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 0})
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("caller has no carrier profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "u-1"}, nil)
		m.carriers.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Carrier{}, nil)

		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 100})
		if !errors.Is(err, ErrCarrierNotFound) {
			t.Fatalf("expected ErrCarrierNotFound, got %v", err)
		}
	})

	t.Run("request no longer open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").
			Return(entities.FreightRequest{ID: "f-1", Status: entities.FreightStatusPending}, nil)

		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 100})
		if !errors.Is(err, ErrIllegalState) {
			t.Fatalf("expected ErrIllegalState, got %v", err)
		}
	})

	t.Run("duplicate pending quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").
			Return(entities.FreightRequest{ID: "f-1", Status: entities.FreightStatusWithoutCarrier}, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return([]entities.Quote{
			{ID: "q-old", RequestID: "f-1", CarrierID: "c-1", Status: entities.QuoteStatusPending},
		}, nil)

		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 100})
		if !errors.Is(err, ErrDuplicatePendingQuote) {
			t.Fatalf("expected ErrDuplicatePendingQuote, got %v", err)
		}
	})

	t.Run("rejected quote does not block a new one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").
			Return(entities.FreightRequest{ID: "f-1", ClientID: "client-1", Status: entities.FreightStatusWithoutCarrier}, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return([]entities.Quote{
			{ID: "q-old", RequestID: "f-1", CarrierID: "c-1", Status: entities.QuoteStatusRejected},
		}, nil)
		m.lifecycle.EXPECT().SubmitQuote(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).Return(nil)
		m.notifier.EXPECT().Publish(interfaces.EventQuoteSubmitted, gomock.Any())
		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.User{ID: "client-1"}, nil)

		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conditional put lost the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").
			Return(entities.FreightRequest{ID: "f-1", Status: entities.FreightStatusWithoutCarrier}, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return(nil, nil)
		m.lifecycle.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{RequestID: "f-1", EstimatedPrice: 100})
		if !errors.Is(err, ErrIllegalState) {
			t.Fatalf("expected ErrIllegalState, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").
			Return(entities.FreightRequest{ID: "f-1", ClientID: "client-1", Status: entities.FreightStatusWithoutCarrier}, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return(nil, nil)
		m.lifecycle.EXPECT().SubmitQuote(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) error {
				if q.ID == "" || q.RequestID != "f-1" || q.CarrierID != "c-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.EstimatedPrice != 1250.5 || q.Comment != "two movers included" {
					t.Fatalf("unexpected quote payload: %+v", q)
				}
				if q.Status != entities.QuoteStatusPending || q.CreatedAt.IsZero() {
					t.Fatalf("expected pending quote with timestamp, got %+v", q)
				}
				return nil
			},
		)
		m.notifier.EXPECT().Publish(interfaces.EventQuoteSubmitted, gomock.Any()).Do(
			func(_ string, payload map[string]any) {
				if payload["request_id"] != "f-1" || payload["carrier_id"] != "c-1" {
					t.Fatalf("unexpected event payload: %v", payload)
				}
			},
		)
		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.User{ID: "client-1"}, nil)

		q, err := uc.Submit(context.Background(), "uid-1", SubmitQuoteInput{
			RequestID:      " f-1 ",
			EstimatedPrice: 1250.5,
			Comment:        "  two movers included ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusPending {
			t.Fatalf("expected pending quote, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_ListByFreight(t *testing.T) {
	t.Run("empty request id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.ListByFreight(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return([]entities.Quote{
			{ID: "q-1", Status: entities.QuoteStatusPending},
			{ID: "q-2", Status: entities.QuoteStatusRejected},
			{ID: "q-3", Status: entities.QuoteStatusPending},
		}, nil).Times(2)

		all, err := uc.ListByFreight(context.Background(), "f-1", "")
		if err != nil || len(all) != 3 {
			t.Fatalf("expected 3 quotes, got %d (err %v)", len(all), err)
		}
		pending, err := uc.ListByFreight(context.Background(), "f-1", "pending")
		if err != nil || len(pending) != 2 {
			t.Fatalf("expected 2 pending quotes, got %d (err %v)", len(pending), err)
		}
	})
}

func TestQuoteUseCase_Accept(t *testing.T) {
	openFreight := entities.FreightRequest{
		ID:       "f-1",
		ClientID: "client-1",
		Status:   entities.FreightStatusWithoutCarrier,
	}
	pendingQuote := entities.Quote{
		ID:        "q-1",
		RequestID: "f-1",
		CarrierID: "c-1",
		Status:    entities.QuoteStatusPending,
	}

	t.Run("empty quote id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Accept(context.Background(), "uid-1", " ")
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("caller does not own the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-2").Return(entities.User{ID: "u-other"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(openFreight, nil)

		_, err := uc.Accept(context.Background(), "uid-2", "q-1")
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("request already assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		assigned := openFreight
		assigned.Status = entities.FreightStatusPending
		assigned.AcceptedQuoteID = "q-other"
		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "client-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(assigned, nil)

		_, err := uc.Accept(context.Background(), "uid-1", "q-1")
		if !errors.Is(err, ErrRequestAlreadyAssigned) {
			t.Fatalf("expected ErrRequestAlreadyAssigned, got %v", err)
		}
	})

	t.Run("quote no longer pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		withdrawn := pendingQuote
		withdrawn.Status = entities.QuoteStatusRejected
		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "client-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(withdrawn, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(openFreight, nil)

		_, err := uc.Accept(context.Background(), "uid-1", "q-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("transaction lost the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "client-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(openFreight, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return([]entities.Quote{pendingQuote}, nil)
		m.lifecycle.EXPECT().AcceptQuote(gomock.Any(), "f-1", "q-1", gomock.Nil()).
			Return(interfaces.ErrConditionFailed)

		_, err := uc.Accept(context.Background(), "uid-1", "q-1")
		if !errors.Is(err, ErrRequestAlreadyAssigned) {
			t.Fatalf("expected ErrRequestAlreadyAssigned, got %v", err)
		}
	})

	t.Run("success rejects pending siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "client-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(openFreight, nil)
		m.quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return([]entities.Quote{
			pendingQuote,
			{ID: "q-2", RequestID: "f-1", CarrierID: "c-2", Status: entities.QuoteStatusPending},
			{ID: "q-3", RequestID: "f-1", CarrierID: "c-3", Status: entities.QuoteStatusRejected},
		}, nil)
		m.lifecycle.EXPECT().AcceptQuote(gomock.Any(), "f-1", "q-1", []string{"q-2"}).Return(nil)
		m.notifier.EXPECT().Publish(interfaces.EventQuoteAccepted, gomock.Any())
		m.notifier.EXPECT().Publish(interfaces.EventQuoteRejected, gomock.Any())
		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.User{ID: "client-1"}, nil)

		q, err := uc.Accept(context.Background(), "uid-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted quote, got %s", q.Status)
		}
	})
}

// casLifecycle is an in-memory stand-in for the transactional repository:
// the first AcceptQuote commits, every later one fails its condition,
// mirroring what DynamoDB does when the request row already changed.
type casLifecycle struct {
	mu       sync.Mutex
	assigned bool
}

func (l *casLifecycle) SubmitQuote(context.Context, entities.Quote) error { return nil }

func (l *casLifecycle) AcceptQuote(context.Context, string, string, []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.assigned {
		return interfaces.ErrConditionFailed
	}
	l.assigned = true
	return nil
}

func (l *casLifecycle) CancelWithQuotes(context.Context, string, entities.FreightStatus, []string) error {
	return nil
}

func (l *casLifecycle) CreateRating(context.Context, entities.Rating) error { return nil }

func TestQuoteUseCase_AcceptConcurrentSingleWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	freights := mock_interfaces.NewMockIFreightRepository(ctrl)
	carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	mailer := mock_interfaces.NewMockIMailer(ctrl)

	// Every goroutine reads the same stale open snapshot; only the
	// conditional transaction decides who wins.
	users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").
		Return(entities.User{ID: "client-1"}, nil).AnyTimes()
	users.EXPECT().GetByID(gomock.Any(), "client-1").
		Return(entities.User{ID: "client-1"}, nil).AnyTimes()
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").
		Return(entities.Quote{ID: "q-1", RequestID: "f-1", CarrierID: "c-1", Status: entities.QuoteStatusPending}, nil).AnyTimes()
	freights.EXPECT().GetByID(gomock.Any(), "f-1").
		Return(entities.FreightRequest{ID: "f-1", ClientID: "client-1", Status: entities.FreightStatusWithoutCarrier}, nil).AnyTimes()
	quotes.EXPECT().ListByRequestID(gomock.Any(), "f-1").Return(nil, nil).AnyTimes()
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	uc := NewQuoteUseCase(quotes, freights, &casLifecycle{}, carriers, users, notifier, mailer)

	const callers = 16
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Accept(context.Background(), "uid-1", "q-1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrRequestAlreadyAssigned):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != callers-1 {
		t.Fatalf("expected exactly one winner, got wins=%d conflicts=%d", wins, conflicts)
	}
}

func TestQuoteUseCase_Reject(t *testing.T) {
	pendingQuote := entities.Quote{ID: "q-1", RequestID: "f-1", CarrierID: "c-1", Status: entities.QuoteStatusPending}
	openFreight := entities.FreightRequest{ID: "f-1", ClientID: "client-1", Status: entities.FreightStatusWithoutCarrier}

	t.Run("conditional update missed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "client-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(openFreight, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected).
			Return(entities.Quote{}, nil)

		_, err := uc.Reject(context.Background(), "uid-1", "q-1")
		if !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		rejected := pendingQuote
		rejected.Status = entities.QuoteStatusRejected
		m.users.EXPECT().GetByAuthUID(gomock.Any(), "uid-1").Return(entities.User{ID: "client-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f-1").Return(openFreight, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusPending, entities.QuoteStatusRejected).
			Return(rejected, nil)
		m.notifier.EXPECT().Publish(interfaces.EventQuoteRejected, gomock.Any())

		q, err := uc.Reject(context.Background(), "uid-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusRejected {
			t.Fatalf("expected rejected quote, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_Withdraw(t *testing.T) {
	pendingQuote := entities.Quote{ID: "q-1", RequestID: "f-1", CarrierID: "c-1", Status: entities.QuoteStatusPending}

	t.Run("empty quote id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, nil, nil)
		if err := uc.Withdraw(context.Background(), "uid-1", ""); !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("not the quote owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-2", "u-2", "c-2")
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)

		if err := uc.Withdraw(context.Background(), "uid-2", "q-1"); !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("quote already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		accepted := pendingQuote
		accepted.Status = entities.QuoteStatusAccepted
		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)

		if err := uc.Withdraw(context.Background(), "uid-1", "q-1"); !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("conditional delete missed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.quotes.EXPECT().DeletePending(gomock.Any(), "q-1").Return(interfaces.ErrConditionFailed)

		if err := uc.Withdraw(context.Background(), "uid-1", "q-1"); !errors.Is(err, ErrQuoteNotPending) {
			t.Fatalf("expected ErrQuoteNotPending, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCaseWithMocks(ctrl)

		m.expectCarrierCaller("uid-1", "u-1", "c-1")
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuote, nil)
		m.quotes.EXPECT().DeletePending(gomock.Any(), "q-1").Return(nil)

		if err := uc.Withdraw(context.Background(), "uid-1", "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
