package interaction

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	AppendFunc        func(ctx context.Context, contactID uuid.UUID, date time.Time, text string) (*domain.InteractionLog, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.InteractionLog, error)
	UpdateTextFunc    func(ctx context.Context, id uuid.UUID, text string) (*domain.InteractionLog, error)
	UpdateDateFunc    func(ctx context.Context, id uuid.UUID, date time.Time) (*domain.InteractionLog, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (bool, error)
	ListByContactFunc func(ctx context.Context, contactID uuid.UUID) ([]domain.InteractionLog, error)
	ListSinceFunc     func(ctx context.Context, since time.Time) ([]domain.RecentLog, error)

	calls struct {
		Append []struct {
			ContactID uuid.UUID
			Date      time.Time
			Text      string
		}
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateText []struct {
			ID   uuid.UUID
			Text string
		}
		UpdateDate []struct {
			ID   uuid.UUID
			Date time.Time
		}
		Delete []struct {
			ID uuid.UUID
		}
		ListByContact []struct {
			ContactID uuid.UUID
		}
		ListSince []struct {
			Since time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *logRepoMock) Append(ctx context.Context, contactID uuid.UUID, date time.Time, text string) (*domain.InteractionLog, error) {
	if mock.AppendFunc == nil {
		panic("logRepoMock.AppendFunc: method is nil but logRepo.Append was just called")
	}
	mock.lock.Lock()
	mock.calls.Append = append(mock.calls.Append, struct {
		ContactID uuid.UUID
		Date      time.Time
		Text      string
	}{ContactID: contactID, Date: date, Text: text})
	mock.lock.Unlock()
	return mock.AppendFunc(ctx, contactID, date, text)
}

func (mock *logRepoMock) AppendCalls() []struct {
	ContactID uuid.UUID
	Date      time.Time
	Text      string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Append
}

func (mock *logRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InteractionLog, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *logRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *logRepoMock) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.InteractionLog, error) {
	if mock.UpdateTextFunc == nil {
		panic("logRepoMock.UpdateTextFunc: method is nil but logRepo.UpdateText was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateText = append(mock.calls.UpdateText, struct {
		ID   uuid.UUID
		Text string
	}{ID: id, Text: text})
	mock.lock.Unlock()
	return mock.UpdateTextFunc(ctx, id, text)
}

func (mock *logRepoMock) UpdateTextCalls() []struct {
	ID   uuid.UUID
	Text string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateText
}

func (mock *logRepoMock) UpdateDate(ctx context.Context, id uuid.UUID, date time.Time) (*domain.InteractionLog, error) {
	if mock.UpdateDateFunc == nil {
		panic("logRepoMock.UpdateDateFunc: method is nil but logRepo.UpdateDate was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateDate = append(mock.calls.UpdateDate, struct {
		ID   uuid.UUID
		Date time.Time
	}{ID: id, Date: date})
	mock.lock.Unlock()
	return mock.UpdateDateFunc(ctx, id, date)
}

func (mock *logRepoMock) UpdateDateCalls() []struct {
	ID   uuid.UUID
	Date time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateDate
}

func (mock *logRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *logRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *logRepoMock) ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.InteractionLog, error) {
	if mock.ListByContactFunc == nil {
		panic("logRepoMock.ListByContactFunc: method is nil but logRepo.ListByContact was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByContact = append(mock.calls.ListByContact, struct {
		ContactID uuid.UUID
	}{ContactID: contactID})
	mock.lock.Unlock()
	return mock.ListByContactFunc(ctx, contactID)
}

func (mock *logRepoMock) ListByContactCalls() []struct {
	ContactID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByContact
}

func (mock *logRepoMock) ListSince(ctx context.Context, since time.Time) ([]domain.RecentLog, error) {
	if mock.ListSinceFunc == nil {
		panic("logRepoMock.ListSinceFunc: method is nil but logRepo.ListSince was just called")
	}
	mock.lock.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, struct {
		Since time.Time
	}{Since: since})
	mock.lock.Unlock()
	return mock.ListSinceFunc(ctx, since)
}

func (mock *logRepoMock) ListSinceCalls() []struct {
	Since time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListSince
}

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	TouchFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Touch []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *contactRepoMock) Touch(ctx context.Context, id uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("contactRepoMock.TouchFunc: method is nil but contactRepo.Touch was just called")
	}
	mock.lock.Lock()
	mock.calls.Touch = append(mock.calls.Touch, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.TouchFunc(ctx, id)
}

func (mock *contactRepoMock) TouchCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Touch
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
