package contact

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	CreateFunc              func(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetByNameFunc           func(ctx context.Context, name string) (*domain.Contact, error)
	ListFunc                func(ctx context.Context) ([]*domain.Contact, error)
	NamesFunc               func(ctx context.Context) ([]string, error)
	RecentByInteractionFunc func(ctx context.Context, limit int) ([]*domain.Contact, error)
	UpdateFunc              func(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			C *domain.Contact
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetByName []struct {
			Name string
		}
		List                []struct{}
		Names               []struct{}
		RecentByInteraction []struct {
			Limit int
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.ContactUpdateParams
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *contactRepoMock) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if mock.CreateFunc == nil {
		panic("contactRepoMock.CreateFunc: method is nil but contactRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		C *domain.Contact
	}{C: c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contactRepoMock) CreateCalls() []struct {
	C *domain.Contact
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *contactRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if mock.GetByIDFunc == nil {
		panic("contactRepoMock.GetByIDFunc: method is nil but contactRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *contactRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *contactRepoMock) GetByName(ctx context.Context, name string) (*domain.Contact, error) {
	if mock.GetByNameFunc == nil {
		panic("contactRepoMock.GetByNameFunc: method is nil but contactRepo.GetByName was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, struct {
		Name string
	}{Name: name})
	mock.lock.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *contactRepoMock) GetByNameCalls() []struct {
	Name string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByName
}

func (mock *contactRepoMock) List(ctx context.Context) ([]*domain.Contact, error) {
	if mock.ListFunc == nil {
		panic("contactRepoMock.ListFunc: method is nil but contactRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *contactRepoMock) ListCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *contactRepoMock) Names(ctx context.Context) ([]string, error) {
	if mock.NamesFunc == nil {
		panic("contactRepoMock.NamesFunc: method is nil but contactRepo.Names was just called")
	}
	mock.lock.Lock()
	mock.calls.Names = append(mock.calls.Names, struct{}{})
	mock.lock.Unlock()
	return mock.NamesFunc(ctx)
}

func (mock *contactRepoMock) NamesCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Names
}

func (mock *contactRepoMock) RecentByInteraction(ctx context.Context, limit int) ([]*domain.Contact, error) {
	if mock.RecentByInteractionFunc == nil {
		panic("contactRepoMock.RecentByInteractionFunc: method is nil but contactRepo.RecentByInteraction was just called")
	}
	mock.lock.Lock()
	mock.calls.RecentByInteraction = append(mock.calls.RecentByInteraction, struct {
		Limit int
	}{Limit: limit})
	mock.lock.Unlock()
	return mock.RecentByInteractionFunc(ctx, limit)
}

func (mock *contactRepoMock) RecentByInteractionCalls() []struct {
	Limit int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecentByInteraction
}

func (mock *contactRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
	if mock.UpdateFunc == nil {
		panic("contactRepoMock.UpdateFunc: method is nil but contactRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.ContactUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *contactRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.ContactUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *contactRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("contactRepoMock.DeleteFunc: method is nil but contactRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *contactRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}
