package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"localmarket/internal/adapters/out/memory"
	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/ports"
	"localmarket/internal/jobs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Add(ctx context.Context, e *activity.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockActivityRepository) GetAllForOrder(_ context.Context, _ kernel.UUID) ([]*activity.Entry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) SalesOrderRepository() ports.SalesOrderRepository   { return nil }
func (m *MockUnitOfWork) ProductRepository() ports.ProductRepository         { return nil }
func (m *MockUnitOfWork) ReferenceCounters() ports.ReferenceCounters         { return nil }
func (m *MockUnitOfWork) BranchOccurrenceRepository() ports.BranchOccurrenceRepository {
	return nil
}
func (m *MockUnitOfWork) ActivityRepository() ports.ActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.ActivityRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func testEntry(t *testing.T, ref string) *activity.Entry {
	t.Helper()
	entry, err := activity.NewEntry(
		activity.KeySalesOrderCreated,
		map[string]string{"order_ref": ref},
		kernel.NewUUID(), kernel.NewUUID(), nil,
	)
	require.NoError(t, err)
	return entry
}

func TestActivityFlushJob_Flush_Success(t *testing.T) {
	ctx := t.Context()
	backlog := memory.NewActivityBacklog()
	backlog.Enqueue(testEntry(t, "AMAP-0001"), testEntry(t, "AMAP-0002"))

	repo := new(MockActivityRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil).Twice()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ActivityRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	job := jobs.NewActivityFlushJob(factory, backlog, slog.Default())
	job.Flush(ctx)

	require.Zero(t, backlog.Len())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestActivityFlushJob_Flush_FailureRequeues(t *testing.T) {
	ctx := t.Context()
	backlog := memory.NewActivityBacklog()
	first := testEntry(t, "AMAP-0001")
	second := testEntry(t, "AMAP-0002")
	backlog.Enqueue(first, second)

	repo := new(MockActivityRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*activity.Entry")).
		Return(errors.New("still down")).Once()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ActivityRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	job := jobs.NewActivityFlushJob(factory, backlog, slog.Default())
	job.Flush(ctx)

	require.Equal(t, []*activity.Entry{first, second}, backlog.Drain())
}

func TestActivityFlushJob_Flush_EmptyBacklogNoTransaction(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUnitOfWorkFactory)

	job := jobs.NewActivityFlushJob(factory, memory.NewActivityBacklog(), slog.Default())
	job.Flush(ctx)

	factory.AssertNotCalled(t, "Create")
}
